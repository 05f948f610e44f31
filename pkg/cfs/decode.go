package cfs

import (
	"encoding/binary"
	"fmt"
	"math"
)

// CFS stores all multi-byte values little-endian.

// decodeValue interprets buf as a single value of type t. size is the
// vendor-reported storage size, only meaningful for Lstr.
func decodeValue(buf []byte, t DataType, size int) (any, error) {
	if t != Lstr && len(buf) < t.Size() {
		return nil, fmt.Errorf("cfs: %s value needs %d bytes, have %d", t, t.Size(), len(buf))
	}
	switch t {
	case Int1:
		return int64(int8(buf[0])), nil
	case Wrd1:
		return uint64(buf[0]), nil
	case Int2:
		return int64(int16(binary.LittleEndian.Uint16(buf))), nil
	case Wrd2:
		return uint64(binary.LittleEndian.Uint16(buf)), nil
	case Int4:
		return int64(int32(binary.LittleEndian.Uint32(buf))), nil
	case Rl4:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(buf))), nil
	case Rl8:
		return math.Float64frombits(binary.LittleEndian.Uint64(buf)), nil
	case Lstr:
		if size > 0 && size < len(buf) {
			buf = buf[:size]
		}
		return cString(buf), nil
	default:
		return nil, fmt.Errorf("cfs: unknown data type %d", int16(t))
	}
}

// encodeValue writes v into buf using type t's storage layout. It is
// the simulator-side counterpart of decodeValue.
func encodeValue(buf []byte, t DataType, v any) {
	switch t {
	case Int1:
		buf[0] = byte(int8(asInt(v)))
	case Wrd1:
		buf[0] = byte(asInt(v))
	case Int2, Wrd2:
		binary.LittleEndian.PutUint16(buf, uint16(asInt(v)))
	case Int4:
		binary.LittleEndian.PutUint32(buf, uint32(int32(asInt(v))))
	case Rl4:
		binary.LittleEndian.PutUint32(buf, math.Float32bits(float32(asFloat(v))))
	case Rl8:
		binary.LittleEndian.PutUint64(buf, math.Float64bits(asFloat(v)))
	case Lstr:
		s, _ := v.(string)
		n := copy(buf, s)
		if n < len(buf) {
			buf[n] = 0
		}
	}
}

// decodeSamples interprets buf as a packed array of type t and widens
// every element to float64.
func decodeSamples(buf []byte, t DataType) ([]float64, error) {
	elem := t.Size()
	if elem == 0 {
		return nil, fmt.Errorf("cfs: cannot decode samples of type %s", t)
	}
	out := make([]float64, len(buf)/elem)
	for i := range out {
		v, err := decodeValue(buf[i*elem:], t, 0)
		if err != nil {
			return nil, err
		}
		switch n := v.(type) {
		case int64:
			out[i] = float64(n)
		case uint64:
			out[i] = float64(n)
		case float64:
			out[i] = n
		}
	}
	return out, nil
}

// encodeSamples packs float64 samples into t's storage layout, the
// simulator-side counterpart of decodeSamples.
func encodeSamples(samples []float64, t DataType) []byte {
	elem := t.Size()
	buf := make([]byte, len(samples)*elem)
	for i, s := range samples {
		encodeValue(buf[i*elem:], t, s)
	}
	return buf
}

func asInt(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	case uint64:
		return int64(n)
	case float64:
		return int64(n)
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case uint64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}
