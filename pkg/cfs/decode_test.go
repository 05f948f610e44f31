package cfs

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestDecodeValue(t *testing.T) {
	rl4 := make([]byte, 4)
	binary.LittleEndian.PutUint32(rl4, math.Float32bits(1.5))
	rl8 := make([]byte, 8)
	binary.LittleEndian.PutUint64(rl8, math.Float64bits(-2.25))

	tests := []struct {
		name string
		buf  []byte
		typ  DataType
		size int
		want any
	}{
		{"int1 negative", []byte{0xFF}, Int1, 0, int64(-1)},
		{"wrd1", []byte{0xFF}, Wrd1, 0, uint64(255)},
		{"int2", []byte{0x2E, 0xFB}, Int2, 0, int64(-1234)},
		{"wrd2", []byte{0x39, 0x30}, Wrd2, 0, uint64(12345)},
		{"int4", []byte{0x00, 0x00, 0x00, 0x80}, Int4, 0, int64(math.MinInt32)},
		{"rl4", rl4, Rl4, 0, float64(1.5)},
		{"rl8", rl8, Rl8, 0, float64(-2.25)},
		{"lstr", []byte("Signal\x00junk"), Lstr, 11, "Signal"},
		{"lstr trimmed to size", []byte("Signalmore"), Lstr, 6, "Signal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeValue(tt.buf, tt.typ, tt.size)
			if err != nil {
				t.Fatalf("decodeValue failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v (%T), want %v (%T)", got, got, tt.want, tt.want)
			}
		})
	}
}

func TestDecodeValueErrors(t *testing.T) {
	if _, err := decodeValue([]byte{1}, Int4, 0); err == nil {
		t.Error("short buffer accepted")
	}
	if _, err := decodeValue([]byte{1, 2}, DataType(9), 0); err == nil {
		t.Error("unknown type accepted")
	}
}

func TestDecodeSamples(t *testing.T) {
	buf := encodeSamples([]float64{-3, 0, 120}, Int2)
	got, err := decodeSamples(buf, Int2)
	if err != nil {
		t.Fatalf("decodeSamples failed: %v", err)
	}
	want := []float64{-3, 0, 120}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %g, want %g", i, got[i], want[i])
		}
	}

	if _, err := decodeSamples(buf, Lstr); err == nil {
		t.Error("LSTR samples accepted")
	}
}

func TestDataTypeStrings(t *testing.T) {
	if Int2.String() != "INT2" || Lstr.String() != "LSTR" {
		t.Errorf("unexpected names: %s %s", Int2, Lstr)
	}
	if DataType(12).Valid() {
		t.Error("DataType(12) reported valid")
	}
	if Rl8.Size() != 8 || Wrd1.Size() != 1 || Lstr.Size() != 0 {
		t.Error("unexpected element sizes")
	}
	if EqualSpaced.String() != "equalspaced" || Subsidiary.String() != "subsidiary" {
		t.Errorf("unexpected kind names: %s %s", EqualSpaced, Subsidiary)
	}
}
