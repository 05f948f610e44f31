package cfs

import "fmt"

// DataType identifies the storage type of a CFS variable or channel.
// The numeric values are the vendor's own codes and must not be
// reordered.
type DataType int16

const (
	Int1 DataType = iota // INT1: signed 8-bit
	Wrd1                 // WRD1: unsigned 8-bit
	Int2                 // INT2: signed 16-bit
	Wrd2                 // WRD2: unsigned 16-bit
	Int4                 // INT4: signed 32-bit
	Rl4                  // RL4: 32-bit float
	Rl8                  // RL8: 64-bit float
	Lstr                 // LSTR: length-limited string
)

var dataTypeNames = [...]string{"INT1", "WRD1", "INT2", "WRD2", "INT4", "RL4", "RL8", "LSTR"}

// String returns the vendor mnemonic for the type.
func (t DataType) String() string {
	if t < 0 || int(t) >= len(dataTypeNames) {
		return fmt.Sprintf("DataType(%d)", int16(t))
	}
	return dataTypeNames[t]
}

// Valid reports whether t is one of the vendor's type codes.
func (t DataType) Valid() bool {
	return t >= Int1 && t <= Lstr
}

// Size returns the storage size in bytes of one element, or 0 for
// Lstr whose size is carried per variable.
func (t DataType) Size() int {
	switch t {
	case Int1, Wrd1:
		return 1
	case Int2, Wrd2:
		return 2
	case Int4, Rl4:
		return 4
	case Rl8:
		return 8
	default:
		return 0
	}
}

// DataKind identifies how a channel's samples are organised within a
// data section. Vendor codes, do not reorder.
type DataKind int16

const (
	EqualSpaced DataKind = iota // evenly sampled waveform
	Matrix                      // 2-D matrix data
	Subsidiary                  // values attached to another channel
)

func (k DataKind) String() string {
	switch k {
	case EqualSpaced:
		return "equalspaced"
	case Matrix:
		return "matrix"
	case Subsidiary:
		return "subsidiary"
	default:
		return fmt.Sprintf("DataKind(%d)", int16(k))
	}
}

// VarKind distinguishes the two variable tables a CFS file carries.
type VarKind int16

const (
	FileVar VarKind = iota // one value for the whole file
	DSVar                  // one value per data section
)

func (k VarKind) String() string {
	if k == FileVar {
		return "file"
	}
	return "ds"
}

// Info mirrors the general information and table sizes the vendor
// reports for an open file.
type Info struct {
	Date         string `json:"date"`
	Time         string `json:"time"`
	Comment      string `json:"comment"`
	Channels     int    `json:"channels"`
	FileVars     int    `json:"file_vars"`
	DSVars       int    `json:"ds_vars"`
	DataSections int    `json:"data_sections"`
}

// Channel mirrors a vendor channel descriptor.
type Channel struct {
	Index   int      `json:"index"`
	Name    string   `json:"name"`
	YUnits  string   `json:"y_units"`
	XUnits  string   `json:"x_units"`
	Type    DataType `json:"type"`
	Kind    DataKind `json:"kind"`
	Spacing int      `json:"spacing"` // bytes between file elements
	Other   int      `json:"other"`   // companion channel for Matrix/Subsidiary
}

// Variable mirrors one entry of a vendor variable table, with its
// value decoded to a Go type (int64, uint64, float64 or string).
type Variable struct {
	Index       int      `json:"index"`
	Kind        VarKind  `json:"kind"`
	Description string   `json:"description"`
	Units       string   `json:"units"`
	Type        DataType `json:"type"`
	Size        int      `json:"size"`
	Value       any      `json:"value"`
}

// SweepInfo mirrors the geometry the vendor reports for one channel
// within one data section.
type SweepInfo struct {
	Channel     int     `json:"channel"`
	Section     int     `json:"section"`
	StartOffset int     `json:"start_offset"`
	Points      int     `json:"points"`
	YScale      float64 `json:"y_scale"`
	YOffset     float64 `json:"y_offset"`
	XScale      float64 `json:"x_scale"`
	XOffset     float64 `json:"x_offset"`
}

// Sweep holds the samples of one channel in one data section. Raw
// carries the values exactly as stored; Data carries them with the
// vendor's y scale and offset applied.
type Sweep struct {
	SweepInfo
	Raw  []float64 `json:"raw,omitempty"`
	Data []float64 `json:"data"`
}

// Time returns the x-axis position of sample i, reconstructed from
// the vendor's x scale and offset.
func (s *Sweep) Time(i int) float64 {
	return s.XScale*float64(i) + s.XOffset
}

// Times materialises the whole x axis.
func (s *Sweep) Times() []float64 {
	out := make([]float64, s.Points)
	for i := range out {
		out[i] = s.Time(i)
	}
	return out
}
