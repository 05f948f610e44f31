package cfs

import "fmt"

// SimChannel describes one channel of the simulated vendor library.
type SimChannel struct {
	Name   string
	YUnits string
	XUnits string
	Type   DataType
}

// SimVar describes one variable of the simulated vendor library. For
// DS variables the stored value is offset by the data section number
// so sweeps are distinguishable.
type SimVar struct {
	Description string
	Units       string
	Type        DataType
	Value       any
}

// SimConfig shapes the recording the simulated vendor library serves.
// The zero value is usable; unset fields take the defaults below.
type SimConfig struct {
	Channels []SimChannel
	Sweeps   int
	Points   int

	// SampleInterval is the x increment in XUnits (seconds).
	SampleInterval float64

	Date    string
	Time    string
	Comment string

	FileVars []SimVar
	DSVars   []SimVar

	// OpenCode, when negative, makes OpenCFSFile fail with exactly
	// that code. Used to exercise vendor-error propagation.
	OpenCode int16
}

func (c SimConfig) withDefaults() SimConfig {
	if len(c.Channels) == 0 {
		c.Channels = []SimChannel{
			{Name: "Current", YUnits: "pA", XUnits: "s", Type: Int2},
			{Name: "Voltage", YUnits: "mV", XUnits: "s", Type: Int2},
		}
	}
	if c.Sweeps == 0 {
		c.Sweeps = 3
	}
	if c.Points == 0 {
		c.Points = 512
	}
	if c.SampleInterval == 0 {
		c.SampleInterval = 1e-4
	}
	if c.Date == "" {
		c.Date = "01/09/25"
	}
	if c.Time == "" {
		c.Time = "10:30:00"
	}
	if c.Comment == "" {
		c.Comment = "simulated recording"
	}
	if c.FileVars == nil {
		c.FileVars = []SimVar{
			{Description: "Creator", Type: Lstr, Value: "Signal 5.08"},
			{Description: "Sweeps requested", Type: Int2, Value: int64(3)},
		}
	}
	if c.DSVars == nil {
		c.DSVars = []SimVar{
			{Description: "State", Type: Int2, Value: int64(0)},
			{Description: "Frame start", Units: "s", Type: Rl8, Value: float64(0)},
		}
	}
	return c
}

// Placeholder codes the simulator latches; chosen negative like the
// vendor's, not taken from any vendor header.
const (
	simBadHandle int16 = -1
	simBadIndex  int16 = -5
)

// simLibrary is an in-memory procs implementation with a deterministic
// waveform, standing in for the vendor library in tests and on
// machines without the DLL.
type simLibrary struct {
	cfg SimConfig

	nextHandle int16
	open       map[int16]string

	// latched error state, mirrored from the vendor's FileError
	// contract
	errPending bool
	errHandle  int16
	errProc    int16
	errCode    int16
}

func newSimLibrary(cfg SimConfig) *simLibrary {
	return &simLibrary{
		cfg:        cfg.withDefaults(),
		nextHandle: 0,
		open:       make(map[int16]string),
	}
}

// sample is the deterministic raw waveform: a ramp keyed on channel,
// sweep and sample index so every position is distinguishable.
func (s *simLibrary) sample(channel, sweep, i int) float64 {
	return float64(1000*channel + 100*sweep + i)
}

func (s *simLibrary) latch(handle, proc, code int16) {
	s.errPending = true
	s.errHandle = handle
	s.errProc = proc
	s.errCode = code
}

func (s *simLibrary) checkHandle(handle, proc int16) bool {
	if _, ok := s.open[handle]; !ok {
		s.latch(handle, proc, simBadHandle)
		return false
	}
	return true
}

func (s *simLibrary) OpenCFSFile(name string, enableWrite, memoryTable int16) int16 {
	if s.cfg.OpenCode < 0 {
		s.latch(-1, 1, s.cfg.OpenCode)
		return s.cfg.OpenCode
	}
	h := s.nextHandle
	s.nextHandle++
	s.open[h] = name
	return h
}

func (s *simLibrary) CloseCFSFile(handle int16) int16 {
	if _, ok := s.open[handle]; !ok {
		return simBadHandle
	}
	delete(s.open, handle)
	return 0
}

func (s *simLibrary) GetGenInfo(handle int16, date, time, comment []byte) {
	if !s.checkHandle(handle, 2) {
		return
	}
	fillString(date, s.cfg.Date)
	fillString(time, s.cfg.Time)
	fillString(comment, s.cfg.Comment)
}

func (s *simLibrary) GetFileInfo(handle int16, channels, dsVars, fileVars *int16, dataSections *uint16) {
	if !s.checkHandle(handle, 3) {
		return
	}
	*channels = int16(len(s.cfg.Channels))
	*dsVars = int16(len(s.cfg.DSVars))
	*fileVars = int16(len(s.cfg.FileVars))
	*dataSections = uint16(s.cfg.Sweeps)
}

func (s *simLibrary) varFor(varNo, varKind int16) (SimVar, bool) {
	table := s.cfg.FileVars
	if VarKind(varKind) == DSVar {
		table = s.cfg.DSVars
	}
	if varNo < 0 || int(varNo) >= len(table) {
		return SimVar{}, false
	}
	return table[varNo], true
}

func (s *simLibrary) GetVarDesc(handle, varNo, varKind int16, size, dataType *int16, units, desc []byte) {
	if !s.checkHandle(handle, 4) {
		return
	}
	v, ok := s.varFor(varNo, varKind)
	if !ok {
		s.latch(handle, 4, simBadIndex)
		return
	}
	*dataType = int16(v.Type)
	if v.Type == Lstr {
		str, _ := v.Value.(string)
		*size = int16(len(str) + 1)
	} else {
		*size = int16(v.Type.Size())
	}
	fillString(units, v.Units)
	fillString(desc, v.Description)
}

func (s *simLibrary) GetVarVal(handle, varNo, varKind int16, dataSection uint16, buf []byte) {
	if !s.checkHandle(handle, 5) {
		return
	}
	v, ok := s.varFor(varNo, varKind)
	if !ok {
		s.latch(handle, 5, simBadIndex)
		return
	}
	value := v.Value
	if VarKind(varKind) == DSVar {
		// Make per-sweep values distinguishable across sections.
		switch n := value.(type) {
		case int64:
			value = n + int64(dataSection)
		case float64:
			value = n + float64(dataSection)
		}
	}
	encodeValue(buf, v.Type, value)
}

func (s *simLibrary) GetFileChan(handle, chanNo int16, name, yUnits, xUnits []byte, dataType, dataKind, spacing, other *int16) {
	if !s.checkHandle(handle, 6) {
		return
	}
	if chanNo < 0 || int(chanNo) >= len(s.cfg.Channels) {
		s.latch(handle, 6, simBadIndex)
		return
	}
	ch := s.cfg.Channels[chanNo]
	fillString(name, ch.Name)
	fillString(yUnits, ch.YUnits)
	fillString(xUnits, ch.XUnits)
	*dataType = int16(ch.Type)
	*dataKind = int16(EqualSpaced)
	*spacing = int16(ch.Type.Size())
	*other = 0
}

// simYScale returns the calibration the simulator reports: integer
// channels carry a 0.01 scale, float channels are stored calibrated.
func simYScale(t DataType) float32 {
	switch t {
	case Rl4, Rl8:
		return 1
	default:
		return 0.01
	}
}

func (s *simLibrary) GetDSChan(handle, chanNo int16, dataSection uint16, startOffset, points *int32, yScale, yOffset, xScale, xOffset *float32) {
	if !s.checkHandle(handle, 7) {
		return
	}
	if chanNo < 0 || int(chanNo) >= len(s.cfg.Channels) {
		s.latch(handle, 7, simBadIndex)
		return
	}
	if dataSection < 1 || int(dataSection) > s.cfg.Sweeps {
		s.latch(handle, 7, simBadIndex)
		return
	}
	*startOffset = 0
	*points = int32(s.cfg.Points)
	*yScale = simYScale(s.cfg.Channels[chanNo].Type)
	*yOffset = 0
	*xScale = float32(s.cfg.SampleInterval)
	*xOffset = 0
}

func (s *simLibrary) GetChanData(handle, chanNo int16, dataSection uint16, firstElement int32, numElements uint16, buf []byte) uint16 {
	if !s.checkHandle(handle, 8) {
		return 0
	}
	if chanNo < 0 || int(chanNo) >= len(s.cfg.Channels) {
		s.latch(handle, 8, simBadIndex)
		return 0
	}
	if dataSection < 1 || int(dataSection) > s.cfg.Sweeps {
		s.latch(handle, 8, simBadIndex)
		return 0
	}
	ch := s.cfg.Channels[chanNo]
	sweep := int(dataSection) - 1

	n := int(numElements)
	if remaining := s.cfg.Points - int(firstElement); n > remaining {
		n = remaining
	}
	if n <= 0 {
		return 0
	}
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = s.sample(int(chanNo), sweep, int(firstElement)+i)
	}
	copy(buf, encodeSamples(samples, ch.Type))
	return uint16(n)
}

func (s *simLibrary) FileError(handleNo, procNo, errNo *int16) int16 {
	if !s.errPending {
		return 0
	}
	*handleNo = s.errHandle
	*procNo = s.errProc
	*errNo = s.errCode
	s.errPending = false
	return 1
}

// fillString writes v into buf as a NUL-terminated C string,
// truncating to the buffer like the vendor does.
func fillString(buf []byte, v string) {
	if len(buf) == 0 {
		return
	}
	n := copy(buf, v)
	if n == len(buf) {
		n--
	}
	buf[n] = 0
}

// String describes the simulated recording, handy in verbose CLI
// output.
func (c SimConfig) String() string {
	c = c.withDefaults()
	return fmt.Sprintf("simulated: %d channel(s), %d sweep(s), %d points", len(c.Channels), c.Sweeps, c.Points)
}
