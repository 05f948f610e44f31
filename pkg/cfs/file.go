package cfs

import "fmt"

// File wraps one open vendor file handle. Methods are not safe for
// concurrent use; the vendor library itself is single-threaded per
// handle.
type File struct {
	lib    *Library
	path   string
	handle int16
	closed bool
	info   Info
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Info returns the general information and table sizes read at open
// time.
func (f *File) Info() Info {
	return f.info
}

// SweepCount returns the number of data sections. In Signal each data
// section holds one sweep (frame) of every channel.
func (f *File) SweepCount() int {
	return f.info.DataSections
}

// ChannelCount returns the number of channels.
func (f *File) ChannelCount() int {
	return f.info.Channels
}

// Close releases the vendor handle. It is idempotent; only the first
// call reaches the vendor.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	if code := f.lib.procs.CloseCFSFile(f.handle); code != 0 {
		return &VendorError{Func: "CloseCFSFile", Handle: f.handle, Code: code}
	}
	f.lib.Log.Debug().Int16("handle", f.handle).Msg("closed CFS file")
	return nil
}

// readInfo populates f.info immediately after open, mirroring the
// GetGenInfo/GetFileInfo sequence the vendor expects.
func (f *File) readInfo() error {
	date := make([]byte, dateLen)
	time := make([]byte, timeLen)
	comment := make([]byte, commentLen)
	f.lib.procs.GetGenInfo(f.handle, date, time, comment)
	if err := f.lib.latched("GetGenInfo"); err != nil {
		return err
	}

	var channels, dsVars, fileVars int16
	var dataSections uint16
	f.lib.procs.GetFileInfo(f.handle, &channels, &dsVars, &fileVars, &dataSections)
	if err := f.lib.latched("GetFileInfo"); err != nil {
		return err
	}

	f.info = Info{
		Date:         cString(date),
		Time:         cString(time),
		Comment:      cString(comment),
		Channels:     int(channels),
		FileVars:     int(fileVars),
		DSVars:       int(dsVars),
		DataSections: int(dataSections),
	}
	return nil
}

// FileVars reads the file-wide variable table.
func (f *File) FileVars() ([]Variable, error) {
	if f.closed {
		return nil, ErrClosed
	}
	vars := make([]Variable, 0, f.info.FileVars)
	for i := 0; i < f.info.FileVars; i++ {
		v, err := f.variable(i, FileVar, 0)
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

// SweepVars reads the data-section variable table for one sweep
// (0-based; the vendor numbers data sections from 1).
func (f *File) SweepVars(sweep int) ([]Variable, error) {
	if f.closed {
		return nil, ErrClosed
	}
	if sweep < 0 || sweep >= f.info.DataSections {
		return nil, fmt.Errorf("%w: sweep %d of %d", ErrOutOfRange, sweep, f.info.DataSections)
	}
	vars := make([]Variable, 0, f.info.DSVars)
	for i := 0; i < f.info.DSVars; i++ {
		v, err := f.variable(i, DSVar, uint16(sweep+1))
		if err != nil {
			return nil, err
		}
		vars = append(vars, v)
	}
	return vars, nil
}

func (f *File) variable(i int, kind VarKind, section uint16) (Variable, error) {
	var size, dataType int16
	units := make([]byte, unitsLen)
	desc := make([]byte, descLen)
	f.lib.procs.GetVarDesc(f.handle, int16(i), int16(kind), &size, &dataType, units, desc)
	if err := f.lib.latched("GetVarDesc"); err != nil {
		return Variable{}, err
	}

	t := DataType(dataType)
	if !t.Valid() {
		return Variable{}, fmt.Errorf("cfs: variable %d/%s: unknown data type %d", i, kind, dataType)
	}
	bufLen := t.Size()
	if t == Lstr {
		// The vendor reports the string storage size itself; one
		// extra byte guarantees NUL termination.
		bufLen = int(size) + 1
	}
	buf := make([]byte, bufLen)
	f.lib.procs.GetVarVal(f.handle, int16(i), int16(kind), section, buf)
	if err := f.lib.latched("GetVarVal"); err != nil {
		return Variable{}, err
	}

	value, err := decodeValue(buf, t, int(size))
	if err != nil {
		return Variable{}, err
	}
	return Variable{
		Index:       i,
		Kind:        kind,
		Description: cString(desc),
		Units:       cString(units),
		Type:        t,
		Size:        int(size),
		Value:       value,
	}, nil
}

// Channel reads the descriptor of one channel.
func (f *File) Channel(i int) (Channel, error) {
	if f.closed {
		return Channel{}, ErrClosed
	}
	if i < 0 || i >= f.info.Channels {
		return Channel{}, fmt.Errorf("%w: channel %d of %d", ErrOutOfRange, i, f.info.Channels)
	}
	name := make([]byte, channelNameLen)
	yUnits := make([]byte, unitsLen)
	xUnits := make([]byte, unitsLen)
	var dataType, dataKind, spacing, other int16
	f.lib.procs.GetFileChan(f.handle, int16(i), name, yUnits, xUnits, &dataType, &dataKind, &spacing, &other)
	if err := f.lib.latched("GetFileChan"); err != nil {
		return Channel{}, err
	}
	return Channel{
		Index:   i,
		Name:    cString(name),
		YUnits:  cString(yUnits),
		XUnits:  cString(xUnits),
		Type:    DataType(dataType),
		Kind:    DataKind(dataKind),
		Spacing: int(spacing),
		Other:   int(other),
	}, nil
}

// Channels reads all channel descriptors.
func (f *File) Channels() ([]Channel, error) {
	chans := make([]Channel, 0, f.info.Channels)
	for i := 0; i < f.info.Channels; i++ {
		ch, err := f.Channel(i)
		if err != nil {
			return nil, err
		}
		chans = append(chans, ch)
	}
	return chans, nil
}

// SweepInfo reads the geometry of one channel within one sweep.
func (f *File) SweepInfo(channel, sweep int) (SweepInfo, error) {
	if f.closed {
		return SweepInfo{}, ErrClosed
	}
	if channel < 0 || channel >= f.info.Channels {
		return SweepInfo{}, fmt.Errorf("%w: channel %d of %d", ErrOutOfRange, channel, f.info.Channels)
	}
	if sweep < 0 || sweep >= f.info.DataSections {
		return SweepInfo{}, fmt.Errorf("%w: sweep %d of %d", ErrOutOfRange, sweep, f.info.DataSections)
	}
	var startOffset, points int32
	var yScale, yOffset, xScale, xOffset float32
	f.lib.procs.GetDSChan(f.handle, int16(channel), uint16(sweep+1), &startOffset, &points, &yScale, &yOffset, &xScale, &xOffset)
	if err := f.lib.latched("GetDSChan"); err != nil {
		return SweepInfo{}, err
	}
	return SweepInfo{
		Channel:     channel,
		Section:     sweep,
		StartOffset: int(startOffset),
		Points:      int(points),
		YScale:      float64(yScale),
		YOffset:     float64(yOffset),
		XScale:      float64(xScale),
		XOffset:     float64(xOffset),
	}, nil
}

// readChunk is the largest element count requested per GetChanData
// call; the vendor takes the count as a 16-bit word.
const readChunk = 32768

// ReadSweep copies one channel's samples for one sweep and applies the
// vendor's calibration. Raw keeps the stored values, Data the scaled
// ones.
func (f *File) ReadSweep(channel, sweep int) (*Sweep, error) {
	si, err := f.SweepInfo(channel, sweep)
	if err != nil {
		return nil, err
	}
	ch, err := f.Channel(channel)
	if err != nil {
		return nil, err
	}
	elem := ch.Type.Size()
	if elem == 0 {
		return nil, fmt.Errorf("cfs: channel %d: cannot read %s data as samples", channel, ch.Type)
	}

	buf := make([]byte, si.Points*elem)
	read := 0
	for read < si.Points {
		n := si.Points - read
		if n > readChunk {
			n = readChunk
		}
		got := f.lib.procs.GetChanData(f.handle, int16(channel), uint16(sweep+1), int32(read), uint16(n), buf[read*elem:(read+n)*elem])
		if err := f.lib.latched("GetChanData"); err != nil {
			return nil, err
		}
		if got == 0 {
			break
		}
		read += int(got)
	}
	buf = buf[:read*elem]

	raw, err := decodeSamples(buf, ch.Type)
	if err != nil {
		return nil, err
	}
	data := make([]float64, len(raw))
	for i, v := range raw {
		data[i] = v*si.YScale + si.YOffset
	}
	si.Points = read
	return &Sweep{SweepInfo: si, Raw: raw, Data: data}, nil
}
