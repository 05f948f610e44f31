package cfs

// procs is the vendor entry-point surface the binding calls. The real
// implementation registers the exports of the CFS64 shared library via
// purego; the simulated library provides an in-memory one with the
// same calling conventions (C shorts for handles, counts and type
// codes, NUL-terminated strings written into caller buffers).
//
// Vendor calls that return void latch failures internally; callers
// retrieve them through FileError afterwards.
type procs interface {
	// OpenCFSFile opens the named file and returns a handle, or a
	// negative value on failure.
	OpenCFSFile(name string, enableWrite, memoryTable int16) int16

	// CloseCFSFile releases the handle. Non-zero return is a vendor
	// error code.
	CloseCFSFile(handle int16) int16

	// GetGenInfo fills date, time and comment as NUL-terminated
	// strings.
	GetGenInfo(handle int16, date, time, comment []byte)

	// GetFileInfo fills the table sizes of the open file.
	GetFileInfo(handle int16, channels, dsVars, fileVars *int16, dataSections *uint16)

	// GetVarDesc describes variable varNo of the given kind.
	GetVarDesc(handle, varNo int16, varKind int16, size, dataType *int16, units, desc []byte)

	// GetVarVal writes the variable's value into buf. dataSection is
	// ignored for file variables.
	GetVarVal(handle, varNo int16, varKind int16, dataSection uint16, buf []byte)

	// GetFileChan describes channel chanNo.
	GetFileChan(handle, chanNo int16, name, yUnits, xUnits []byte, dataType, dataKind, spacing, other *int16)

	// GetDSChan reports the geometry of chanNo within dataSection.
	GetDSChan(handle, chanNo int16, dataSection uint16, startOffset, points *int32, yScale, yOffset, xScale, xOffset *float32)

	// GetChanData copies up to numElements elements starting at
	// firstElement into buf and returns the number copied.
	GetChanData(handle, chanNo int16, dataSection uint16, firstElement int32, numElements uint16, buf []byte) uint16

	// FileError reports and clears the latched error state. It
	// returns non-zero when an error was pending.
	FileError(handleNo, procNo, errNo *int16) int16
}

// Buffer sizes for the string-filling vendor calls, matching the
// vendor's documented field widths.
const (
	dateLen        = 10
	timeLen        = 10
	commentLen     = 100
	unitsLen       = 20
	descLen        = 50
	channelNameLen = 21
)

// cString interprets buf as a NUL-terminated C string.
func cString(buf []byte) string {
	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
