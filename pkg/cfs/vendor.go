package cfs

import (
	"fmt"

	"github.com/ebitengine/purego"
)

// vendorProcs implements procs against the loaded CFS64 shared
// library. Field signatures mirror the vendor's C prototypes with
// purego's calling conventions (buffers as *byte, C shorts as int16).
type vendorProcs struct {
	openCFSFile  func(name string, enableWrite, memoryTable int16) int16
	closeCFSFile func(handle int16) int16
	getGenInfo   func(handle int16, date, time, comment *byte)
	getFileInfo  func(handle int16, channels, dsVars, fileVars *int16, dataSections *uint16)
	getVarDesc   func(handle, varNo, varKind int16, size, dataType *int16, units, desc *byte)
	getVarVal    func(handle, varNo, varKind int16, dataSection uint16, buf *byte)
	getFileChan  func(handle, chanNo int16, name, yUnits, xUnits *byte, dataType, dataKind, spacing, other *int16)
	getDSChan    func(handle, chanNo int16, dataSection uint16, startOffset, points *int32, yScale, yOffset, xScale, xOffset *float32)
	getChanData  func(handle, chanNo int16, dataSection uint16, firstElement int32, numElements uint16, buf *byte, areaBytes int32) uint16
	fileError    func(handleNo, procNo, errNo *int16) int16
}

func newVendorProcs(lib uintptr) (*vendorProcs, error) {
	v := &vendorProcs{}
	bindings := []struct {
		name string
		fptr any
	}{
		{"OpenCFSFile", &v.openCFSFile},
		{"CloseCFSFile", &v.closeCFSFile},
		{"GetGenInfo", &v.getGenInfo},
		{"GetFileInfo", &v.getFileInfo},
		{"GetVarDesc", &v.getVarDesc},
		{"GetVarVal", &v.getVarVal},
		{"GetFileChan", &v.getFileChan},
		{"GetDSChan", &v.getDSChan},
		{"GetChanData", &v.getChanData},
		{"FileError", &v.fileError},
	}
	for _, b := range bindings {
		if err := registerProc(lib, b.name, b.fptr); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// registerProc binds one export. purego panics on unresolvable
// symbols, so the panic is converted into an error here.
func registerProc(lib uintptr, name string, fptr any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("cfs: bind %s: %v", name, r)
		}
	}()
	purego.RegisterLibFunc(fptr, lib, name)
	return nil
}

func bufPtr(b []byte) *byte {
	if len(b) == 0 {
		return nil
	}
	return &b[0]
}

func (v *vendorProcs) OpenCFSFile(name string, enableWrite, memoryTable int16) int16 {
	return v.openCFSFile(name, enableWrite, memoryTable)
}

func (v *vendorProcs) CloseCFSFile(handle int16) int16 {
	return v.closeCFSFile(handle)
}

func (v *vendorProcs) GetGenInfo(handle int16, date, time, comment []byte) {
	v.getGenInfo(handle, bufPtr(date), bufPtr(time), bufPtr(comment))
}

func (v *vendorProcs) GetFileInfo(handle int16, channels, dsVars, fileVars *int16, dataSections *uint16) {
	v.getFileInfo(handle, channels, dsVars, fileVars, dataSections)
}

func (v *vendorProcs) GetVarDesc(handle, varNo, varKind int16, size, dataType *int16, units, desc []byte) {
	v.getVarDesc(handle, varNo, varKind, size, dataType, bufPtr(units), bufPtr(desc))
}

func (v *vendorProcs) GetVarVal(handle, varNo, varKind int16, dataSection uint16, buf []byte) {
	v.getVarVal(handle, varNo, varKind, dataSection, bufPtr(buf))
}

func (v *vendorProcs) GetFileChan(handle, chanNo int16, name, yUnits, xUnits []byte, dataType, dataKind, spacing, other *int16) {
	v.getFileChan(handle, chanNo, bufPtr(name), bufPtr(yUnits), bufPtr(xUnits), dataType, dataKind, spacing, other)
}

func (v *vendorProcs) GetDSChan(handle, chanNo int16, dataSection uint16, startOffset, points *int32, yScale, yOffset, xScale, xOffset *float32) {
	v.getDSChan(handle, chanNo, dataSection, startOffset, points, yScale, yOffset, xScale, xOffset)
}

func (v *vendorProcs) GetChanData(handle, chanNo int16, dataSection uint16, firstElement int32, numElements uint16, buf []byte) uint16 {
	return v.getChanData(handle, chanNo, dataSection, firstElement, numElements, bufPtr(buf), int32(len(buf)))
}

func (v *vendorProcs) FileError(handleNo, procNo, errNo *int16) int16 {
	return v.fileError(handleNo, procNo, errNo)
}
