package cfs

import (
	"errors"
	"fmt"
)

// Precondition errors raised on the Go side, before any vendor call.
var (
	// ErrClosed is returned when a File is used after Close.
	ErrClosed = errors.New("cfs: file is closed")

	// ErrOutOfRange is returned for channel, sweep or variable
	// indexes outside the counts the vendor reported.
	ErrOutOfRange = errors.New("cfs: index out of range")

	// ErrLibraryNotFound is returned when the vendor shared library
	// cannot be located or loaded.
	ErrLibraryNotFound = errors.New("cfs: vendor library not found")
)

// VendorError carries an error latched by the vendor library, exactly
// as FileError reports it. The binding does not reinterpret the code.
type VendorError struct {
	Func   string // binding-side name of the call that tripped the error
	Handle int16  // vendor file handle the error is attached to
	Proc   int16  // vendor's own procedure number
	Code   int16  // vendor error code, unaltered
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("cfs: %s: vendor error %d (proc %d, handle %d)", e.Func, e.Code, e.Proc, e.Handle)
}

// AsVendorError unwraps err down to a *VendorError if one is present.
func AsVendorError(err error) (*VendorError, bool) {
	var ve *VendorError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
