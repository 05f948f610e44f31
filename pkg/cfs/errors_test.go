package cfs

import (
	"fmt"
	"testing"
)

func TestVendorErrorMessage(t *testing.T) {
	err := &VendorError{Func: "GetVarVal", Handle: 2, Proc: 5, Code: -21}
	want := "cfs: GetVarVal: vendor error -21 (proc 5, handle 2)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestAsVendorErrorUnwraps(t *testing.T) {
	inner := &VendorError{Func: "GetDSChan", Code: -7}
	wrapped := fmt.Errorf("reading sweep: %w", inner)
	ve, ok := AsVendorError(wrapped)
	if !ok || ve.Code != -7 {
		t.Fatalf("AsVendorError = %v, %v", ve, ok)
	}
	if _, ok := AsVendorError(fmt.Errorf("plain")); ok {
		t.Error("plain error reported as vendor error")
	}
}
