//go:build windows

package cfs

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// defaultLibraryNames lists the names tried when no explicit path is
// configured. CFS64c.dll is the name the vendor ships alongside
// Signal.
func defaultLibraryNames() []string {
	return []string{"CFS64c.dll"}
}

func openLibrary(path string) (uintptr, error) {
	h, err := windows.LoadLibrary(path)
	if err != nil {
		return 0, fmt.Errorf("LoadLibrary %s: %w", path, err)
	}
	return uintptr(h), nil
}
