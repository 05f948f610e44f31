//go:build !windows

package cfs

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

// defaultLibraryNames lists the names tried when no explicit path is
// configured. The vendor ships CFS64c; packagers on unix systems
// conventionally prefix shared objects with "lib".
func defaultLibraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libCFS64c.dylib", "CFS64c.dylib"}
	}
	return []string{"libCFS64c.so", "CFS64c.so"}
}

func openLibrary(path string) (uintptr, error) {
	h, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, fmt.Errorf("dlopen %s: %w", path, err)
	}
	return h, nil
}
