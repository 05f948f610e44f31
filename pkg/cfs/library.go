package cfs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Library wraps a loaded vendor CFS library (or its simulated
// stand-in) and opens files against it. The underlying handle is
// shared read-only; Library itself holds no per-file state.
type Library struct {
	procs     procs
	simulated bool

	// Log receives debug traces of vendor calls. Defaults to a
	// no-op logger; the CLI replaces it.
	Log zerolog.Logger
}

// Load loads the vendor shared library. With an empty path the
// platform default names are tried via the system search path.
func Load(path string) (*Library, error) {
	candidates := defaultLibraryNames()
	if path != "" {
		candidates = []string{path}
	}

	var lastErr error
	for _, name := range candidates {
		h, err := openLibrary(name)
		if err != nil {
			lastErr = err
			continue
		}
		p, err := newVendorProcs(h)
		if err != nil {
			// Loaded something, but it is not the CFS library.
			return nil, err
		}
		return &Library{procs: p, Log: zerolog.Nop()}, nil
	}
	return nil, fmt.Errorf("%w (tried %v): %v", ErrLibraryNotFound, candidates, lastErr)
}

// NewSimulated returns a Library backed by the in-memory simulated
// vendor library described by cfg.
func NewSimulated(cfg SimConfig) *Library {
	return &Library{
		procs:     newSimLibrary(cfg),
		simulated: true,
		Log:       zerolog.Nop(),
	}
}

// Simulated reports whether the library is the in-memory stand-in.
func (l *Library) Simulated() bool {
	return l.simulated
}

// Open opens a CFS file read-only and reads its general information
// and table sizes. The returned File owns the vendor handle until
// Close.
func (l *Library) Open(path string) (*File, error) {
	name := path
	if !l.simulated {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("cfs: resolve %s: %w", path, err)
		}
		if _, err := os.Stat(abs); err != nil {
			return nil, fmt.Errorf("cfs: file does not exist: %s: %w", path, err)
		}
		name = abs
	}

	handle := l.procs.OpenCFSFile(name, 0, 0)
	if handle < 0 {
		if verr := l.latched("OpenCFSFile"); verr != nil {
			return nil, verr
		}
		return nil, &VendorError{Func: "OpenCFSFile", Code: handle}
	}
	l.Log.Debug().Str("path", name).Int16("handle", handle).Msg("opened CFS file")

	f := &File{lib: l, path: name, handle: handle}
	if err := f.readInfo(); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// latched queries the vendor's pending-error latch and converts it to
// a VendorError attributed to fn. Returns nil when no error is
// pending.
func (l *Library) latched(fn string) error {
	var handleNo, procNo, errNo int16
	if l.procs.FileError(&handleNo, &procNo, &errNo) == 0 {
		return nil
	}
	err := &VendorError{Func: fn, Handle: handleNo, Proc: procNo, Code: errNo}
	l.Log.Debug().Err(err).Msg("vendor error latched")
	return err
}

// IsNotExist reports whether err signals a missing input file rather
// than a vendor failure.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}
