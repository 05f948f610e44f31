// Package cfs binds the CED (Cambridge Electronic Design) CFS reading
// library to Go. CFS is the proprietary file format produced by CED's
// Signal acquisition suite for electrophysiology recordings.
//
// All structural knowledge of the CFS binary layout lives inside the
// closed-source vendor library (CFS64c); this package loads that
// library at runtime, walks its metadata surface (general info, file
// and data-section variables, channel descriptors) and copies sweep
// data into Go slices. It deliberately implements no parser of its
// own.
//
// # Usage
//
//	lib, err := cfs.Load("") // empty path: platform default name
//	if err != nil { ... }
//
//	f, err := lib.Open("recording.cfs")
//	if err != nil { ... }
//	defer f.Close()
//
//	chans, err := f.Channels()
//	sweep, err := f.ReadSweep(0, 0)
//	for i, v := range sweep.Data {
//		fmt.Printf("%g %g\n", sweep.Time(i), v)
//	}
//
// # Simulated library
//
// A deterministic in-memory stand-in for the vendor library is
// available via NewSimulated. It serves tests and offline tooling on
// machines without the vendor DLL; the rest of the API is identical.
//
// # Limitations
//
//   - Read-only access; files are never opened for writing.
//   - One native handle per open file, used from a single goroutine.
//   - Matrix and subsidiary channel kinds are surfaced in metadata but
//     ReadSweep only reconstructs a time axis for equal-spaced data.
package cfs
