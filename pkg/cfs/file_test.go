package cfs

import (
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func TestOpenSimulatedFile(t *testing.T) {
	lib := NewSimulated(SimConfig{})
	f, err := lib.Open("sim.cfs")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	info := f.Info()
	if info.Channels != 2 {
		t.Errorf("Channels = %d, want 2", info.Channels)
	}
	if info.FileVars != 2 || info.DSVars != 2 {
		t.Errorf("FileVars/DSVars = %d/%d, want 2/2", info.FileVars, info.DSVars)
	}
	if info.DataSections != 3 {
		t.Errorf("DataSections = %d, want 3", info.DataSections)
	}
	if info.Date != "01/09/25" || info.Time != "10:30:00" {
		t.Errorf("date/time = %q/%q", info.Date, info.Time)
	}
	if info.Comment != "simulated recording" {
		t.Errorf("Comment = %q", info.Comment)
	}
	if f.SweepCount() != 3 || f.ChannelCount() != 2 {
		t.Errorf("SweepCount/ChannelCount = %d/%d", f.SweepCount(), f.ChannelCount())
	}
}

func TestFileVars(t *testing.T) {
	lib := NewSimulated(SimConfig{})
	f, err := lib.Open("sim.cfs")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	vars, err := f.FileVars()
	if err != nil {
		t.Fatalf("FileVars failed: %v", err)
	}
	if len(vars) != 2 {
		t.Fatalf("got %d vars, want 2", len(vars))
	}
	if vars[0].Description != "Creator" || vars[0].Type != Lstr {
		t.Errorf("vars[0] = %+v", vars[0])
	}
	if got, ok := vars[0].Value.(string); !ok || got != "Signal 5.08" {
		t.Errorf("Creator value = %v", vars[0].Value)
	}
	if got, ok := vars[1].Value.(int64); !ok || got != 3 {
		t.Errorf("Sweeps requested value = %v", vars[1].Value)
	}
	if vars[1].Kind != FileVar {
		t.Errorf("Kind = %v, want file", vars[1].Kind)
	}
}

func TestSweepVars(t *testing.T) {
	lib := NewSimulated(SimConfig{})
	f, err := lib.Open("sim.cfs")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	// The simulator offsets DS values by the 1-based section number.
	vars, err := f.SweepVars(1)
	if err != nil {
		t.Fatalf("SweepVars failed: %v", err)
	}
	if len(vars) != 2 {
		t.Fatalf("got %d vars, want 2", len(vars))
	}
	if got, ok := vars[0].Value.(int64); !ok || got != 2 {
		t.Errorf("State value = %v, want 2", vars[0].Value)
	}
	if got, ok := vars[1].Value.(float64); !ok || got != 2 {
		t.Errorf("Frame start value = %v, want 2", vars[1].Value)
	}
	if vars[1].Units != "s" || vars[1].Kind != DSVar {
		t.Errorf("vars[1] = %+v", vars[1])
	}

	if _, err := f.SweepVars(3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SweepVars(3) err = %v, want out of range", err)
	}
	if _, err := f.SweepVars(-1); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("SweepVars(-1) err = %v, want out of range", err)
	}
}

func TestChannels(t *testing.T) {
	lib := NewSimulated(SimConfig{})
	f, err := lib.Open("sim.cfs")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	chans, err := f.Channels()
	if err != nil {
		t.Fatalf("Channels failed: %v", err)
	}
	if len(chans) != 2 {
		t.Fatalf("got %d channels, want 2", len(chans))
	}
	if chans[0].Name != "Current" || chans[0].YUnits != "pA" || chans[0].XUnits != "s" {
		t.Errorf("chans[0] = %+v", chans[0])
	}
	if chans[1].Name != "Voltage" || chans[1].Type != Int2 || chans[1].Kind != EqualSpaced {
		t.Errorf("chans[1] = %+v", chans[1])
	}

	if _, err := f.Channel(2); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Channel(2) err = %v, want out of range", err)
	}
}

func TestReadSweep(t *testing.T) {
	lib := NewSimulated(SimConfig{})
	f, err := lib.Open("sim.cfs")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	sweep, err := f.ReadSweep(1, 2)
	if err != nil {
		t.Fatalf("ReadSweep failed: %v", err)
	}
	if sweep.Points != 512 || len(sweep.Data) != 512 || len(sweep.Raw) != 512 {
		t.Fatalf("points = %d, len(Data) = %d, len(Raw) = %d", sweep.Points, len(sweep.Data), len(sweep.Raw))
	}

	// Simulator ramp: raw = 1000*channel + 100*sweep + index,
	// calibrated with yScale 0.01 for integer channels. The scales
	// cross the FFI boundary as float32.
	yScale := float64(float32(0.01))
	for _, i := range []int{0, 1, 255, 511} {
		wantRaw := float64(1000 + 200 + i)
		if sweep.Raw[i] != wantRaw {
			t.Errorf("Raw[%d] = %g, want %g", i, sweep.Raw[i], wantRaw)
		}
		if wantData := wantRaw * yScale; math.Abs(sweep.Data[i]-wantData) > 1e-12 {
			t.Errorf("Data[%d] = %g, want %g", i, sweep.Data[i], wantData)
		}
	}

	if got, want := sweep.Time(10), 10*float64(float32(1e-4)); math.Abs(got-want) > 1e-12 {
		t.Errorf("Time(10) = %g, want %g", got, want)
	}
	if times := sweep.Times(); len(times) != 512 || times[0] != 0 {
		t.Errorf("Times() = len %d, first %g", len(times), times[0])
	}

	if _, err := f.ReadSweep(0, 3); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("ReadSweep(0,3) err = %v, want out of range", err)
	}
}

func TestReadSweepChunked(t *testing.T) {
	// More points than fit in one 16-bit GetChanData request.
	lib := NewSimulated(SimConfig{
		Channels: []SimChannel{{Name: "Wave", YUnits: "V", XUnits: "s", Type: Rl4}},
		Sweeps:   1,
		Points:   70000,
	})
	f, err := lib.Open("big.cfs")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	sweep, err := f.ReadSweep(0, 0)
	if err != nil {
		t.Fatalf("ReadSweep failed: %v", err)
	}
	if sweep.Points != 70000 {
		t.Fatalf("Points = %d, want 70000", sweep.Points)
	}
	// Float channels report unit scale, so Data mirrors Raw.
	if sweep.Raw[69999] != 69999 || sweep.Data[69999] != 69999 {
		t.Errorf("last sample = %g/%g, want 69999", sweep.Raw[69999], sweep.Data[69999])
	}
}

func TestOpenVendorError(t *testing.T) {
	lib := NewSimulated(SimConfig{OpenCode: -3})
	_, err := lib.Open("broken.cfs")
	if err == nil {
		t.Fatal("expected error")
	}
	ve, ok := AsVendorError(err)
	if !ok {
		t.Fatalf("err = %v, want VendorError", err)
	}
	if ve.Code != -3 || ve.Func != "OpenCFSFile" {
		t.Errorf("VendorError = %+v", ve)
	}
}

func TestOpenMissingFile(t *testing.T) {
	// A non-simulated library checks the path before any vendor
	// call; the sim procs stand in for the vendor here.
	lib := &Library{procs: newSimLibrary(SimConfig{}), Log: zerolog.Nop()}
	_, err := lib.Open("no/such/file.cfs")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotExist(err) {
		t.Errorf("err = %v, want not-exist", err)
	}
	if _, ok := AsVendorError(err); ok {
		t.Errorf("missing file must not reach the vendor, got %v", err)
	}
}

func TestCloseIdempotent(t *testing.T) {
	lib := NewSimulated(SimConfig{})
	f, err := lib.Open("sim.cfs")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
	if _, err := f.FileVars(); !errors.Is(err, ErrClosed) {
		t.Errorf("FileVars after Close err = %v, want ErrClosed", err)
	}
	if _, err := f.SweepInfo(0, 0); !errors.Is(err, ErrClosed) {
		t.Errorf("SweepInfo after Close err = %v, want ErrClosed", err)
	}
}
