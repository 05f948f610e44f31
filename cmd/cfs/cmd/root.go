package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cedtools/cedfs/internal/config"
	"github.com/cedtools/cedfs/pkg/cfs"
)

var (
	// Global flags
	verbose bool
	libPath string

	// Simulated-library flags, for running without the vendor DLL
	useSim      bool
	simChannels int
	simSweeps   int
	simPoints   int
)

var rootCmd = &cobra.Command{
	Use:   "cfs",
	Short: "CED CFS file inspector",
	Long: `Tooling around the CED CFS reading library: open Signal recordings,
inspect their metadata and copy sweep data out.

All structural knowledge of the CFS format stays in the vendor library
(CFS64c); point --lib or CFS_LIBRARY at it, or pass --sim to run
against a deterministic simulated recording instead.

Examples:
  cfs info recording.cfs                       # General info and counts
  cfs channels recording.cfs --json            # Channel table as JSON
  cfs dump recording.cfs --channels 0 --sweeps 0-2 > data.csv
  cfs report recording.cfs                     # HTML metadata page
  cfs info --sim demo.cfs                      # No vendor library needed`,
	Version: "1.0.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

		level := zerolog.WarnLevel
		if cfg, err := config.Load(); err == nil {
			if parsed, err := zerolog.ParseLevel(cfg.Log.Level); err == nil && parsed != zerolog.NoLevel {
				level = parsed
			}
		}
		if verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&libPath, "lib", "", "path of the vendor CFS library (default: CFS_LIBRARY or platform name)")
	rootCmd.PersistentFlags().BoolVar(&useSim, "sim", false, "use the simulated vendor library")
	rootCmd.PersistentFlags().IntVar(&simChannels, "sim-channels", 0, "simulator: number of channels")
	rootCmd.PersistentFlags().IntVar(&simSweeps, "sim-sweeps", 0, "simulator: number of sweeps")
	rootCmd.PersistentFlags().IntVar(&simPoints, "sim-points", 0, "simulator: points per sweep")
}

// openLibrary builds the vendor (or simulated) library from flags and
// configuration.
func openLibrary() (*cfs.Library, error) {
	if useSim {
		cfg := cfs.SimConfig{Sweeps: simSweeps, Points: simPoints}
		for i := 0; i < simChannels; i++ {
			cfg.Channels = append(cfg.Channels, cfs.SimChannel{
				Name:   fmt.Sprintf("Chan %d", i),
				YUnits: "mV",
				XUnits: "s",
				Type:   cfs.Int2,
			})
		}
		lib := cfs.NewSimulated(cfg)
		lib.Log = log.Logger
		return lib, nil
	}

	path := libPath
	if path == "" {
		if cfg, err := config.Load(); err == nil {
			path = cfg.Library.Path
		}
	}
	lib, err := cfs.Load(path)
	if err != nil {
		return nil, err
	}
	lib.Log = log.Logger
	return lib, nil
}

// withFile opens path against the configured library, runs fn and
// closes the handle.
func withFile(path string, fn func(*cfs.File) error) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	f, err := lib.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return fn(f)
}
