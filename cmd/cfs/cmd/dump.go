package cmd

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cedtools/cedfs/pkg/cfs"
	"github.com/cedtools/cedfs/pkg/selector"
)

var (
	dumpChannels string
	dumpSweeps   string
	dumpFormat   string
	dumpRaw      bool
	dumpOutput   string
)

var dumpCmd = &cobra.Command{
	Use:   "dump <cfs-file>",
	Short: "Copy sweep data out as CSV or JSON",
	Long: `Copy calibrated sweep data into CSV or JSON. Channels and sweeps are
picked with selector expressions: comma-separated 0-based indexes and
inclusive ranges, or "*" for everything.

Examples:
  cfs dump recording.cfs                              # everything, CSV on stdout
  cfs dump recording.cfs --channels 0 --sweeps 0-2
  cfs dump recording.cfs --format json --output data.json
  cfs dump recording.cfs --raw                        # include unscaled values`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().StringVar(&dumpChannels, "channels", "*",
		"channel selector expression (e.g. \"0-3,7\")")
	dumpCmd.Flags().StringVar(&dumpSweeps, "sweeps", "*",
		"sweep selector expression (e.g. \"0,2\")")
	dumpCmd.Flags().StringVar(&dumpFormat, "format", "csv",
		"output format: csv or json")
	dumpCmd.Flags().BoolVar(&dumpRaw, "raw", false,
		"include raw (unscaled) sample values")
	dumpCmd.Flags().StringVarP(&dumpOutput, "output", "o", "",
		"write to this file instead of stdout")
}

func runDump(cmd *cobra.Command, args []string) error {
	if dumpFormat != "csv" && dumpFormat != "json" {
		return fmt.Errorf("unknown format %q (want csv or json)", dumpFormat)
	}

	chanSel, err := selector.Parse(dumpChannels)
	if err != nil {
		return err
	}
	sweepSel, err := selector.Parse(dumpSweeps)
	if err != nil {
		return err
	}

	return withFile(args[0], func(f *cfs.File) error {
		channels, err := chanSel.Indices(f.ChannelCount())
		if err != nil {
			return fmt.Errorf("--channels: %w", err)
		}
		sweeps, err := sweepSel.Indices(f.SweepCount())
		if err != nil {
			return fmt.Errorf("--sweeps: %w", err)
		}

		out := io.Writer(os.Stdout)
		if dumpOutput != "" {
			file, err := os.Create(dumpOutput)
			if err != nil {
				return err
			}
			defer file.Close()
			out = file
		}

		if dumpFormat == "json" {
			return dumpJSON(out, f, channels, sweeps)
		}
		return dumpCSV(out, f, channels, sweeps)
	})
}

func dumpCSV(out io.Writer, f *cfs.File, channels, sweeps []int) error {
	w := csv.NewWriter(out)
	header := []string{"sweep", "channel", "index", "time", "value"}
	if dumpRaw {
		header = append(header, "raw")
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, sweep := range sweeps {
		for _, channel := range channels {
			data, err := f.ReadSweep(channel, sweep)
			if err != nil {
				return err
			}
			for i, v := range data.Data {
				row := []string{
					strconv.Itoa(sweep),
					strconv.Itoa(channel),
					strconv.Itoa(i),
					strconv.FormatFloat(data.Time(i), 'g', -1, 64),
					strconv.FormatFloat(v, 'g', -1, 64),
				}
				if dumpRaw {
					row = append(row, strconv.FormatFloat(data.Raw[i], 'g', -1, 64))
				}
				if err := w.Write(row); err != nil {
					return err
				}
			}
		}
	}
	w.Flush()
	return w.Error()
}

func dumpJSON(out io.Writer, f *cfs.File, channels, sweeps []int) error {
	var all []*cfs.Sweep
	for _, sweep := range sweeps {
		for _, channel := range channels {
			data, err := f.ReadSweep(channel, sweep)
			if err != nil {
				return err
			}
			if !dumpRaw {
				data.Raw = nil
			}
			all = append(all, data)
		}
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(all)
}
