package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cedtools/cedfs/pkg/cfs"
)

var channelsJSON bool

var channelsCmd = &cobra.Command{
	Use:   "channels <cfs-file>",
	Short: "List channel descriptors",
	Long: `List every channel of a CFS file with its units, storage type and
data kind.

Examples:
  cfs channels recording.cfs
  cfs channels --json recording.cfs`,
	Args: cobra.ExactArgs(1),
	RunE: runChannels,
}

func init() {
	rootCmd.AddCommand(channelsCmd)

	channelsCmd.Flags().BoolVar(&channelsJSON, "json", false,
		"output as JSON (for programmatic access)")
}

func runChannels(cmd *cobra.Command, args []string) error {
	return withFile(args[0], func(f *cfs.File) error {
		chans, err := f.Channels()
		if err != nil {
			return err
		}

		if channelsJSON {
			out, err := json.MarshalIndent(chans, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Printf("%-4s %-21s %-10s %-10s %-5s %-12s\n", "#", "Name", "Y units", "X units", "Type", "Kind")
		for _, ch := range chans {
			fmt.Printf("%-4d %-21s %-10s %-10s %-5s %-12s\n",
				ch.Index, ch.Name, ch.YUnits, ch.XUnits, ch.Type, ch.Kind)
		}
		return nil
	})
}
