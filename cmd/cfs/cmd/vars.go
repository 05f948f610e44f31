package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cedtools/cedfs/pkg/cfs"
)

var (
	varsJSON  bool
	varsSweep int
)

var varsCmd = &cobra.Command{
	Use:   "vars <cfs-file>",
	Short: "Show file or data-section variables",
	Long: `Show the file variable table, or with --sweep the data-section
variable table of one sweep (0-based).

Examples:
  cfs vars recording.cfs
  cfs vars --sweep 2 recording.cfs
  cfs vars --json recording.cfs`,
	Args: cobra.ExactArgs(1),
	RunE: runVars,
}

func init() {
	rootCmd.AddCommand(varsCmd)

	varsCmd.Flags().BoolVar(&varsJSON, "json", false,
		"output as JSON (for programmatic access)")
	varsCmd.Flags().IntVar(&varsSweep, "sweep", -1,
		"show the variables of this sweep instead of the file variables")
}

func runVars(cmd *cobra.Command, args []string) error {
	return withFile(args[0], func(f *cfs.File) error {
		var (
			vars []cfs.Variable
			err  error
		)
		if varsSweep >= 0 {
			vars, err = f.SweepVars(varsSweep)
		} else {
			vars, err = f.FileVars()
		}
		if err != nil {
			return err
		}

		if varsJSON {
			out, err := json.MarshalIndent(vars, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		if varsSweep >= 0 {
			fmt.Printf("Sweep %d variables:\n", varsSweep)
		} else {
			fmt.Println("File variables:")
		}
		for _, v := range vars {
			units := ""
			if v.Units != "" {
				units = " " + v.Units
			}
			fmt.Printf("  %-3d %-30s %v%s (%s)\n", v.Index, v.Description, v.Value, units, v.Type)
		}
		return nil
	})
}
