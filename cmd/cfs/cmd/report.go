package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cedtools/cedfs/internal/report"
	"github.com/cedtools/cedfs/pkg/cfs"
)

var reportOutput string

var reportCmd = &cobra.Command{
	Use:   "report <cfs-file>",
	Short: "Write an HTML metadata page",
	Long: `Render the complete metadata of a CFS file (general info, channels,
file and per-sweep variables, sweep geometry) as a standalone HTML
page. By default the page is written next to the input file with an
.html extension.

Examples:
  cfs report recording.cfs
  cfs report recording.cfs --output /tmp/recording.html`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "",
		"output path (default: input path with .html extension)")
}

func runReport(cmd *cobra.Command, args []string) error {
	target := reportOutput
	if target == "" {
		base := args[0]
		base = strings.TrimSuffix(base, filepath.Ext(base))
		target = base + ".html"
	}

	return withFile(args[0], func(f *cfs.File) error {
		page, err := report.Build(f)
		if err != nil {
			return err
		}
		out, err := os.Create(target)
		if err != nil {
			return err
		}
		defer out.Close()
		if err := page.WriteHTML(out); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", target)
		return nil
	})
}
