// Package report renders a metadata info page for a CFS file, the
// counterpart of the HTML header display the original tooling offered
// next to NWB export.
package report

import (
	"fmt"
	"html/template"
	"io"

	"github.com/cedtools/cedfs/pkg/cfs"
)

// Page is the fully resolved metadata of one file, ready for
// rendering or JSON encoding.
type Page struct {
	Path     string         `json:"path"`
	Info     cfs.Info       `json:"info"`
	Channels []cfs.Channel  `json:"channels"`
	FileVars []cfs.Variable `json:"file_vars"`
	Sweeps   []SweepSummary `json:"sweeps"`
}

// SweepSummary carries the per-sweep variable table and the geometry
// of every channel within that sweep.
type SweepSummary struct {
	Index    int             `json:"index"`
	Vars     []cfs.Variable  `json:"vars"`
	Channels []cfs.SweepInfo `json:"channels"`
}

// Build walks the whole metadata surface of an open file.
func Build(f *cfs.File) (*Page, error) {
	page := &Page{Path: f.Path(), Info: f.Info()}

	var err error
	if page.Channels, err = f.Channels(); err != nil {
		return nil, fmt.Errorf("report: channels: %w", err)
	}
	if page.FileVars, err = f.FileVars(); err != nil {
		return nil, fmt.Errorf("report: file vars: %w", err)
	}
	for sweep := 0; sweep < f.SweepCount(); sweep++ {
		summary := SweepSummary{Index: sweep}
		if summary.Vars, err = f.SweepVars(sweep); err != nil {
			return nil, fmt.Errorf("report: sweep %d vars: %w", sweep, err)
		}
		for ch := 0; ch < f.ChannelCount(); ch++ {
			si, err := f.SweepInfo(ch, sweep)
			if err != nil {
				return nil, fmt.Errorf("report: sweep %d channel %d: %w", sweep, ch, err)
			}
			summary.Channels = append(summary.Channels, si)
		}
		page.Sweeps = append(page.Sweeps, summary)
	}
	return page, nil
}

// WriteHTML renders the page as a standalone HTML document.
func (p *Page) WriteHTML(w io.Writer) error {
	return pageTemplate.Execute(w, p)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>CFS info: {{.Path}}</title>
<style>
body { font-family: sans-serif; margin: 2em; }
table { border-collapse: collapse; margin-bottom: 1.5em; }
th, td { border: 1px solid #999; padding: 0.25em 0.6em; text-align: left; }
th { background: #eee; }
</style>
</head>
<body>
<h1>{{.Path}}</h1>
<p>{{.Info.Date}} {{.Info.Time}}{{with .Info.Comment}} &mdash; {{.}}{{end}}</p>

<h2>Summary</h2>
<table>
<tr><th>Channels</th><td>{{.Info.Channels}}</td></tr>
<tr><th>Data sections</th><td>{{.Info.DataSections}}</td></tr>
<tr><th>File variables</th><td>{{.Info.FileVars}}</td></tr>
<tr><th>Section variables</th><td>{{.Info.DSVars}}</td></tr>
</table>

<h2>Channels</h2>
<table>
<tr><th>#</th><th>Name</th><th>Y units</th><th>X units</th><th>Type</th><th>Kind</th></tr>
{{range .Channels}}<tr><td>{{.Index}}</td><td>{{.Name}}</td><td>{{.YUnits}}</td><td>{{.XUnits}}</td><td>{{.Type}}</td><td>{{.Kind}}</td></tr>
{{end}}</table>

<h2>File variables</h2>
<table>
<tr><th>#</th><th>Description</th><th>Value</th><th>Units</th><th>Type</th></tr>
{{range .FileVars}}<tr><td>{{.Index}}</td><td>{{.Description}}</td><td>{{.Value}}</td><td>{{.Units}}</td><td>{{.Type}}</td></tr>
{{end}}</table>

{{range .Sweeps}}
<h2>Sweep {{.Index}}</h2>
<table>
<tr><th>Variable</th><th>Value</th><th>Units</th></tr>
{{range .Vars}}<tr><td>{{.Description}}</td><td>{{.Value}}</td><td>{{.Units}}</td></tr>
{{end}}</table>
<table>
<tr><th>Channel</th><th>Points</th><th>Y scale</th><th>Y offset</th><th>X scale</th><th>X offset</th></tr>
{{range .Channels}}<tr><td>{{.Channel}}</td><td>{{.Points}}</td><td>{{.YScale}}</td><td>{{.YOffset}}</td><td>{{.XScale}}</td><td>{{.XOffset}}</td></tr>
{{end}}</table>
{{end}}
</body>
</html>
`))
