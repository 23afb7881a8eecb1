package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"
)

// writeReport renders rep to w in the given format.
func writeReport(w io.Writer, format string, rep *Report) error {
	switch format {
	case "table":
		return writeTable(w, rep)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case "plot":
		return writePlot(w, rep)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeTable(w io.Writer, rep *Report) error {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.SetTitle(fmt.Sprintf("%s elements, seed %d", humanize.Comma(int64(rep.Config.N)), rep.Config.Seed))
	tbl.AppendHeader(table.Row{"Container", "Phase", "Ops", "Hits", "Elapsed", "ns/op"})
	for _, r := range rep.Results {
		tbl.AppendRow(table.Row{
			r.Container,
			r.Phase,
			humanize.Comma(int64(r.Ops)),
			humanize.Comma(int64(r.Hits)),
			r.Elapsed.String(),
			humanize.FormatFloat("#,###.#", r.NsPerOp),
		})
	}
	tbl.Render()

	ok, fail := color.New(color.FgGreen), color.New(color.FgRed, color.Bold)
	for _, c := range rep.Coherence {
		var err error
		if c.OK {
			_, err = ok.Fprintf(w, "ok   %-8s %s\n", c.Container, c.Stage)
		} else {
			_, err = fail.Fprintf(w, "FAIL %-8s %s: %s\n", c.Container, c.Stage, c.Detail)
		}
		if err != nil {
			return fmt.Errorf("write coherence: %w", err)
		}
	}
	return nil
}

// writePlot renders one bar series per container, ns/op by phase, as an HTML
// page.
func writePlot(w io.Writer, rep *Report) error {
	var phases, containers []string
	nsPerOp := map[[2]string]float64{}
	for _, r := range rep.Results {
		if !slices.Contains(phases, r.Phase) {
			phases = append(phases, r.Phase)
		}
		if !slices.Contains(containers, r.Container) {
			containers = append(containers, r.Container)
		}
		nsPerOp[[2]string{r.Container, r.Phase}] = r.NsPerOp
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "ptree measure",
			Subtitle: fmt.Sprintf("%s elements, seed %d", humanize.Comma(int64(rep.Config.N)), rep.Config.Seed),
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "ns/op"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(phases)
	for _, c := range containers {
		data := make([]opts.BarData, len(phases))
		for i, p := range phases {
			if v, ok := nsPerOp[[2]string{c, p}]; ok {
				data[i] = opts.BarData{Value: v}
			} else {
				data[i] = opts.BarData{Value: "-"}
			}
		}
		bar.AddSeries(c, data)
	}
	if err := bar.Render(w); err != nil {
		return fmt.Errorf("render plot: %w", err)
	}
	return nil
}
