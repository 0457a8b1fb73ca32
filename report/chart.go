package report

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/BakdaurenNarbayev/BMSSP/bench"
)

// RenderChart writes an HTML page with one line chart per edge ratio:
// median seconds over node count, measured series solid, extrapolated
// tails dashed.
func RenderChart(path string, results bench.ResultSet) error {
	if len(results) == 0 {
		return ErrNoResults
	}
	series := Flatten(results)

	ratios := make([]float64, 0)
	seen := map[float64]bool{}
	for _, s := range series {
		if !seen[s.EdgeRatio] {
			seen[s.EdgeRatio] = true
			ratios = append(ratios, s.EdgeRatio)
		}
	}
	sort.Float64s(ratios)

	page := components.NewPage()
	page.PageTitle = "shortest-path scaling"
	for _, ratio := range ratios {
		page.AddCharts(ratioChart(ratio, series))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	return nil
}

// ratioChart builds the chart of every series measured at one ratio.
// The node-count axis is categorical over the union of sizes, which
// keeps log-spaced sizes evenly spread.
func ratioChart(ratio float64, series []Series) *charts.Line {
	sizes := []int{}
	seen := map[int]bool{}
	for _, s := range series {
		if s.EdgeRatio != ratio {
			continue
		}
		for _, p := range s.Points {
			if !seen[p.NodeCount] {
				seen[p.NodeCount] = true
				sizes = append(sizes, p.NodeCount)
			}
		}
	}
	sort.Ints(sizes)
	at := make(map[int]int, len(sizes))
	labels := make([]string, len(sizes))
	for i, n := range sizes {
		at[n] = i
		labels[i] = strconv.Itoa(n)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("median time, %g edges per node", ratio),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "nodes"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "seconds"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	line.SetXAxis(labels)

	for _, s := range series {
		if s.EdgeRatio != ratio {
			continue
		}
		measured := make([]opts.LineData, len(sizes))
		extrapolated := make([]opts.LineData, len(sizes))
		for i := range sizes {
			measured[i] = opts.LineData{Value: nil}
			extrapolated[i] = opts.LineData{Value: nil}
		}
		hasExtra := false
		for _, p := range s.Points {
			d := opts.LineData{Value: p.MedianSeconds}
			if p.Extrapolated {
				extrapolated[at[p.NodeCount]] = d
				hasExtra = true
			} else {
				measured[at[p.NodeCount]] = d
			}
		}

		line.AddSeries(s.Algorithm, measured)
		if hasExtra {
			line.AddSeries(s.Algorithm+" (extrapolated)", extrapolated,
				charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}),
			)
		}
	}

	return line
}
