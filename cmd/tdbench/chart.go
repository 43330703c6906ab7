package main

import (
	"fmt"
	"io"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// renderChart writes one line per estimator, RMSE against episode, as a
// self-contained HTML page.
func renderChart(w io.Writer, cfg walkConfig, curves []curve) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Random walk RMSE",
			Subtitle: fmt.Sprintf("states=%d runs=%d alpha=%g lambda=%g seed=%d",
				cfg.States, cfg.Runs, cfg.Alpha, cfg.Lambda, cfg.Seed),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "episode"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "RMSE"}),
	)

	episodes := make([]string, cfg.Episodes)
	for i := range episodes {
		episodes[i] = fmt.Sprintf("%d", i+1)
	}
	line = line.SetXAxis(episodes)

	for _, c := range curves {
		items := make([]opts.LineData, 0, len(c.RMSE))
		for _, v := range c.RMSE {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				items = append(items, opts.LineData{Value: "-"}) // gap in the line
				continue
			}
			items = append(items, opts.LineData{Value: v})
		}
		line.AddSeries(c.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)

	return page.Render(w)
}
