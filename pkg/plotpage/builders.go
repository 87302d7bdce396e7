package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// stackGroup is the stack name shared by all series of a stacked chart.
const stackGroup = "total"

// BarSeries defines the name, values and optional color of one bar series.
type BarSeries struct {
	Name   string
	Values []float64
	Color  string // Optional, uses theme palette if empty.
}

// BuildBarChart constructs a themed bar chart. When stacked is set every
// series is drawn on top of the previous one.
// If cOpts is nil, DefaultChartOpts() is used.
func BuildBarChart(cOpts *ChartOpts, title string, categories []string, series []BarSeries, yAxisLabel string, stacked bool) *charts.Bar {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init()),
		charts.WithTitleOpts(cOpts.Title(title)),
		charts.WithTooltipOpts(cOpts.Tooltip("axis")),
		charts.WithGridOpts(cOpts.Grid()),
		charts.WithXAxisOpts(cOpts.CategoryAxis("")),
		charts.WithYAxisOpts(cOpts.YAxis(yAxisLabel)),
		charts.WithLegendOpts(cOpts.Legend(len(series) > 1)),
	)

	bar.SetXAxis(categories)

	for i, s := range series {
		data := make([]opts.BarData, len(s.Values))
		for j, v := range s.Values {
			data[j] = opts.BarData{Value: v}
		}

		color := s.Color
		if color == "" {
			color = cOpts.SeriesColor(i)
		}

		seriesOpts := []charts.SeriesOpts{charts.WithItemStyleOpts(opts.ItemStyle{Color: color})}
		if stacked {
			seriesOpts = append(seriesOpts, charts.WithBarChartOpts(opts.BarChart{Stack: stackGroup}))
		}

		bar.AddSeries(s.Name, data, seriesOpts...)
	}

	return bar
}

// BuildTreeChart constructs an empty line chart with two value axes, ready
// to receive the links of a tree diagram. Axis options must be final here
// since later global options would replace the axis state set by plotters.
func BuildTreeChart(cOpts *ChartOpts, title, distanceLabel string) *charts.Line {
	if cOpts == nil {
		cOpts = DefaultChartOpts()
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(cOpts.Init()),
		charts.WithTitleOpts(cOpts.Title(title)),
		charts.WithTooltipOpts(cOpts.Tooltip("")),
		charts.WithGridOpts(cOpts.Grid()),
		charts.WithXAxisOpts(cOpts.ValueXAxis("")),
		charts.WithYAxisOpts(cOpts.YAxis(distanceLabel)),
		charts.WithLegendOpts(cOpts.Legend(false)),
	)

	return line
}
