package echart

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/plotaid/pkg/surface"
)

const axisTypeValue = "value"

// LinePlotter adapts a line chart with two value axes to surface.Plotter.
// Each Line call becomes its own symbol-less series.
type LinePlotter struct {
	chart *charts.Line
}

// NewLinePlotter wraps line and switches both primary axes to value axes.
func NewLinePlotter(line *charts.Line) *LinePlotter {
	line.XAxisList[0].Type = axisTypeValue
	line.YAxisList[0].Type = axisTypeValue

	return &LinePlotter{chart: line}
}

// Chart returns the wrapped chart.
func (p *LinePlotter) Chart() *charts.Line {
	return p.chart
}

// Line implements surface.Plotter.
func (p *LinePlotter) Line(xs, ys []float64, color string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d != %d", surface.ErrCoordinateLengths, len(xs), len(ys))
	}

	data := make([]opts.LineData, len(xs))
	for i := range xs {
		data[i] = opts.LineData{Value: []float64{xs[i], ys[i]}}
	}

	p.chart.AddSeries("", data,
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: color}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
	)

	return nil
}

// Ticks implements surface.Plotter. Labels are drawn by a formatter keyed on
// the tick value; the axis interval is the smallest gap between positions so
// every position receives a tick.
func (p *LinePlotter) Ticks(dir surface.Dir, positions []float64, labels []string, style surface.TickStyle) error {
	if len(positions) != len(labels) {
		return fmt.Errorf("%w: %d positions for %d labels", surface.ErrLabelCount, len(positions), len(labels))
	}

	byValue := make(map[string]string, len(positions))
	for i, pos := range positions {
		byValue[strconv.FormatFloat(pos, 'f', -1, 64)] = labels[i]
	}

	encoded, err := json.Marshal(byValue)
	if err != nil {
		return fmt.Errorf("encode tick labels: %w", err)
	}

	label := &opts.AxisLabel{
		Show:      opts.Bool(len(positions) > 0),
		Rotate:    style.Rotation,
		FontSize:  int(style.FontSize),
		Formatter: opts.FuncOpts(tickFormatter(string(encoded))),
	}

	interval := tickInterval(positions)

	switch dir {
	case surface.DirX:
		axis := &p.chart.XAxisList[0]
		axis.AxisLabel = label
		axis.MinInterval, axis.MaxInterval = interval, interval
	case surface.DirY:
		axis := &p.chart.YAxisList[0]
		axis.AxisLabel = label
		axis.MinInterval, axis.MaxInterval = interval, interval
	}

	return nil
}

func tickFormatter(table string) string {
	return "function (value) { var t = " + table + "; return Object.prototype.hasOwnProperty.call(t, String(value)) ? t[String(value)] : ''; }"
}

func tickInterval(positions []float64) float64 {
	if len(positions) == 0 {
		return 0
	}

	step := positions[0]
	for i := 1; i < len(positions); i++ {
		if gap := positions[i] - positions[i-1]; gap > 0 && (step <= 0 || gap < step) {
			step = gap
		}
	}

	if step < 0 {
		return 0
	}

	return step
}

// Limits implements surface.Plotter.
func (p *LinePlotter) Limits(dir surface.Dir, lo, hi float64, inverted bool) error {
	switch dir {
	case surface.DirX:
		axis := &p.chart.XAxisList[0]
		axis.Min, axis.Max, axis.Inverse = lo, hi, opts.Bool(inverted)
	case surface.DirY:
		axis := &p.chart.YAxisList[0]
		axis.Min, axis.Max, axis.Inverse = lo, hi, opts.Bool(inverted)
	}

	return nil
}
