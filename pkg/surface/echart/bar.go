// Package echart implements the drawing surfaces on top of go-echarts charts,
// so annotations and tree diagrams end up in interactive HTML pages.
package echart

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/Sumatoshi-tech/plotaid/pkg/surface"
)

// Label positions understood by ECharts.
const (
	positionInside = "inside"
	positionTop    = "top"
)

// BarAxis adapts a bar chart to surface.Axis and surface.TextDrawer.
// Every bar series is one container.
type BarAxis struct {
	chart *charts.Bar
}

// NewBarAxis wraps bar. Series must be added with []opts.BarData.
func NewBarAxis(bar *charts.Bar) *BarAxis {
	return &BarAxis{chart: bar}
}

// Chart returns the wrapped chart.
func (a *BarAxis) Chart() *charts.Bar {
	return a.chart
}

type seriesContainer struct {
	axis  *BarAxis
	index int
}

// Heights implements surface.Container.
func (c seriesContainer) Heights() []float64 {
	data := c.axis.data(c.index)

	heights := make([]float64, len(data))
	for i, d := range data {
		heights[i] = toFloat(d.Value)
	}

	return heights
}

func (a *BarAxis) data(index int) []opts.BarData {
	data, ok := a.chart.MultiSeries[index].Data.([]opts.BarData)
	if !ok {
		return nil
	}

	return data
}

// Containers implements surface.Axis.
func (a *BarAxis) Containers() []surface.Container {
	out := make([]surface.Container, len(a.chart.MultiSeries))
	for i := range a.chart.MultiSeries {
		out[i] = seriesContainer{axis: a, index: i}
	}

	return out
}

// BarLabel implements surface.Axis. Empty labels hide the item label.
func (a *BarAxis) BarLabel(c surface.Container, labels []string, placement surface.LabelType) error {
	sc, ok := c.(seriesContainer)
	if !ok || sc.axis != a || sc.index >= len(a.chart.MultiSeries) {
		return surface.ErrForeignContainer
	}

	data := a.data(sc.index)
	if len(labels) != len(data) {
		return fmt.Errorf("%w: %d labels for %d segments", surface.ErrLabelCount, len(labels), len(data))
	}

	position := positionInside
	if placement == surface.LabelEdge {
		position = positionTop
	}

	for i, text := range labels {
		if text == "" {
			data[i].Label = &opts.Label{Show: opts.Bool(false)}

			continue
		}

		data[i].Label = &opts.Label{
			Show:      opts.Bool(true),
			Position:  position,
			Formatter: types.FuncStr(text),
		}
	}

	return nil
}

// Text implements surface.TextDrawer by adding a label-only mark point to
// the first series. On a category axis x is the category index.
func (a *BarAxis) Text(x, y float64, text string, align surface.Align) error {
	if len(a.chart.MultiSeries) == 0 {
		return surface.ErrNoAnchor
	}

	s := &a.chart.MultiSeries[0]
	if s.MarkPoints == nil {
		s.MarkPoints = &opts.MarkPoints{}
	}

	s.MarkPoints.Data = append(s.MarkPoints.Data, opts.MarkPointNameCoordItem{
		Coordinate: []interface{}{x, y},
		Value:      text,
		Symbol:     "circle",
		SymbolSize: 1,
		ItemStyle:  &opts.ItemStyle{Color: "transparent"},
		Label: &opts.Label{
			Show:      opts.Bool(true),
			Position:  positionTop,
			Align:     string(align),
			Formatter: types.FuncStr(text),
		},
	})

	return nil
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case int32:
		return float64(n)
	case uint:
		return float64(n)
	case uint64:
		return float64(n)
	case uint32:
		return float64(n)
	default:
		return math.NaN()
	}
}
