package echart_test

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/plotaid/pkg/dendrogram"
	"github.com/Sumatoshi-tech/plotaid/pkg/linkage"
	"github.com/Sumatoshi-tech/plotaid/pkg/surface"
	"github.com/Sumatoshi-tech/plotaid/pkg/surface/echart"
)

func TestLinePlotter_ValueAxes(t *testing.T) {
	t.Parallel()

	p := echart.NewLinePlotter(charts.NewLine())

	assert.Equal(t, "value", p.Chart().XAxisList[0].Type)
	assert.Equal(t, "value", p.Chart().YAxisList[0].Type)
}

func TestLinePlotter_Line(t *testing.T) {
	t.Parallel()

	p := echart.NewLinePlotter(charts.NewLine())

	require.NoError(t, p.Line([]float64{5, 5, 15, 15}, []float64{0, 1, 1, 0}, "#ff7f0e"))

	series := p.Chart().MultiSeries
	require.Len(t, series, 1)
	assert.Equal(t, "#ff7f0e", series[0].LineStyle.Color)
	assert.False(t, *series[0].ShowSymbol)

	data, ok := series[0].Data.([]opts.LineData)
	require.True(t, ok)
	require.Len(t, data, 4)
	assert.Equal(t, []float64{15, 1}, data[2].Value)

	err := p.Line([]float64{1}, nil, "")
	require.ErrorIs(t, err, surface.ErrCoordinateLengths)
}

func TestLinePlotter_TicksAndLimits(t *testing.T) {
	t.Parallel()

	p := echart.NewLinePlotter(charts.NewLine())

	require.NoError(t, p.Ticks(surface.DirX, []float64{5, 15, 25}, []string{"a", "b", "c"},
		surface.TickStyle{Rotation: 45, FontSize: 10}))
	require.NoError(t, p.Limits(surface.DirY, 0, 2.1, true))

	x := p.Chart().XAxisList[0]
	require.NotNil(t, x.AxisLabel)
	assert.InDelta(t, 45.0, x.AxisLabel.Rotate, 0)
	assert.Equal(t, 10, x.AxisLabel.FontSize)
	assert.Contains(t, string(x.AxisLabel.Formatter), `"15":"b"`)
	assert.InDelta(t, 5.0, x.MinInterval, 0)
	assert.InDelta(t, 5.0, x.MaxInterval, 0)

	y := p.Chart().YAxisList[0]
	assert.Equal(t, 0.0, y.Min)
	assert.Equal(t, 2.1, y.Max)
	assert.True(t, *y.Inverse)

	err := p.Ticks(surface.DirX, []float64{1}, nil, surface.TickStyle{})
	require.ErrorIs(t, err, surface.ErrLabelCount)
}

func TestLinePlotter_Dendrogram(t *testing.T) {
	t.Parallel()

	z, err := linkage.FromRows([][4]float64{
		{0, 1, 0.5, 2},
		{2, 3, 0.7, 2},
		{4, 5, 1.2, 4},
	})
	require.NoError(t, err)

	tree, err := dendrogram.Layout(z, nil, dendrogram.DefaultOptions())
	require.NoError(t, err)

	p := echart.NewLinePlotter(charts.NewLine())
	require.NoError(t, dendrogram.Draw(p, tree, dendrogram.DefaultOptions()))

	assert.Len(t, p.Chart().MultiSeries, 3)
	assert.Equal(t, 40.0, p.Chart().XAxisList[0].Max)
}
