package plotpage_test

import (
	"testing"

	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/plotaid/pkg/plotpage"
)

func TestBuildBarChart(t *testing.T) {
	t.Parallel()

	cOpts := plotpage.NewChartOpts(plotpage.ThemeDark, "800px", "400px")
	series := []plotpage.BarSeries{
		{Name: "Revenue", Values: []float64{100, 200, 300}, Color: "#ff0000"},
		{Name: "Profit", Values: []float64{50, 100, 150}},
	}

	chart := plotpage.BuildBarChart(cOpts, "Q", []string{"Q1", "Q2", "Q3"}, series, "USD", true)
	require.Len(t, chart.MultiSeries, 2)

	assert.Equal(t, "Revenue", chart.MultiSeries[0].Name)
	assert.Equal(t, "#ff0000", chart.MultiSeries[0].ItemStyle.Color)
	assert.NotEmpty(t, chart.MultiSeries[1].ItemStyle.Color)
	assert.Equal(t, "total", chart.MultiSeries[0].Stack)
	assert.Equal(t, "total", chart.MultiSeries[1].Stack)

	data, ok := chart.MultiSeries[1].Data.([]opts.BarData)
	require.True(t, ok)
	assert.Equal(t, 150.0, data[2].Value)
}

func TestBuildBarChart_NilOptsUnstacked(t *testing.T) {
	t.Parallel()

	chart := plotpage.BuildBarChart(nil, "", []string{"a"},
		[]plotpage.BarSeries{{Name: "Data", Values: []float64{1}}}, "Count", false)

	require.Len(t, chart.MultiSeries, 1)
	assert.Empty(t, chart.MultiSeries[0].Stack)
}

func TestBuildTreeChart(t *testing.T) {
	t.Parallel()

	chart := plotpage.BuildTreeChart(nil, "Clusters", "distance")

	assert.Empty(t, chart.MultiSeries)
	assert.Equal(t, "value", chart.XAxisList[0].Type)
	assert.Equal(t, "value", chart.YAxisList[0].Type)
	assert.Equal(t, "distance", chart.YAxisList[0].Name)
}
