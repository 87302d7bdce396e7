package plotpage_test

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/plotaid/pkg/plotpage"
)

var errRender = errors.New("render failed")

type fragment string

func (f fragment) Render(w io.Writer) error {
	_, err := io.WriteString(w, string(f))

	return err
}

type failing struct{}

func (failing) Render(io.Writer) error { return errRender }

func TestPage_Render(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Sales", "Quarterly totals")
	page.Add(plotpage.Section{
		Title:    "Totals",
		Subtitle: "per quarter",
		Notes:    []string{"values rounded to two decimals"},
		Chart:    fragment(`<div id="chart-1"></div>`),
	})

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))

	html := buf.String()
	assert.Contains(t, html, "<title>Sales</title>")
	assert.Contains(t, html, "Quarterly totals")
	assert.Contains(t, html, `<div id="chart-1"></div>`)
	assert.Contains(t, html, "values rounded to two decimals")
	assert.Contains(t, html, "echarts.min.js")
	assert.Contains(t, html, plotpage.ProjectName)
	assert.NotContains(t, html, `class="dark"`)
}

func TestPage_RenderDark(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Tree", "").WithTheme(plotpage.ThemeDark)

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))
	assert.Contains(t, buf.String(), `class="dark"`)
}

func TestPage_RenderChartError(t *testing.T) {
	t.Parallel()

	page := plotpage.NewPage("Broken", "")
	page.Add(plotpage.Section{Chart: failing{}})

	err := page.Render(io.Discard)
	require.ErrorIs(t, err, errRender)
}

func TestPage_RenderExtractsEChartsBody(t *testing.T) {
	t.Parallel()

	chart := plotpage.BuildBarChart(nil, "Totals", []string{"a", "b"},
		[]plotpage.BarSeries{{Name: "v", Values: []float64{1, 2}}}, "count", false)

	page := plotpage.NewPage("Bars", "")
	page.Add(plotpage.Section{Chart: chart})

	var buf bytes.Buffer
	require.NoError(t, page.Render(&buf))

	html := buf.String()
	assert.Contains(t, html, `class="echart-box"`)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("<!DOCTYPE html>")))
	assert.NotContains(t, html, ".container {margin-top")
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	theme, err := plotpage.ParseTheme("dark")
	require.NoError(t, err)
	assert.Equal(t, plotpage.ThemeDark, theme)

	_, err = plotpage.ParseTheme("sepia")
	require.ErrorIs(t, err, plotpage.ErrUnknownTheme)
}
