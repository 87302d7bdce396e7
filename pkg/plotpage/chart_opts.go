package plotpage

import (
	"github.com/go-echarts/go-echarts/v2/opts"
)

const axisTypeValue = "value"

// ChartOpts provides themed chart options based on the current theme.
type ChartOpts struct {
	theme  ThemeConfig
	width  string
	height string
}

// NewChartOpts creates chart options for theme with the given chart size.
func NewChartOpts(theme Theme, width, height string) *ChartOpts {
	return &ChartOpts{theme: GetThemeConfig(theme), width: width, height: height}
}

// DefaultChartOpts returns chart options for the light theme.
func DefaultChartOpts() *ChartOpts {
	style := DefaultStyle()

	return NewChartOpts(ThemeLight, style.Width, style.Height)
}

// Init returns initialization options with themed background.
func (c *ChartOpts) Init() opts.Initialization {
	return opts.Initialization{
		Width:           c.width,
		Height:          c.height,
		BackgroundColor: c.theme.ChartBackground,
	}
}

// Title returns title options with themed text colors.
func (c *ChartOpts) Title(title string) opts.Title {
	return opts.Title{
		Title:      title,
		Left:       "center",
		TitleStyle: &opts.TextStyle{Color: c.theme.ChartText},
	}
}

// Legend returns legend options with themed text color.
func (c *ChartOpts) Legend(show bool) opts.Legend {
	return opts.Legend{
		Show:      opts.Bool(show),
		Type:      "scroll",
		Top:       "8%",
		Left:      "center",
		TextStyle: &opts.TextStyle{Color: c.theme.ChartTextMuted},
	}
}

// CategoryAxis returns a category x-axis showing every label.
func (c *ChartOpts) CategoryAxis(name string) opts.XAxis {
	return opts.XAxis{
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: c.theme.ChartTextMuted, Interval: "0"},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
	}
}

// ValueXAxis returns a numeric x-axis without grid lines.
func (c *ChartOpts) ValueXAxis(name string) opts.XAxis {
	return opts.XAxis{
		Type:      axisTypeValue,
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: c.theme.ChartTextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
		SplitLine: &opts.SplitLine{Show: opts.Bool(false)},
	}
}

// YAxis returns a numeric y-axis with themed grid lines.
func (c *ChartOpts) YAxis(name string) opts.YAxis {
	return opts.YAxis{
		Type:      axisTypeValue,
		Name:      name,
		AxisLabel: &opts.AxisLabel{Color: c.theme.ChartTextMuted},
		AxisLine:  &opts.AxisLine{LineStyle: &opts.LineStyle{Color: c.theme.ChartAxis}},
		SplitLine: &opts.SplitLine{
			Show:      opts.Bool(true),
			LineStyle: &opts.LineStyle{Color: c.theme.ChartGrid},
		},
	}
}

// Grid returns grid options with standard margins.
func (c *ChartOpts) Grid() opts.Grid {
	return opts.Grid{
		Top:          "18%",
		Bottom:       "12%",
		Left:         "5%",
		Right:        "5%",
		ContainLabel: opts.Bool(true),
	}
}

// Tooltip returns tooltip options.
func (c *ChartOpts) Tooltip(trigger string) opts.Tooltip {
	return opts.Tooltip{Show: opts.Bool(trigger != ""), Trigger: trigger}
}

// SeriesColor returns the palette color of the i-th series.
func (c *ChartOpts) SeriesColor(i int) string {
	return c.theme.Series[i%len(c.theme.Series)]
}
