package annotate_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/plotaid/pkg/annotate"
	"github.com/Sumatoshi-tech/plotaid/pkg/surface"
)

var errDrawFailed = errors.New("draw failed")

type failingDrawer struct{}

func (failingDrawer) Text(_, _ float64, _ string, _ surface.Align) error {
	return errDrawFailed
}

func TestBarTopLabels_RoundsAndCenters(t *testing.T) {
	t.Parallel()

	c := surface.NewCanvas()

	err := annotate.BarTopLabels(c, []string{"a", "b"}, []float64{1.005, 2.0})
	require.NoError(t, err)

	require.Len(t, c.Texts, 2)
	assert.Equal(t, surface.TextMark{X: 0, Y: 1.0, Text: "1.0", Align: surface.AlignCenter}, c.Texts[0])
	assert.Equal(t, surface.TextMark{X: 1, Y: 2.0, Text: "2.0", Align: surface.AlignCenter}, c.Texts[1])
}

func TestBarTopLabels_NumericPositions(t *testing.T) {
	t.Parallel()

	c := surface.NewCanvas()

	err := annotate.BarTopLabels(c, []int{2019, 2020, 2021}, []float64{12.346, 0.1, -4.567})
	require.NoError(t, err)

	texts := make([]string, len(c.Texts))
	for i, m := range c.Texts {
		texts[i] = m.Text
	}

	assert.Equal(t, []string{"12.35", "0.1", "-4.57"}, texts)
	assert.Equal(t, 2.0, c.Texts[2].X)
}

func TestBarTopLabels_LengthMismatch(t *testing.T) {
	t.Parallel()

	c := surface.NewCanvas()

	err := annotate.BarTopLabels(c, []string{"a", "b", "c"}, []float64{1, 2})
	require.ErrorIs(t, err, annotate.ErrLengthMismatch)
	assert.Empty(t, c.Texts)

	err = annotate.BarTopLabels(c, []string{"a"}, []float64{1, 2})
	require.ErrorIs(t, err, annotate.ErrLengthMismatch)
}

func TestBarTopLabels_Empty(t *testing.T) {
	t.Parallel()

	c := surface.NewCanvas()

	require.NoError(t, annotate.BarTopLabels[string](c, nil, nil))
	assert.Empty(t, c.Texts)
}

func TestBarTopLabels_PropagatesSurfaceError(t *testing.T) {
	t.Parallel()

	err := annotate.BarTopLabels(failingDrawer{}, []string{"a"}, []float64{1})
	require.ErrorIs(t, err, errDrawFailed)
}

func TestBarTopLabels_NaN(t *testing.T) {
	t.Parallel()

	c := surface.NewCanvas()

	require.NoError(t, annotate.BarTopLabels(c, []string{"a"}, []float64{math.NaN()}))
	assert.Equal(t, "nan", c.Texts[0].Text)
}

func TestSegmentLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"", "3.5", "", "2.0", ""},
		annotate.SegmentLabels([]float64{0, 3.5, -1, 2, math.NaN()}),
	)
}

func TestStackedSegmentLabels(t *testing.T) {
	t.Parallel()

	c := surface.NewCanvas()
	c.AddContainer("low", 0, 3.5, 1)
	c.AddContainer("high", 2, 0, -0.5)

	require.NoError(t, annotate.StackedSegmentLabels(c))

	require.Len(t, c.Labels, 2)
	assert.Equal(t, surface.BarLabels{
		Container: 0,
		Labels:    []string{"", "3.5", "1.0"},
		Placement: surface.LabelCenter,
	}, c.Labels[0])
	assert.Equal(t, []string{"2.0", "", ""}, c.Labels[1].Labels)
}

func TestStackedSegmentLabels_NoContainers(t *testing.T) {
	t.Parallel()

	c := surface.NewCanvas()

	require.NoError(t, annotate.StackedSegmentLabels(c))
	assert.Empty(t, c.Labels)
}
