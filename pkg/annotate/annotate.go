// Package annotate writes value labels onto bar charts.
package annotate

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/plotaid/pkg/numfmt"
	"github.com/Sumatoshi-tech/plotaid/pkg/surface"
)

// LabelDecimals is the number of decimals bar-top labels are rounded to.
const LabelDecimals = 2

// ErrLengthMismatch is returned when positions and values differ in length.
var ErrLengthMismatch = errors.New("positions and values differ in length")

// BarTopLabels draws each value, rounded to two decimals, centered above its bar.
// Bars sit at integer positions 0..n-1 in category order, so positions only
// fixes how many bars there are.
func BarTopLabels[P any](s surface.TextDrawer, positions []P, values []float64) error {
	if len(positions) != len(values) {
		return fmt.Errorf("%w: %d positions, %d values", ErrLengthMismatch, len(positions), len(values))
	}

	for i, v := range values {
		y := numfmt.Round(v, LabelDecimals)

		err := s.Text(float64(i), y, numfmt.Format(y), surface.AlignCenter)
		if err != nil {
			return fmt.Errorf("bar %d: %w", i, err)
		}
	}

	return nil
}

// StackedSegmentLabels labels every segment of every container on the axis
// with its height, centered inside the segment. Segments whose height is not
// strictly positive get an empty label.
func StackedSegmentLabels(axis surface.Axis) error {
	for i, c := range axis.Containers() {
		err := axis.BarLabel(c, SegmentLabels(c.Heights()), surface.LabelCenter)
		if err != nil {
			return fmt.Errorf("container %d: %w", i, err)
		}
	}

	return nil
}

// SegmentLabels returns the label text for each segment height.
func SegmentLabels(heights []float64) []string {
	labels := make([]string, len(heights))

	for i, h := range heights {
		if h > 0 {
			labels[i] = numfmt.Format(h)
		}
	}

	return labels
}
