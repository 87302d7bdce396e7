package surface

import (
	"fmt"
	"slices"
)

// TextMark is a recorded Text call.
type TextMark struct {
	X, Y  float64
	Text  string
	Align Align
}

// BarLabels is a recorded BarLabel call.
type BarLabels struct {
	Container int
	Labels    []string
	Placement LabelType
}

// Polyline is a recorded Line call.
type Polyline struct {
	Xs, Ys []float64
	Color  string
}

// TickSet is a recorded Ticks call.
type TickSet struct {
	Positions []float64
	Labels    []string
	Style     TickStyle
}

// Range is a recorded Limits call.
type Range struct {
	Lo, Hi   float64
	Inverted bool
}

// Bars is an in-memory bar container.
type Bars struct {
	Name   string
	Values []float64
}

// Heights implements Container.
func (b *Bars) Heights() []float64 {
	return slices.Clone(b.Values)
}

// Canvas is a headless surface that records every drawing call.
// It implements TextDrawer, Axis and Plotter.
type Canvas struct {
	Texts    []TextMark
	Labels   []BarLabels
	Lines    []Polyline
	TickSets map[Dir]TickSet
	Ranges   map[Dir]Range

	bars []*Bars
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{
		TickSets: make(map[Dir]TickSet),
		Ranges:   make(map[Dir]Range),
	}
}

// AddContainer adds a bar container to the canvas axis and returns it.
func (c *Canvas) AddContainer(name string, values ...float64) *Bars {
	b := &Bars{Name: name, Values: slices.Clone(values)}
	c.bars = append(c.bars, b)

	return b
}

// Text implements TextDrawer.
func (c *Canvas) Text(x, y float64, text string, align Align) error {
	c.Texts = append(c.Texts, TextMark{X: x, Y: y, Text: text, Align: align})

	return nil
}

// Containers implements Axis.
func (c *Canvas) Containers() []Container {
	out := make([]Container, len(c.bars))
	for i, b := range c.bars {
		out[i] = b
	}

	return out
}

// BarLabel implements Axis.
func (c *Canvas) BarLabel(container Container, labels []string, placement LabelType) error {
	idx := slices.IndexFunc(c.bars, func(b *Bars) bool { return Container(b) == container })
	if idx < 0 {
		return ErrForeignContainer
	}

	if len(labels) != len(c.bars[idx].Values) {
		return fmt.Errorf("%w: %d labels for %d segments", ErrLabelCount, len(labels), len(c.bars[idx].Values))
	}

	c.Labels = append(c.Labels, BarLabels{
		Container: idx,
		Labels:    slices.Clone(labels),
		Placement: placement,
	})

	return nil
}

// Line implements Plotter.
func (c *Canvas) Line(xs, ys []float64, color string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("%w: %d != %d", ErrCoordinateLengths, len(xs), len(ys))
	}

	c.Lines = append(c.Lines, Polyline{Xs: slices.Clone(xs), Ys: slices.Clone(ys), Color: color})

	return nil
}

// Ticks implements Plotter.
func (c *Canvas) Ticks(dir Dir, positions []float64, labels []string, style TickStyle) error {
	if len(positions) != len(labels) {
		return fmt.Errorf("%w: %d positions for %d labels", ErrLabelCount, len(positions), len(labels))
	}

	c.TickSets[dir] = TickSet{Positions: slices.Clone(positions), Labels: slices.Clone(labels), Style: style}

	return nil
}

// Limits implements Plotter.
func (c *Canvas) Limits(dir Dir, lo, hi float64, inverted bool) error {
	c.Ranges[dir] = Range{Lo: lo, Hi: hi, Inverted: inverted}

	return nil
}
