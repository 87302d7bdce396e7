// Package surface defines the drawing handles the annotators and the
// dendrogram renderer draw onto. Every call receives its surface explicitly;
// nothing relies on an implicit "current chart".
package surface

import "errors"

// Sentinel errors shared by surface implementations.
var (
	ErrLabelCount        = errors.New("label count does not match container size")
	ErrForeignContainer  = errors.New("container does not belong to this axis")
	ErrNoAnchor          = errors.New("surface has no series to anchor text on")
	ErrCoordinateLengths = errors.New("x and y coordinate lengths differ")
)

// Align is the horizontal alignment of a text annotation.
type Align string

// Text alignments.
const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// LabelType selects where a bar label is placed relative to its segment.
type LabelType string

// Bar label placements.
const (
	// LabelEdge places the label just past the end of the bar.
	LabelEdge LabelType = "edge"
	// LabelCenter places the label in the middle of the bar segment.
	LabelCenter LabelType = "center"
)

// Dir names a plot axis.
type Dir string

// Axis directions.
const (
	DirX Dir = "x"
	DirY Dir = "y"
)

// TickStyle controls how tick labels are drawn.
type TickStyle struct {
	Rotation float64
	FontSize float64
}

// TextDrawer draws free text at data coordinates.
type TextDrawer interface {
	Text(x, y float64, text string, align Align) error
}

// Container is one group of bar segments, e.g. one series of a stacked bar chart.
type Container interface {
	// Heights returns the height of every segment in the container.
	Heights() []float64
}

// Axis is a bar chart axis owning a set of containers.
type Axis interface {
	Containers() []Container
	// BarLabel attaches one label per segment of c.
	BarLabel(c Container, labels []string, placement LabelType) error
}

// Plotter draws line work and ticks, as needed by tree diagrams.
type Plotter interface {
	Line(xs, ys []float64, color string) error
	Ticks(dir Dir, positions []float64, labels []string, style TickStyle) error
	Limits(dir Dir, lo, hi float64, inverted bool) error
}
