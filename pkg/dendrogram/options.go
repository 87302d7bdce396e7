package dendrogram

import "fmt"

// Orientation is the side of the plot the root is drawn on.
type Orientation string

// Orientations.
const (
	OrientTop    Orientation = "top"
	OrientBottom Orientation = "bottom"
	OrientLeft   Orientation = "left"
	OrientRight  Orientation = "right"
)

// TruncateMode selects how large trees are condensed.
type TruncateMode string

// Truncation modes.
const (
	// TruncateNone draws every merge.
	TruncateNone TruncateMode = ""
	// TruncateLastP draws only the last P merges; earlier clusters become leaves.
	TruncateLastP TruncateMode = "lastp"
	// TruncateLevel draws no more than P levels below the root.
	TruncateLevel TruncateMode = "level"
)

// SortOrder decides which child of a merge is drawn on the left.
type SortOrder string

// Child orders.
const (
	SortNone               SortOrder = ""
	SortCountAscending     SortOrder = "count-ascending"
	SortCountDescending    SortOrder = "count-descending"
	SortDistanceAscending  SortOrder = "distance-ascending"
	SortDistanceDescending SortOrder = "distance-descending"
)

// AutoRotation asks Draw to pick the leaf label rotation from the leaf count.
const AutoRotation = -1

// Default option values.
const (
	DefaultP                   = 30
	DefaultThresholdFactor     = 0.7
	DefaultAboveThresholdColor = "#1f77b4"
)

// DefaultLinkColors is the palette cycled through for clusters below the
// colour threshold.
var DefaultLinkColors = []string{
	"#ff7f0e", "#2ca02c", "#d62728", "#9467bd", "#8c564b",
	"#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Options configures layout and drawing.
type Options struct {
	Orientation  Orientation
	TruncateMode TruncateMode
	// P is the truncation parameter: merges kept for lastp, depth for level.
	P int

	// ColorThreshold colours every cluster whose links all lie below it in
	// its own colour. Zero selects 0.7 times the largest merge distance; a
	// negative value disables threshold colouring.
	ColorThreshold      float64
	AboveThresholdColor string
	LinkColors          []string

	Sort SortOrder

	// ShowLeafCounts labels truncated leaves with their observation count.
	ShowLeafCounts bool
	NoLabels       bool

	// LeafRotation in degrees; AutoRotation derives it from the leaf count.
	LeafRotation float64
	// LeafFontSize in points; zero derives it from the leaf count.
	LeafFontSize float64
}

// DefaultOptions returns the options used when a caller sets nothing.
func DefaultOptions() Options {
	return Options{
		Orientation:         OrientTop,
		P:                   DefaultP,
		AboveThresholdColor: DefaultAboveThresholdColor,
		LinkColors:          DefaultLinkColors,
		ShowLeafCounts:      true,
		LeafRotation:        AutoRotation,
	}
}

// Validate reports unknown enumerated values.
func (o Options) Validate() error {
	switch o.Orientation {
	case "", OrientTop, OrientBottom, OrientLeft, OrientRight:
	default:
		return fmt.Errorf("%w: %q", ErrOrientation, o.Orientation)
	}

	switch o.TruncateMode {
	case TruncateNone, TruncateLastP, TruncateLevel:
	default:
		return fmt.Errorf("%w: %q", ErrTruncateMode, o.TruncateMode)
	}

	switch o.Sort {
	case SortNone, SortCountAscending, SortCountDescending, SortDistanceAscending, SortDistanceDescending:
	default:
		return fmt.Errorf("%w: %q", ErrSortOrder, o.Sort)
	}

	return nil
}

func (o Options) orientation() Orientation {
	if o.Orientation == "" {
		return OrientTop
	}

	return o.Orientation
}

func (o Options) aboveThresholdColor() string {
	if o.AboveThresholdColor == "" {
		return DefaultAboveThresholdColor
	}

	return o.AboveThresholdColor
}

func (o Options) linkColors() []string {
	if len(o.LinkColors) == 0 {
		return DefaultLinkColors
	}

	return o.LinkColors
}
