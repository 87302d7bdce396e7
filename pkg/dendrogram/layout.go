// Package dendrogram lays out and draws the tree diagram of a linkage
// matrix. Leaves sit at x = 5, 15, 25, ...; each link is a four-point
// polyline (left foot, left shoulder, right shoulder, right foot).
package dendrogram

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/Sumatoshi-tech/plotaid/pkg/linkage"
	"github.com/Sumatoshi-tech/plotaid/pkg/safeconv"
)

// Sentinel errors.
var (
	ErrLabelCount   = errors.New("label count does not match observation count")
	ErrOrientation  = errors.New("unknown orientation")
	ErrTruncateMode = errors.New("unknown truncate mode")
	ErrSortOrder    = errors.New("unknown sort order")
)

const (
	leafSpacing = 10.0
	leafOffset  = 5.0
	leafWidth   = 10.0
)

// Link is one drawn merge.
type Link struct {
	// ID is the cluster id created by the merge (n + merge index).
	ID int
	// Left and Right are the child cluster ids in drawing order.
	Left, Right int
	Distance    float64
	Count       int
}

// Tree is a computed dendrogram layout.
type Tree struct {
	// ICoord holds the leaf-axis coordinates of every link.
	ICoord [][4]float64
	// DCoord holds the distance-axis coordinates of every link.
	DCoord [][4]float64
	// Colors holds the colour of every link.
	Colors []string
	// Links describes the merge behind every link.
	Links []Link

	// Leaves holds the cluster id of every drawn leaf, left to right.
	// Ids >= Observations are truncated clusters.
	Leaves []int
	// LeafLabels holds the tick text of every drawn leaf.
	LeafLabels []string
	// LeafColors holds the colour of the link each leaf hangs from.
	LeafColors []string

	Observations int
	MaxDistance  float64
}

type layouter struct {
	z      mat.Matrix
	n      int
	p      int
	mode   TruncateMode
	sort   SortOrder
	labels []string
	counts bool

	threshold float64
	above     string
	palette   []string

	currentColor   int
	belowThreshold bool

	tree *Tree
}

// Layout computes the dendrogram of linkage matrix z. labels, when not
// nil, names every original observation.
func Layout(z mat.Matrix, labels []string, o Options) (*Tree, error) {
	err := o.Validate()
	if err != nil {
		return nil, err
	}

	err = linkage.Validate(z)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	n := linkage.Observations(z)
	if labels != nil && len(labels) != n {
		return nil, fmt.Errorf("%w: %d labels for %d observations", ErrLabelCount, len(labels), n)
	}

	maxDist := maxDistance(z)

	l := &layouter{
		z:         z,
		n:         n,
		p:         truncationDepth(o.TruncateMode, o.P, n),
		mode:      o.TruncateMode,
		sort:      o.Sort,
		labels:    labels,
		counts:    o.ShowLeafCounts,
		threshold: o.ColorThreshold,
		above:     o.aboveThresholdColor(),
		palette:   o.linkColors(),
		tree: &Tree{
			Observations: n,
			MaxDistance:  maxDist,
		},
	}

	if l.threshold == 0 {
		l.threshold = maxDist * DefaultThresholdFactor
	}

	l.visit(2*n-2, 0, 0)

	l.tree.LeafColors = leafColors(l.tree)

	return l.tree, nil
}

func truncationDepth(mode TruncateMode, p, n int) int {
	switch mode {
	case TruncateLastP:
		if p > n || p <= 0 {
			return n
		}
	case TruncateLevel:
		if p <= 0 {
			return math.MaxInt
		}
	case TruncateNone:
	}

	return p
}

func maxDistance(z mat.Matrix) float64 {
	rows, _ := z.Dims()
	maxDist := 0.0

	for i := range rows {
		maxDist = math.Max(maxDist, z.At(i, linkage.ColDistance))
	}

	return maxDist
}

// visit lays out the subtree rooted at cluster i starting at leaf-axis
// offset iv. It returns the x position of the subtree root, the width
// consumed, the root height and the largest distance inside the subtree.
func (l *layouter) visit(i int, iv float64, level int) (pos, width, height, maxDist float64) {
	if i < l.n {
		l.appendSingleton(i)

		return iv + leafOffset, leafWidth, 0, 0
	}

	row := i - l.n

	if l.truncated(i, level) {
		l.appendTruncated(i)
		d := l.z.At(row, linkage.ColDistance)

		return iv + leafOffset, leafWidth, 0, d
	}

	left, right := l.order(row)
	h := l.z.At(row, linkage.ColDistance)

	leftPos, leftWidth, leftHeight, leftMax := l.visit(left, iv, level+1)

	color := l.linkColor(h)

	rightPos, rightWidth, rightHeight, rightMax := l.visit(right, iv+leftWidth, level+1)

	l.tree.ICoord = append(l.tree.ICoord, [4]float64{leftPos, leftPos, rightPos, rightPos})
	l.tree.DCoord = append(l.tree.DCoord, [4]float64{leftHeight, h, h, rightHeight})
	l.tree.Colors = append(l.tree.Colors, color)
	l.tree.Links = append(l.tree.Links, Link{
		ID:       i,
		Left:     left,
		Right:    right,
		Distance: h,
		Count:    safeconv.MustFloatToInt(l.z.At(row, linkage.ColSize)),
	})

	return (leftPos + rightPos) / 2, leftWidth + rightWidth, h, math.Max(math.Max(leftMax, rightMax), h)
}

func (l *layouter) truncated(i, level int) bool {
	switch l.mode {
	case TruncateLastP:
		return i >= l.n && i < 2*l.n-l.p
	case TruncateLevel:
		return level > l.p
	case TruncateNone:
	}

	return false
}

// linkColor picks the colour of a link at height h. Runs of links below the
// threshold share one palette colour; the palette advances each time the
// walk climbs back above the threshold.
func (l *layouter) linkColor(h float64) string {
	if h >= l.threshold || l.threshold <= 0 {
		if l.belowThreshold {
			l.currentColor = (l.currentColor + 1) % len(l.palette)
		}

		l.belowThreshold = false

		return l.above
	}

	l.belowThreshold = true

	return l.palette[l.currentColor]
}

func (l *layouter) order(row int) (left, right int) {
	a := safeconv.MustFloatToInt(l.z.At(row, linkage.ColLeft))
	b := safeconv.MustFloatToInt(l.z.At(row, linkage.ColRight))
	na, da := l.stats(a)
	nb, db := l.stats(b)

	switch l.sort {
	case SortCountAscending:
		if na > nb {
			return b, a
		}
	case SortCountDescending:
		if na <= nb {
			return b, a
		}
	case SortDistanceAscending:
		if da > db {
			return b, a
		}
	case SortDistanceDescending:
		if da <= db {
			return b, a
		}
	case SortNone:
	}

	return a, b
}

func (l *layouter) stats(id int) (count, dist float64) {
	if id < l.n {
		return 1, 0
	}

	return l.z.At(id-l.n, linkage.ColSize), l.z.At(id-l.n, linkage.ColDistance)
}

func (l *layouter) appendSingleton(i int) {
	l.tree.Leaves = append(l.tree.Leaves, i)

	label := strconv.Itoa(i)
	if l.labels != nil {
		label = l.labels[i]
	}

	l.tree.LeafLabels = append(l.tree.LeafLabels, label)
}

func (l *layouter) appendTruncated(i int) {
	l.tree.Leaves = append(l.tree.Leaves, i)

	label := ""
	if l.counts {
		label = "(" + strconv.Itoa(safeconv.MustFloatToInt(l.z.At(i-l.n, linkage.ColSize))) + ")"
	}

	l.tree.LeafLabels = append(l.tree.LeafLabels, label)
}

// leafColors gives each leaf the colour of the link whose foot touches it.
func leafColors(t *Tree) []string {
	colors := make([]string, len(t.Leaves))

	for k, xs := range t.ICoord {
		for j, x := range xs {
			if t.DCoord[k][j] != 0 {
				continue
			}

			idx := int((x - leafOffset) / leafSpacing)
			if x == leafOffset+float64(idx)*leafSpacing && idx >= 0 && idx < len(colors) {
				colors[idx] = t.Colors[k]
			}
		}
	}

	return colors
}
