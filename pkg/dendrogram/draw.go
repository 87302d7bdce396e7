package dendrogram

import (
	"fmt"
	"math"

	"github.com/Sumatoshi-tech/plotaid/pkg/linkage"
	"github.com/Sumatoshi-tech/plotaid/pkg/surface"
)

// distanceHeadroom is the share of the largest distance left above the root.
const distanceHeadroom = 0.05

// Leaf label sizing by leaf count: up to the bound, use the value.
var (
	rotationSteps = []struct {
		leaves   int
		rotation float64
	}{{20, 0}, {40, 45}, {math.MaxInt, 90}}

	fontSteps = []struct {
		leaves int
		size   float64
	}{{20, 12}, {30, 10}, {50, 8}, {85, 6}, {math.MaxInt, 5}}
)

// Draw renders a computed layout onto p.
func Draw(p surface.Plotter, t *Tree, o Options) error {
	orient := o.orientation()

	leafExtent := float64(len(t.LeafLabels)) * leafSpacing
	distExtent := t.MaxDistance + t.MaxDistance*distanceHeadroom

	leafDir, distDir := surface.DirX, surface.DirY
	if orient == OrientLeft || orient == OrientRight {
		leafDir, distDir = surface.DirY, surface.DirX
	}

	err := p.Limits(leafDir, 0, leafExtent, false)
	if err != nil {
		return fmt.Errorf("leaf axis limits: %w", err)
	}

	inverted := orient == OrientBottom || orient == OrientLeft

	err = p.Limits(distDir, 0, distExtent, inverted)
	if err != nil {
		return fmt.Errorf("distance axis limits: %w", err)
	}

	err = drawTicks(p, leafDir, t, o)
	if err != nil {
		return err
	}

	for k := range t.ICoord {
		xs, ys := t.ICoord[k][:], t.DCoord[k][:]
		if leafDir == surface.DirY {
			xs, ys = ys, xs
		}

		err = p.Line(xs, ys, t.Colors[k])
		if err != nil {
			return fmt.Errorf("link %d: %w", k, err)
		}
	}

	return nil
}

func drawTicks(p surface.Plotter, dir surface.Dir, t *Tree, o Options) error {
	if o.NoLabels {
		err := p.Ticks(dir, nil, nil, surface.TickStyle{})
		if err != nil {
			return fmt.Errorf("leaf ticks: %w", err)
		}

		return nil
	}

	positions := make([]float64, len(t.LeafLabels))
	for i := range positions {
		positions[i] = leafOffset + float64(i)*leafSpacing
	}

	style := surface.TickStyle{
		Rotation: o.LeafRotation,
		FontSize: o.LeafFontSize,
	}

	if style.Rotation == AutoRotation {
		style.Rotation = tickRotation(len(positions))
	}

	if style.FontSize <= 0 {
		style.FontSize = tickFontSize(len(positions))
	}

	err := p.Ticks(dir, positions, t.LeafLabels, style)
	if err != nil {
		return fmt.Errorf("leaf ticks: %w", err)
	}

	return nil
}

func tickRotation(leaves int) float64 {
	for _, s := range rotationSteps {
		if leaves <= s.leaves {
			return s.rotation
		}
	}

	return 0
}

func tickFontSize(leaves int) float64 {
	for _, s := range fontSteps {
		if leaves <= s.leaves {
			return s.size
		}
	}

	return 0
}

// PlotModel draws the dendrogram of a fitted clustering model: it derives
// the linkage matrix from the merge history, lays it out and draws it.
func PlotModel(p surface.Plotter, m linkage.Model, labels []string, o Options) (*Tree, error) {
	z, err := linkage.Matrix(m)
	if err != nil {
		return nil, fmt.Errorf("linkage matrix: %w", err)
	}

	t, err := Layout(z, labels, o)
	if err != nil {
		return nil, err
	}

	err = Draw(p, t, o)
	if err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}

	return t, nil
}
