package dendrogram

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/Sumatoshi-tech/plotaid/pkg/numfmt"
)

// distanceDecimals is the precision of merge distances in DOT node labels.
const distanceDecimals = 3

// ToDOT converts a layout into a Graphviz digraph. Merge nodes carry their
// distance and size; leaves carry their tick label. Edges keep the layout's
// left-to-right child order and colour.
func ToDOT(t *Tree, o Options) string {
	var buf bytes.Buffer

	rankdir := map[Orientation]string{
		OrientTop:    "TB",
		OrientBottom: "BT",
		OrientLeft:   "RL",
		OrientRight:  "LR",
	}[o.orientation()]

	buf.WriteString("digraph dendrogram {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  ordering=out;\n")
	buf.WriteString("  node [fontsize=12, fontname=\"Helvetica\"];\n")
	buf.WriteString("\n")

	for k, leaf := range t.Leaves {
		label := t.LeafLabels[k]
		if label == "" {
			label = " "
		}

		fmt.Fprintf(&buf, "  %s [shape=box, style=rounded, label=%q];\n", nodeName(leaf), label)
	}

	buf.WriteString("\n")

	for k, link := range t.Links {
		label := "d=" + numfmt.RoundFormat(link.Distance, distanceDecimals) + "\\nn=" + strconv.Itoa(link.Count)
		fmt.Fprintf(&buf, "  %s [shape=point, xlabel=\"%s\", color=%q];\n", nodeName(link.ID), label, t.Colors[k])
		fmt.Fprintf(&buf, "  %s -> %s [color=%q, arrowhead=none];\n", nodeName(link.ID), nodeName(link.Left), t.Colors[k])
		fmt.Fprintf(&buf, "  %s -> %s [color=%q, arrowhead=none];\n", nodeName(link.ID), nodeName(link.Right), t.Colors[k])
	}

	buf.WriteString("}\n")

	return buf.String()
}

func nodeName(id int) string {
	return "c" + strconv.Itoa(id)
}

// RenderSVG renders DOT source to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer

	err = gv.Render(ctx, g, graphviz.SVG, &buf)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
