// Package tableview prints linkage matrices and dendrogram layouts as
// terminal tables.
package tableview

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gonum.org/v1/gonum/mat"

	"github.com/Sumatoshi-tech/plotaid/pkg/dendrogram"
	"github.com/Sumatoshi-tech/plotaid/pkg/linkage"
	"github.com/Sumatoshi-tech/plotaid/pkg/numfmt"
	"github.com/Sumatoshi-tech/plotaid/pkg/safeconv"
)

const (
	distanceDecimals = 4
	swatch           = "■"
	noValue          = "-"
)

// Linkage writes one row per merge of z in construction order. When tree
// is not nil, each merge drawn in it shows its link colour.
func Linkage(w io.Writer, z mat.Matrix, tree *dendrogram.Tree, noColor bool) error {
	rows, _ := z.Dims()
	n := rows + 1

	colors := map[int]string{}
	if tree != nil {
		for k, link := range tree.Links {
			colors[link.ID] = tree.Colors[k]
		}
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.AppendHeader(table.Row{"#", "cluster", "left", "right", "distance", "size", "color"})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 5, Align: text.AlignRight},
		{Number: 6, Align: text.AlignRight},
	})

	for i := range rows {
		id := n + i
		tbl.AppendRow(table.Row{
			i,
			clusterName(id, n),
			clusterName(safeconv.MustFloatToInt(z.At(i, linkage.ColLeft)), n),
			clusterName(safeconv.MustFloatToInt(z.At(i, linkage.ColRight)), n),
			numfmt.RoundFormat(z.At(i, linkage.ColDistance), distanceDecimals),
			safeconv.MustFloatToInt(z.At(i, linkage.ColSize)),
			colorCell(colors[id], noColor),
		})
	}

	tbl.AppendFooter(table.Row{"", "", "", "", "merges", rows, ""})

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("write linkage table: %w", err)
	}

	return nil
}

// Leaves writes the drawn leaf order with labels and leaf colours.
func Leaves(w io.Writer, tree *dendrogram.Tree, noColor bool) error {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateColumns = false
	tbl.AppendHeader(table.Row{"position", "cluster", "label", "color"})

	for k, leaf := range tree.Leaves {
		tbl.AppendRow(table.Row{
			k,
			clusterName(leaf, tree.Observations),
			tree.LeafLabels[k],
			colorCell(tree.LeafColors[k], noColor),
		})
	}

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("write leaf table: %w", err)
	}

	return nil
}

// clusterName marks merged clusters with a leading "c" and keeps
// observations as bare indexes.
func clusterName(id, n int) string {
	if id >= n {
		return "c" + strconv.Itoa(id)
	}

	return strconv.Itoa(id)
}

func colorCell(hex string, noColor bool) string {
	if hex == "" {
		return noValue
	}

	r, g, b, ok := parseHex(hex)
	if !ok {
		return hex
	}

	c := color.RGB(r, g, b)
	if noColor {
		c.DisableColor()
	}

	return c.Sprint(swatch) + " " + hex
}

func parseHex(hex string) (r, g, b int, ok bool) {
	const hexLen = 6

	s := strings.TrimPrefix(hex, "#")
	if len(s) != hexLen {
		return 0, 0, 0, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}

	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
