package commands

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"gonum.org/v1/gonum/mat"

	"github.com/Sumatoshi-tech/plotaid/internal/input"
	"github.com/Sumatoshi-tech/plotaid/internal/tableview"
	"github.com/Sumatoshi-tech/plotaid/pkg/dendrogram"
	"github.com/Sumatoshi-tech/plotaid/pkg/linkage"
	"github.com/Sumatoshi-tech/plotaid/pkg/plotpage"
	"github.com/Sumatoshi-tech/plotaid/pkg/surface"
	"github.com/Sumatoshi-tech/plotaid/pkg/surface/echart"
)

const (
	extHTML = ".html"
	extSVG  = ".svg"
	extDOT  = ".dot"

	defaultTreeTitle = "Hierarchical clustering dendrogram"
	distanceAxisName = "distance"

	flagTruncateMode   = "truncate-mode"
	flagP              = "p"
	flagOrientation    = "orientation"
	flagColorThreshold = "color-threshold"
	flagShowLeafCounts = "show-leaf-counts"
	flagSort           = "sort"
)

// ErrOutputFormat is returned for an output file extension no renderer handles.
var ErrOutputFormat = errors.New("unsupported output format (use .html, .svg or .dot, optionally with .lz4)")

type dendrogramFlags struct {
	output         string
	truncateMode   string
	orientation    string
	sort           string
	p              int
	colorThreshold float64
	showLeafCounts bool
	printLinkage   bool
	dryRun         bool
}

// NewDendrogramCommand creates the dendrogram subcommand.
func NewDendrogramCommand(g *Globals) *cobra.Command {
	f := &dendrogramFlags{}

	cmd := &cobra.Command{
		Use:   "dendrogram <model-file>",
		Short: "Render the dendrogram of a fitted agglomerative clustering model",
		Long: `Render the dendrogram of a fitted agglomerative clustering model.

The model file holds the merge history (children), merge distances and
per-observation labels. The output format follows the extension of
--output: .html (interactive chart), .svg (Graphviz) or .dot.`,
		Args: cobra.ExactArgs(inputArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f.output == "" && !f.dryRun {
				return ErrNoOutput
			}

			s, err := startSession(cmd, g)
			if err != nil {
				return err
			}

			defer s.close()

			opts, err := f.options(cmd, s.cfg.DendrogramOptions())
			if err != nil {
				return err
			}

			return runDendrogram(cmd.Context(), s, args[0], opts, f)
		},
	}

	cmd.Flags().StringVarP(&f.output, outputFlag, outputShort, "", "output file (.html, .svg or .dot, add .lz4 to compress)")
	cmd.Flags().StringVar(&f.truncateMode, flagTruncateMode, "", "truncate mode: none, lastp or level")
	cmd.Flags().IntVar(&f.p, flagP, dendrogram.DefaultP, "truncation parameter")
	cmd.Flags().StringVar(&f.orientation, flagOrientation, "", "root side: top, bottom, left or right")
	cmd.Flags().StringVar(&f.sort, flagSort, "", "child order: none, count-ascending, count-descending, "+
		"distance-ascending or distance-descending")
	cmd.Flags().Float64Var(&f.colorThreshold, flagColorThreshold, 0,
		"colour clusters below this distance (0 = 0.7 * max distance, negative = off)")
	cmd.Flags().BoolVar(&f.showLeafCounts, flagShowLeafCounts, false, "label truncated leaves with their size")
	cmd.Flags().BoolVar(&f.printLinkage, "print-linkage", false, "print the linkage matrix and leaf order as tables")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "lay out and draw in memory without writing output")

	return cmd
}

// options applies the flags the user set on top of the configured options.
func (f *dendrogramFlags) options(cmd *cobra.Command, opts dendrogram.Options) (dendrogram.Options, error) {
	flags := cmd.Flags()

	if flags.Changed(flagTruncateMode) {
		opts.TruncateMode = dendrogram.TruncateMode(noneAsEmpty(f.truncateMode))
	}

	if flags.Changed(flagP) {
		opts.P = f.p
	}

	if flags.Changed(flagOrientation) {
		opts.Orientation = dendrogram.Orientation(f.orientation)
	}

	if flags.Changed(flagSort) {
		opts.Sort = dendrogram.SortOrder(noneAsEmpty(f.sort))
	}

	if flags.Changed(flagColorThreshold) {
		opts.ColorThreshold = f.colorThreshold
	}

	if flags.Changed(flagShowLeafCounts) {
		opts.ShowLeafCounts = f.showLeafCounts
	}

	err := opts.Validate()
	if err != nil {
		return opts, fmt.Errorf("dendrogram options: %w", err)
	}

	return opts, nil
}

func runDendrogram(ctx context.Context, s *session, path string, opts dendrogram.Options, f *dendrogramFlags) error {
	ctx, span := s.tracer.Start(ctx, "plotaid.dendrogram")
	defer span.End()

	doc, err := input.LoadModel(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	model := doc.Linkage()

	span.SetAttributes(
		attribute.Int("plotaid.observations", model.Leaves()),
		attribute.Int("plotaid.merges", len(model.Children)),
		attribute.String("plotaid.truncate_mode", string(opts.TruncateMode)),
	)

	z, err := linkage.Matrix(model)
	if err != nil {
		return fmt.Errorf("linkage matrix: %w", err)
	}

	s.logger.DebugContext(ctx, "linkage matrix built", "observations", model.Leaves(), "merges", len(model.Children))

	tree, err := renderDendrogram(ctx, s, doc, z, opts, f)
	if err != nil {
		return err
	}

	if f.printLinkage {
		err = tableview.Linkage(s.out, z, tree, color.NoColor)
		if err != nil {
			return err
		}

		err = tableview.Leaves(s.out, tree, color.NoColor)
		if err != nil {
			return err
		}
	}

	return nil
}

func renderDendrogram(
	ctx context.Context,
	s *session,
	doc *input.Model,
	z *mat.Dense,
	opts dendrogram.Options,
	f *dendrogramFlags,
) (*dendrogram.Tree, error) {
	model := doc.Linkage()

	if f.dryRun {
		canvas := surface.NewCanvas()

		tree, err := dendrogram.PlotModel(canvas, model, doc.LeafNames, opts)
		if err != nil {
			return nil, err
		}

		s.status("dry run: %d links, %d leaves", len(canvas.Lines), len(tree.Leaves))

		return tree, nil
	}

	base, _ := input.SplitCompressed(f.output)

	switch strings.ToLower(filepath.Ext(base)) {
	case extHTML:
		return writeDendrogramHTML(ctx, s, doc, model, opts, f.output)
	case extSVG, extDOT:
		return writeDendrogramGraph(ctx, s, doc, z, opts, f.output)
	default:
		return nil, fmt.Errorf("%w: %s", ErrOutputFormat, f.output)
	}
}

func writeDendrogramHTML(
	ctx context.Context,
	s *session,
	doc *input.Model,
	model linkage.Model,
	opts dendrogram.Options,
	output string,
) (*dendrogram.Tree, error) {
	title := orDefault(doc.Title, defaultTreeTitle)
	line := plotpage.BuildTreeChart(s.chartOpts(), title, distanceAxisName)

	tree, err := dendrogram.PlotModel(echart.NewLinePlotter(line), model, doc.LeafNames, opts)
	if err != nil {
		return nil, err
	}

	page := plotpage.NewPage(title, fmt.Sprintf("%d observations, %d merges", tree.Observations, len(model.Children)))
	page.Add(plotpage.Section{
		Title:    title,
		Subtitle: fmt.Sprintf("%d leaves drawn", len(tree.Leaves)),
		Chart:    line,
	})

	return tree, s.writePage(ctx, page, output)
}

func writeDendrogramGraph(
	ctx context.Context,
	s *session,
	doc *input.Model,
	z *mat.Dense,
	opts dendrogram.Options,
	output string,
) (*dendrogram.Tree, error) {
	tree, err := dendrogram.Layout(z, doc.LeafNames, opts)
	if err != nil {
		return nil, err
	}

	data := []byte(dendrogram.ToDOT(tree, opts))

	base, _ := input.SplitCompressed(output)

	if strings.EqualFold(filepath.Ext(base), extSVG) {
		data, err = dendrogram.RenderSVG(ctx, string(data))
		if err != nil {
			return nil, err
		}
	}

	return tree, s.writeFile(ctx, output, data)
}

func noneAsEmpty(s string) string {
	if s == "none" {
		return ""
	}

	return s
}
