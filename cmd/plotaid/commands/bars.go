package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Sumatoshi-tech/plotaid/internal/input"
	"github.com/Sumatoshi-tech/plotaid/pkg/annotate"
	"github.com/Sumatoshi-tech/plotaid/pkg/plotpage"
	"github.com/Sumatoshi-tech/plotaid/pkg/surface/echart"
)

const (
	outputFlag      = "output"
	outputShort     = "o"
	outputUsage     = "output HTML file"
	inputArgCount   = 1
	defaultBarTitle = "Values"
)

// NewBarsCommand creates the bars subcommand.
func NewBarsCommand(g *Globals) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "bars <file>",
		Short: "Render a bar chart with value labels on top of every bar",
		Args:  cobra.ExactArgs(inputArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return ErrNoOutput
			}

			s, err := startSession(cmd, g)
			if err != nil {
				return err
			}

			defer s.close()

			return runBars(cmd, s, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, outputFlag, outputShort, "", outputUsage)

	return cmd
}

func runBars(cmd *cobra.Command, s *session, path, output string) error {
	ctx, span := s.tracer.Start(cmd.Context(), "plotaid.bars")
	defer span.End()

	doc, err := input.LoadBars(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	span.SetAttributes(attribute.Int("plotaid.bars", len(doc.Values)))
	s.logger.DebugContext(ctx, "bars loaded", "path", path, "bars", len(doc.Values))

	title := orDefault(doc.Title, defaultBarTitle)
	bar := plotpage.BuildBarChart(s.chartOpts(), title, doc.Categories,
		[]plotpage.BarSeries{{Name: orDefault(doc.YAxis, title), Values: doc.Values}}, doc.YAxis, false)

	positions := make([]int, len(doc.Values))
	for i := range positions {
		positions[i] = i
	}

	err = annotate.BarTopLabels(echart.NewBarAxis(bar), positions, doc.Values)
	if err != nil {
		return fmt.Errorf("annotate: %w", err)
	}

	page := plotpage.NewPage(title, fmt.Sprintf("%d bars from %s", len(doc.Values), path))
	page.Add(plotpage.Section{Title: title, Chart: bar})

	return s.writePage(ctx, page, output)
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}

	return s
}
