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

const defaultStackedTitle = "Stacked values"

// NewStackedCommand creates the stacked subcommand.
func NewStackedCommand(g *Globals) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "stacked <file>",
		Short: "Render a stacked bar chart with a label inside every segment",
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

			return runStacked(cmd, s, args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, outputFlag, outputShort, "", outputUsage)

	return cmd
}

func runStacked(cmd *cobra.Command, s *session, path, output string) error {
	ctx, span := s.tracer.Start(cmd.Context(), "plotaid.stacked")
	defer span.End()

	doc, err := input.LoadStacked(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	span.SetAttributes(
		attribute.Int("plotaid.categories", len(doc.Categories)),
		attribute.Int("plotaid.series", len(doc.Series)),
	)

	series := make([]plotpage.BarSeries, len(doc.Series))
	for i, layer := range doc.Series {
		series[i] = plotpage.BarSeries{Name: layer.Name, Values: layer.Values}
	}

	title := orDefault(doc.Title, defaultStackedTitle)
	bar := plotpage.BuildBarChart(s.chartOpts(), title, doc.Categories, series, doc.YAxis, true)

	err = annotate.StackedSegmentLabels(echart.NewBarAxis(bar))
	if err != nil {
		return fmt.Errorf("annotate: %w", err)
	}

	s.logger.DebugContext(ctx, "segments labelled", "series", len(series))

	page := plotpage.NewPage(title, fmt.Sprintf("%d series over %d categories", len(series), len(doc.Categories)))
	page.Add(plotpage.Section{Title: title, Chart: bar})

	return s.writePage(ctx, page, output)
}
