package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/trace"

	"github.com/Sumatoshi-tech/plotaid/internal/input"
	"github.com/Sumatoshi-tech/plotaid/pkg/config"
	"github.com/Sumatoshi-tech/plotaid/pkg/observability"
	"github.com/Sumatoshi-tech/plotaid/pkg/plotpage"
	"github.com/Sumatoshi-tech/plotaid/pkg/safeconv"
	"github.com/Sumatoshi-tech/plotaid/pkg/version"
)

const outputFilePerm = 0o600

// ErrNoOutput is returned when the --output flag is not set.
var ErrNoOutput = errors.New("output file is required (use --output)")

// session carries the configuration and observability providers of one
// command invocation.
type session struct {
	cfg    *config.Config
	tracer trace.Tracer
	logger *slog.Logger
	out    io.Writer
	quiet  bool

	shutdown func(ctx context.Context) error
}

func startSession(cmd *cobra.Command, g *Globals) (*session, error) {
	cfg, err := config.LoadConfig(g.ConfigPath)
	if err != nil {
		return nil, err
	}

	obsCfg := cfg.Observability(cmd.Name(), version.Version)

	switch {
	case g.Verbose:
		obsCfg.LogLevel = slog.LevelDebug
	case g.Quiet:
		obsCfg.LogLevel = slog.LevelError
	}

	providers, err := observability.Init(cmd.Context(), obsCfg, cmd.ErrOrStderr())
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	slog.SetDefault(providers.Logger)

	return &session{
		cfg:      cfg,
		tracer:   providers.Tracer,
		logger:   providers.Logger,
		out:      cmd.OutOrStdout(),
		quiet:    g.Quiet,
		shutdown: providers.Shutdown,
	}, nil
}

func (s *session) close() {
	err := s.shutdown(context.Background())
	if err != nil {
		s.logger.Warn("observability shutdown failed", "error", err)
	}
}

func (s *session) chartOpts() *plotpage.ChartOpts {
	return plotpage.NewChartOpts(s.cfg.Theme(), s.cfg.Output.Width, s.cfg.Output.Height)
}

// writePage renders page and writes it to path.
func (s *session) writePage(ctx context.Context, page *plotpage.Page, path string) error {
	var buf bytes.Buffer

	err := page.WithTheme(s.cfg.Theme()).Render(&buf)
	if err != nil {
		return fmt.Errorf("render page: %w", err)
	}

	return s.writeFile(ctx, path, buf.Bytes())
}

// writeFile writes data to path, inside an LZ4 frame when path ends in .lz4.
func (s *session) writeFile(ctx context.Context, path string, data []byte) error {
	if _, compressed := input.SplitCompressed(path); compressed {
		packed, err := input.Compress(data)
		if err != nil {
			return fmt.Errorf("compress %s: %w", path, err)
		}

		data = packed
	}

	err := os.WriteFile(path, data, outputFilePerm)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.logger.InfoContext(ctx, "output written", "path", path, "bytes", len(data))
	s.status("wrote %s (%s)", path, humanize.Bytes(safeconv.IntToUint64(len(data))))

	return nil
}

// status prints a coloured one-line progress message unless quiet.
func (s *session) status(format string, args ...any) {
	if s.quiet {
		return
	}

	fmt.Fprintln(s.out, color.GreenString("✓")+" "+fmt.Sprintf(format, args...))
}
