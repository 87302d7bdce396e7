// Package commands implements CLI command handlers for plotaid.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/plotaid/pkg/version"
)

// Globals holds the persistent flags shared by every subcommand.
type Globals struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
}

// NewRootCommand builds the plotaid command tree.
func NewRootCommand() *cobra.Command {
	g := &Globals{}

	rootCmd := &cobra.Command{
		Use:   "plotaid",
		Short: "plotaid - chart annotation and dendrogram rendering",
		Long: `plotaid renders annotated bar charts and clustering dendrograms.

Commands:
  bars        Bar chart with value labels on top of every bar
  stacked     Stacked bar chart with a label inside every segment
  dendrogram  Dendrogram of a fitted agglomerative clustering model`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "config file (default plotaid.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&g.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&g.Quiet, "quiet", "q", false, "suppress output")

	rootCmd.AddCommand(NewBarsCommand(g))
	rootCmd.AddCommand(NewStackedCommand(g))
	rootCmd.AddCommand(NewDendrogramCommand(g))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "plotaid %s\n", version.String())
		},
	}
}
