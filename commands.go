package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"machinereport/ascii"
	"machinereport/config"
	"machinereport/layout"
	"machinereport/logger"
	"machinereport/report"
	"machinereport/sysinfo"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "machine-report",
		Short: "Print a machine status report",
		Long: `Collect the local machine's OS, network, CPU, memory, disk and login
state and print it as a single box-drawn table.

Settings come from the environment:
  MACHINE_REPORT_THEME  auto, plain or color (default auto)
  MACHINE_REPORT_WIDTH  heuristic or exact column measuring (default heuristic)
  MACHINE_REPORT_DEBUG  log collector failures to stderr`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := setup()
			out := cmd.OutOrStdout()
			c := sysinfo.NewLocalCollector(log)
			return report.Run(cmd.Context(), out, c, measureFor(cfg.Width), selectTheme(cfg.Theme, out))
		},
	}

	root.AddCommand(newVersionCmd(), newSnapshotCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	var short bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, version)
				return
			}
			fmt.Fprintf(out, "machine-report %s\n", formatVersion(version))
			fmt.Fprintf(out, "commit: %s\n", commit)
			fmt.Fprintf(out, "built: %s\n", date)
			fmt.Fprintf(out, "go: %s\n", runtime.Version())
			fmt.Fprintf(out, "os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
	cmd.Flags().BoolVar(&short, "short", false, "Print only the version number")
	return cmd
}

func newSnapshotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "snapshot",
		Short: "Print the collected data as YAML",
		Long: `Run the same collectors as the report and print the raw snapshots
as a YAML document instead of a table.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log := setup()
			r := report.Gather(cmd.Context(), sysinfo.NewLocalCollector(log))
			return report.WriteYAML(cmd.OutOrStdout(), r)
		},
	}
}

// setup loads the configuration and builds the stderr logger. A bad setting
// is reported and replaced by its default.
func setup() (*config.Config, logger.Logger) {
	cfg, err := config.Load()
	log := logger.NewEnvLogger("[report]", cfg.Debug)
	if err != nil {
		log.Warn("%v", err)
	}
	return cfg, log
}

// formatVersion ensures version has a 'v' prefix for display
func formatVersion(v string) string {
	if v == "" || v == "dev" {
		return v
	}
	if v[0] != 'v' {
		return "v" + v
	}
	return v
}

func measureFor(width string) layout.Measure {
	if width == config.WidthExact {
		return layout.ExactWidth
	}
	return layout.DisplayWidth
}

// selectTheme resolves the theme setting against out. "auto" colors only a
// terminal; "color" forces 256-color output even into a pipe.
func selectTheme(mode string, out io.Writer) ascii.Theme {
	switch mode {
	case config.ThemePlain:
		return ascii.Plain()
	case config.ThemeColor:
		r := lipgloss.NewRenderer(out)
		r.SetColorProfile(termenv.ANSI256)
		return ascii.Color(r)
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return ascii.Color(lipgloss.NewRenderer(out))
	}
	return ascii.Plain()
}
