package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/session-history/internal"
	"github.com/iksnae/session-history/internal/export"
	"github.com/spf13/cobra"
)

var (
	verbose     bool
	reportDate  string
	projectsDir string
	format      string
	configPath  string
	version     string = "dev"
	commit      string = "unknown"
	date        string = "unknown"

	nowFunc = time.Now
)

// rootCmd prints the day's session summary when called without subcommands
var rootCmd = &cobra.Command{
	Use:   "session-history",
	Short: "Summarize the Claude Code sessions of a day",
	Long: `Summarize the Claude Code sessions you worked on during one day (KST).

Session logs are read from ~/.claude/projects (or $CLAUDE_CONFIG_DIR/projects).
Every session modified during the day is listed under its project together with
the first message you sent in it.

Quick Start:
  session-history                     # Today's sessions
  session-history -d 2025-01-31       # Sessions of a specific day
  session-history -f md > today.md    # Export as Markdown`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		internal.SetVerbose(verbose)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReport(cmd.OutOrStdout())
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runReport(out io.Writer) error {
	window, err := internal.NewTimeWindow(reportDate, nowFunc())
	if err != nil {
		return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
	}

	cfg, err := internal.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	outputFormat := format
	if outputFormat == "" {
		outputFormat = cfg.Format
	}
	exporter, err := export.NewExporter(outputFormat)
	if err != nil {
		return err
	}
	_, textOutput := exporter.(*export.TextExporter)

	paths, err := cfg.ResolveStoragePaths(projectsDir)
	if err != nil {
		return fmt.Errorf("failed to get storage paths: %w", err)
	}
	internal.LogDebug("Projects directory: %s", paths.ProjectsDir)
	internal.LogDebug("Window %s: %s .. %s", window.Label, window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))

	files, err := internal.FindSessionFiles(paths.ProjectsDir, window)
	if err != nil {
		if errors.Is(err, internal.ErrProjectsDirNotFound) {
			fmt.Fprintln(out, errorStyle(out).Render("❌ Claude Code projects directory not found: "+paths.ProjectsDir))
			return nil
		}
		return fmt.Errorf("failed to find session files: %w", err)
	}

	if len(files) == 0 && textOutput {
		fmt.Fprintln(out, emptyStyle(out).Render(fmt.Sprintf("📭 No sessions found for %s (KST).", window.Label)))
		return nil
	}

	namer := internal.NewProjectNamer(cfg.HomePrefix)
	report := internal.BuildReport(window.Label, files, internal.ExtractRecord, namer)
	internal.LogDebug("Built report: %s", report.Summary())

	if err := exporter.Export(report, out); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func errorStyle(out io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(out).NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)
}

func emptyStyle(out io.Writer) lipgloss.Style {
	return lipgloss.NewRenderer(out).NewStyle().
		Foreground(lipgloss.Color("243"))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&projectsDir, "projects-dir", "", "Custom Claude Code projects directory")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.config/session-history/config.yaml)")
	rootCmd.Flags().StringVarP(&reportDate, "date", "d", "", "Day to summarize (YYYY-MM-DD, default: today in KST)")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: text, md, json, jsonl, yaml")

	// Set version template to ensure --version flag works
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
