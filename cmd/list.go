package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/session-history/internal"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var (
	listDate string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the day's sessions in modification order",
	Long: `List every session modified during the day (KST) as a flat table, oldest
first, with its short session ID, project, start time and first message.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		window, err := internal.NewTimeWindow(listDate, nowFunc())
		if err != nil {
			return fmt.Errorf("invalid --date (want YYYY-MM-DD): %w", err)
		}

		cfg, err := internal.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		paths, err := cfg.ResolveStoragePaths(projectsDir)
		if err != nil {
			return fmt.Errorf("failed to get storage paths: %w", err)
		}

		files, err := internal.FindSessionFiles(paths.ProjectsDir, window)
		if err != nil {
			if errors.Is(err, internal.ErrProjectsDirNotFound) {
				fmt.Fprintln(out, errorStyle(out).Render("❌ Claude Code projects directory not found: "+paths.ProjectsDir))
				return nil
			}
			return fmt.Errorf("failed to find session files: %w", err)
		}

		displaySessions(out, window, files, internal.NewProjectNamer(cfg.HomePrefix))
		return nil
	},
}

func displaySessions(out io.Writer, window internal.TimeWindow, files []internal.LogFile, namer *internal.ProjectNamer) {
	r := lipgloss.NewRenderer(out)

	headerStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62"))

	titleStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212"))

	idStyle := r.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	projectStyle := r.NewStyle().
		Foreground(lipgloss.Color("135"))

	dateStyle := r.NewStyle().
		Foreground(lipgloss.Color("243"))

	if len(files) == 0 {
		fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("📭 No sessions found for %s (KST).", window.Label)))
		return
	}

	fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("📋 %d session(s) on %s (KST)", len(files), window.Label)))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	_, _ = fmt.Fprintln(w, titleStyle.Render("ID")+"\t"+titleStyle.Render("Project")+"\t"+titleStyle.Render("Time")+"\t"+titleStyle.Render("First message")+"\t")
	_, _ = fmt.Fprintln(w, strings.Repeat("─", 100))

	for _, f := range files {
		id := f.ShortID()
		if id == "" {
			id = "—"
		}

		when, message := "—", ""
		rec, err := internal.ExtractRecord(f.Path)
		switch {
		case err != nil:
			internal.LogDebug("Skipping %s: %v", f.Path, err)
			message = "(unreadable)"
		case rec == nil:
			message = "(no user message)"
		default:
			when = internal.FormatLocalTime(rec.Timestamp)
			message = internal.DisplayMessage(rec.Message)
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			idStyle.Render(id),
			projectStyle.Render(namer.Name(f.Dir)),
			dateStyle.Render(when),
			message)
	}

	_ = w.Flush()
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listDate, "date", "d", "", "Day to list (YYYY-MM-DD, default: today in KST)")
}
