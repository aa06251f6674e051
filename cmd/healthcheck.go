package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/iksnae/session-history/internal"
	"github.com/spf13/cobra"
)

// healthcheckCmd represents the healthcheck command
var healthcheckCmd = &cobra.Command{
	Use:   "healthcheck",
	Short: "Check if session-history can locate and read Claude Code sessions",
	Long: `Check the health of session-history by verifying:
  • Projects directory detection
  • Projects directory availability
  • Project and session file counts
  • Sessions found for today (KST)

This command is useful for debugging storage issues.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		r := lipgloss.NewRenderer(out)

		successStyle := r.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

		warningStyle := r.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

		errorStyle := r.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

		infoStyle := r.NewStyle().
			Foreground(lipgloss.Color("39"))

		sectionStyle := r.NewStyle().
			Foreground(lipgloss.Color("62")).
			Bold(true).
			Underline(true)

		fmt.Fprintln(out, sectionStyle.Render("🔍 Session History Health Check"))
		fmt.Fprintln(out)

		// Step 1: Resolve paths
		fmt.Fprintln(out, infoStyle.Render("Step 1: Detecting projects directory..."))
		cfg, err := internal.LoadConfig(configPath)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to load config:"), err)
			return err
		}
		paths, err := cfg.ResolveStoragePaths(projectsDir)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to detect projects directory:"), err)
			return err
		}
		fmt.Fprintln(out, successStyle.Render("✅ Projects directory resolved"))
		if verbose {
			fmt.Fprintf(out, "   Base path: %s\n", paths.BasePath)
			fmt.Fprintf(out, "   Projects: %s\n", paths.ProjectsDir)
		}
		fmt.Fprintln(out)

		// Step 2: Check the directory exists
		fmt.Fprintln(out, infoStyle.Render("Step 2: Checking projects directory..."))
		if !paths.ProjectsDirExists() {
			fmt.Fprintln(out, warningStyle.Render("⚠️  Projects directory not found"))
			fmt.Fprintf(out, "   Expected: %s\n", paths.ProjectsDir)
			return nil
		}
		fmt.Fprintln(out, successStyle.Render("✅ Projects directory exists"))
		fmt.Fprintln(out)

		// Step 3: Count projects and session files
		fmt.Fprintln(out, infoStyle.Render("Step 3: Scanning session files..."))
		stats, err := paths.ScanProjects()
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to scan projects directory:"), err)
			return err
		}
		if stats.SessionFiles == 0 {
			fmt.Fprintln(out, warningStyle.Render("⚠️  No session files found"))
		} else {
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ Found %d session file(s) in %d project(s)", stats.SessionFiles, stats.Projects)))
		}
		if verbose {
			fmt.Fprintf(out, "   Total size: %s\n", humanize.Bytes(uint64(stats.TotalBytes)))
			fmt.Fprintf(out, "   Hidden directories skipped: %d\n", stats.Skipped)
		}
		fmt.Fprintln(out)

		// Step 4: Today's sessions
		fmt.Fprintln(out, infoStyle.Render("Step 4: Checking today's sessions..."))
		window := internal.TodayWindow(nowFunc())
		files, err := internal.FindSessionFiles(paths.ProjectsDir, window)
		if err != nil {
			fmt.Fprintln(out, errorStyle.Render("❌ Failed to search sessions:"), err)
			return err
		}
		if len(files) == 0 {
			fmt.Fprintln(out, warningStyle.Render(fmt.Sprintf("⚠️  No sessions modified on %s (KST)", window.Label)))
		} else {
			fmt.Fprintln(out, successStyle.Render(fmt.Sprintf("✅ %d session(s) modified on %s (KST)", len(files), window.Label)))
			if verbose {
				for i, f := range files {
					if i == 5 {
						fmt.Fprintf(out, "   ... and %d more\n", len(files)-5)
						break
					}
					fmt.Fprintf(out, "   [%d] %s (%s, %s)\n", i+1, f.Path, humanize.Bytes(uint64(f.Size)), humanize.Time(f.ModTime))
				}
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(healthcheckCmd)
}
