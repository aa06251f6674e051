package internal

import (
	"sort"
	"strconv"
	"time"
)

const (
	// MaxDisplayLength is the widest message shown in the text report
	MaxDisplayLength = 80

	TimeUnknown = "time unknown"
	ellipsis    = "..."
)

// isoLayouts are tried in order when reading log timestamps
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// FormatLocalTime converts a raw UTC timestamp into local HH:MM. Values that
// cannot be parsed are shown as their first 16 characters.
func FormatLocalTime(raw string) string {
	if raw == "" {
		return TimeUnknown
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Add(LocalOffset).Format("15:04")
		}
	}
	return truncateRunes(raw, 16)
}

// DisplayMessage shortens a message to MaxDisplayLength characters
func DisplayMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) <= MaxDisplayLength {
		return msg
	}
	return string(runes[:MaxDisplayLength-len(ellipsis)]) + ellipsis
}

// RecordExtractor reads the first user message of a session file
type RecordExtractor func(path string) (*SessionRecord, error)

// BuildReport extracts one record per file and groups them by project. files
// must already be in modification order; that order is kept within each
// project while projects are sorted by name.
func BuildReport(date string, files []LogFile, extract RecordExtractor, namer *ProjectNamer) *Report {
	byProject := make(map[string][]ReportEntry)

	for _, f := range files {
		project := namer.Name(f.Dir)
		rec, err := extract(f.Path)
		if err != nil {
			LogDebug("Skipping %s: %v", f.Path, err)
			continue
		}
		if rec == nil {
			LogDebug("No user message in %s", f.Path)
			continue
		}
		byProject[project] = append(byProject[project], ReportEntry{
			Time:      FormatLocalTime(rec.Timestamp),
			Message:   rec.Message,
			SessionID: f.SessionID,
			Path:      f.Path,
		})
	}

	names := make([]string, 0, len(byProject))
	for name := range byProject {
		names = append(names, name)
	}
	sort.Strings(names)

	report := &Report{Date: date, Projects: make([]ProjectGroup, 0, len(names))}
	for _, name := range names {
		report.Projects = append(report.Projects, ProjectGroup{Name: name, Entries: byProject[name]})
	}
	return report
}

// Summary returns the closing line of the report, e.g. "2 projects, 5 sessions"
func (r *Report) Summary() string {
	return pluralize(r.ProjectCount(), "project") + ", " + pluralize(r.SessionCount(), "session")
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
