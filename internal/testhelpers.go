package internal

import (
	"time"
)

// CreateTestReport creates a report with two projects
func CreateTestReport(date string) *Report {
	return &Report{
		Date: date,
		Projects: []ProjectGroup{
			{
				Name: "api",
				Entries: []ReportEntry{
					{Time: "09:15", Message: "Add pagination to the list endpoint", SessionID: "5f1c2a9e-0b7d-4c1e-9a3f-2d6e8b4c7a10"},
					{Time: "14:02", Message: "[slash command: /review]"},
				},
			},
			{
				Name: "web",
				Entries: []ReportEntry{
					{Time: "10:40", Message: "Fix the login form validation"},
				},
			},
		},
	}
}

// CreateTestReportWithEntries creates a single-project report
func CreateTestReportWithEntries(date, project string, entries []ReportEntry) *Report {
	return &Report{
		Date:     date,
		Projects: []ProjectGroup{{Name: project, Entries: entries}},
	}
}

// CreateTestLogFile creates a LogFile without touching the filesystem
func CreateTestLogFile(path string, modTime time.Time) LogFile {
	return NewLogFile(path, modTime, 0)
}
