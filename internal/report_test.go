package internal

import (
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestFormatLocalTime(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", TimeUnknown},
		{"zulu", "2025-01-15T00:30:00Z", "09:30"},
		{"zulu with millis", "2025-01-15T14:05:12.345Z", "23:05"},
		{"crosses midnight", "2025-01-15T15:00:00.000Z", "00:00"},
		{"explicit offset", "2025-01-15T00:30:00+00:00", "09:30"},
		{"non-UTC offset is converted", "2025-01-15T09:30:00+09:00", "09:30"},
		{"naive is treated as UTC", "2025-01-15T00:30:00", "09:30"},
		{"naive with micros", "2025-01-15T00:30:00.123456", "09:30"},
		{"date only", "2025-01-15", "09:00"},
		{"garbage is cut to 16 characters", "yesterday around lunch", "yesterday around"},
		{"short garbage kept", "soon", "soon"},
		{"bad month", "2025-13-15T00:30:00Z", "2025-13-15T00:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatLocalTime(tt.raw); got != tt.want {
				t.Errorf("FormatLocalTime(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDisplayMessage(t *testing.T) {
	tests := []struct {
		name    string
		msg     string
		wantLen int
		want    string
	}{
		{"short", "Fix bug", 7, "Fix bug"},
		{"exactly 80", strings.Repeat("a", 80), 80, strings.Repeat("a", 80)},
		{"81 characters", strings.Repeat("a", 81), 80, strings.Repeat("a", 77) + "..."},
		{"85 characters", strings.Repeat("b", 85), 80, strings.Repeat("b", 77) + "..."},
		{"multibyte", strings.Repeat("한", 100), 80, strings.Repeat("한", 77) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayMessage(tt.msg)
			if got != tt.want {
				t.Errorf("DisplayMessage() = %q, want %q", got, tt.want)
			}
			if n := utf8.RuneCountInString(got); n != tt.wantLen {
				t.Errorf("DisplayMessage() length = %d, want %d", n, tt.wantLen)
			}
		})
	}
}

func TestBuildReport(t *testing.T) {
	base := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	files := []LogFile{
		CreateTestLogFile("/p/-Users-apple-Desktop-web/a.jsonl", base.Add(1*time.Hour)),
		CreateTestLogFile("/p/-Users-apple-Desktop-api/b.jsonl", base.Add(2*time.Hour)),
		CreateTestLogFile("/p/-Users-apple-Desktop-web/c.jsonl", base.Add(3*time.Hour)),
		CreateTestLogFile("/p/-Users-apple-Desktop-api/empty.jsonl", base.Add(4*time.Hour)),
		CreateTestLogFile("/p/-Users-apple-Desktop-zzz/broken.jsonl", base.Add(5*time.Hour)),
		CreateTestLogFile("/p/-Users-apple-Desktop-api/d.jsonl", base.Add(6*time.Hour)),
	}
	records := map[string]*SessionRecord{
		"/p/-Users-apple-Desktop-web/a.jsonl": {Timestamp: "2025-01-15T01:00:00Z", Message: "web first"},
		"/p/-Users-apple-Desktop-api/b.jsonl": {Timestamp: "2025-01-15T02:00:00Z", Message: "api first"},
		"/p/-Users-apple-Desktop-web/c.jsonl": {Timestamp: "", Message: "web second"},
		"/p/-Users-apple-Desktop-api/d.jsonl": {Timestamp: "nonsense", Message: "api second"},
	}
	extract := func(path string) (*SessionRecord, error) {
		if strings.HasSuffix(path, "broken.jsonl") {
			return nil, errors.New("permission denied")
		}
		return records[path], nil
	}

	report := BuildReport("2025-01-15", files, extract, NewProjectNamer(""))

	if report.Date != "2025-01-15" {
		t.Errorf("Date = %q, want 2025-01-15", report.Date)
	}
	if report.ProjectCount() != 2 {
		t.Fatalf("ProjectCount() = %d, want 2", report.ProjectCount())
	}
	if report.SessionCount() != 4 {
		t.Errorf("SessionCount() = %d, want 4", report.SessionCount())
	}

	api, web := report.Projects[0], report.Projects[1]
	if api.Name != "api" || web.Name != "web" {
		t.Fatalf("projects = [%s %s], want [api web]", api.Name, web.Name)
	}

	wantAPI := []ReportEntry{
		{Time: "11:00", Message: "api first", Path: "/p/-Users-apple-Desktop-api/b.jsonl"},
		{Time: "nonsense", Message: "api second", Path: "/p/-Users-apple-Desktop-api/d.jsonl"},
	}
	wantWeb := []ReportEntry{
		{Time: "10:00", Message: "web first", Path: "/p/-Users-apple-Desktop-web/a.jsonl"},
		{Time: TimeUnknown, Message: "web second", Path: "/p/-Users-apple-Desktop-web/c.jsonl"},
	}
	assertEntries(t, "api", api.Entries, wantAPI)
	assertEntries(t, "web", web.Entries, wantWeb)
}

func TestBuildReport_NoRecords(t *testing.T) {
	files := []LogFile{CreateTestLogFile("/p/x/a.jsonl", time.Now())}
	extract := func(string) (*SessionRecord, error) { return nil, nil }

	report := BuildReport("2025-01-15", files, extract, NewProjectNamer(""))
	if report.ProjectCount() != 0 || report.SessionCount() != 0 {
		t.Errorf("report = %+v, want no projects", report)
	}
	if got := report.Summary(); got != "0 projects, 0 sessions" {
		t.Errorf("Summary() = %q, want %q", got, "0 projects, 0 sessions")
	}
}

func TestReportSummary(t *testing.T) {
	tests := []struct {
		name   string
		report *Report
		want   string
	}{
		{
			name: "singular",
			report: CreateTestReportWithEntries("2025-01-15", "demo", []ReportEntry{
				{Time: "09:00", Message: "Fix bug"},
			}),
			want: "1 project, 1 session",
		},
		{
			name:   "plural",
			report: CreateTestReport("2025-01-15"),
			want:   "2 projects, 3 sessions",
		},
		{
			name:   "empty",
			report: &Report{Date: "2025-01-15"},
			want:   "0 projects, 0 sessions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.report.Summary(); got != tt.want {
				t.Errorf("Summary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func assertEntries(t *testing.T, project string, got, want []ReportEntry) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: %d entries, want %d", project, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %+v, want %+v", project, i, got[i], want[i])
		}
	}
}
