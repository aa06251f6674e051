package internal

// Report is the grouped summary of one day's sessions
type Report struct {
	Date     string         `json:"date" yaml:"date"`
	Projects []ProjectGroup `json:"projects" yaml:"projects"`
}

// ProjectGroup holds the entries of a single project, in file modification order
type ProjectGroup struct {
	Name    string        `json:"name" yaml:"name"`
	Entries []ReportEntry `json:"entries" yaml:"entries"`
}

// ReportEntry is one session's first message, ready for display
type ReportEntry struct {
	Time      string `json:"time" yaml:"time"`
	Message   string `json:"message" yaml:"message"`
	SessionID string `json:"session_id,omitempty" yaml:"session_id,omitempty"`
	Path      string `json:"path,omitempty" yaml:"path,omitempty"`
}

// ProjectCount returns the number of distinct projects in the report
func (r *Report) ProjectCount() int {
	return len(r.Projects)
}

// SessionCount returns the number of entries across all projects
func (r *Report) SessionCount() int {
	n := 0
	for _, p := range r.Projects {
		n += len(p.Entries)
	}
	return n
}
