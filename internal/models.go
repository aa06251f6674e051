package internal

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SessionFileExt is the extension of session log files inside a project directory
const SessionFileExt = ".jsonl"

// LogFile is a read-only view of a session log file on disk
type LogFile struct {
	Path      string
	Dir       string // parent directory name (encoded project path)
	ModTime   time.Time
	Size      int64
	SessionID string // file stem when it is a UUID, empty otherwise
}

// SessionRecord is the first user-authored message of a session file
type SessionRecord struct {
	Timestamp string // raw value from the log, may be empty or malformed
	Message   string
}

// NewLogFile builds a LogFile from a path and its modification info
func NewLogFile(path string, modTime time.Time, size int64) LogFile {
	return LogFile{
		Path:      path,
		Dir:       filepath.Base(filepath.Dir(path)),
		ModTime:   modTime.UTC(),
		Size:      size,
		SessionID: sessionIDFromPath(path),
	}
}

// sessionIDFromPath returns the canonical UUID encoded in the file name, if any
func sessionIDFromPath(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), SessionFileExt)
	id, err := uuid.Parse(stem)
	if err != nil {
		return ""
	}
	return id.String()
}

// ShortID returns an abbreviated session ID for display
func (lf LogFile) ShortID() string {
	if len(lf.SessionID) < 8 {
		return lf.SessionID
	}
	return lf.SessionID[:8]
}
