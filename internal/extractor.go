package internal

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/tidwall/gjson"
)

// ExtractRecord returns the first user-authored message in a session file, or
// nil when the file has none. Lines that are not valid JSON objects are
// skipped. Reading stops at the first match.
func ExtractRecord(path string) (*SessionRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "open", Err: err}
	}
	defer f.Close()

	rec, err := ReadFirstUserMessage(f)
	if err != nil {
		return nil, &StorageError{Path: path, Op: "read", Err: err}
	}
	return rec, nil
}

// ReadFirstUserMessage scans newline-delimited JSON entries from r and returns
// the first one authored by the user. Lines have no length limit.
func ReadFirstUserMessage(r io.Reader) (*SessionRecord, error) {
	br := bufio.NewReader(r)
	var skipped int
	for {
		line, err := br.ReadBytes('\n')
		if entry := bytes.TrimSpace(line); len(entry) > 0 {
			if !isJSONObject(entry) {
				skipped++
			} else if rec := parseEntry(entry); rec != nil {
				return rec, nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				if skipped > 0 {
					LogDebug("Skipped %d malformed line(s)", skipped)
				}
				return nil, nil
			}
			return nil, err
		}
	}
}

// parseEntry returns a record when the JSON object in line is a user message
func parseEntry(line []byte) *SessionRecord {
	entry := gjson.ParseBytes(line)
	if stringField(entry, "type") != "user" || stringField(entry, "message.role") != "user" {
		return nil
	}

	rec := &SessionRecord{Timestamp: stringField(entry, "timestamp")}
	content := entry.Get("message.content")
	switch {
	case !content.Exists():
		rec.Message = DeriveMessage("")
	case content.Type == gjson.String:
		rec.Message = DeriveMessage(content.Str)
	default:
		rec.Message = CompositeMessagePlaceholder
	}
	return rec
}

func isJSONObject(line []byte) bool {
	return gjson.ValidBytes(line) && gjson.ParseBytes(line).IsObject()
}

// stringField reads a string at path, returning "" when it is absent or not a string
func stringField(entry gjson.Result, path string) string {
	v := entry.Get(path)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}
