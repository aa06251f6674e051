package testutil

import (
	"encoding/json"
)

// UserLine returns a session log line holding a user message. content may be
// a string or any JSON-encodable value; an empty timestamp is omitted.
func UserLine(content interface{}, timestamp string) string {
	entry := map[string]interface{}{
		"type": "user",
		"message": map[string]interface{}{
			"role":    "user",
			"content": content,
		},
	}
	if timestamp != "" {
		entry["timestamp"] = timestamp
	}
	return mustJSON(entry)
}

// AssistantLine returns a session log line holding an assistant reply
func AssistantLine(text, timestamp string) string {
	return mustJSON(map[string]interface{}{
		"type":      "assistant",
		"timestamp": timestamp,
		"message": map[string]interface{}{
			"role":    "assistant",
			"content": []map[string]string{{"type": "text", "text": text}},
		},
	})
}

// SummaryLine returns a leading summary line as written by Claude Code
func SummaryLine(summary string) string {
	return mustJSON(map[string]interface{}{
		"type":     "summary",
		"summary":  summary,
		"leafUuid": "00000000-0000-0000-0000-000000000000",
	})
}

// ToolResultLine returns a user-typed entry carrying a tool result. Its content
// is structured, not a plain string.
func ToolResultLine(timestamp string) string {
	return UserLine([]map[string]string{{"type": "tool_result", "content": "ok"}}, timestamp)
}

func mustJSON(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}
