package internal

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	// MaxMessageLength bounds the stored first message, in characters
	MaxMessageLength = 200

	LocalCommandPlaceholder     = "[local command executed]"
	CompositeMessagePlaceholder = "[composite message]"
	slashCommandFormat          = "[slash command: %s]"

	localCommandPrefix   = "<local-command"
	commandMessagePrefix = "<command-message>"
)

var commandNameRe = regexp.MustCompile(`<command-name>(/[^<]+)</command-name>`)

// DeriveMessage maps raw user content to the text shown in the report.
// Local command output and slash command invocations are replaced with
// placeholders; everything else is cut to MaxMessageLength characters with
// newlines turned into spaces.
func DeriveMessage(content string) string {
	switch {
	case strings.HasPrefix(content, localCommandPrefix):
		content = LocalCommandPlaceholder
	case strings.HasPrefix(content, commandMessagePrefix):
		if m := commandNameRe.FindStringSubmatch(content); m != nil {
			content = fmt.Sprintf(slashCommandFormat, m[1])
		}
	}

	return strings.TrimSpace(strings.ReplaceAll(truncateRunes(content, MaxMessageLength), "\n", " "))
}

// truncateRunes cuts s to at most n characters
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
