package internal

import (
	"strings"
)

// DefaultHomePrefix is the encoded home directory stripped from project names
const DefaultHomePrefix = "-Users-apple-"

// ProjectNamer turns encoded project directory names into readable labels
type ProjectNamer struct {
	Prefixes []string // tried in order; the first match is stripped
}

// NewProjectNamer returns a namer stripping "<homePrefix>Desktop-" and then
// "<homePrefix>". An empty homePrefix selects DefaultHomePrefix.
func NewProjectNamer(homePrefix string) *ProjectNamer {
	if homePrefix == "" {
		homePrefix = DefaultHomePrefix
	}
	return &ProjectNamer{
		Prefixes: []string{homePrefix + "Desktop-", homePrefix},
	}
}

// Name returns the project label for an encoded directory name. Unknown
// names are returned unchanged.
func (n *ProjectNamer) Name(dir string) string {
	for _, prefix := range n.Prefixes {
		if strings.HasPrefix(dir, prefix) {
			return strings.TrimPrefix(dir, prefix)
		}
	}
	return dir
}

// EncodeHomePrefix converts a home directory path into the form used for
// project directory names, e.g. "/Users/apple" becomes "-Users-apple-".
func EncodeHomePrefix(home string) string {
	if home == "" {
		return ""
	}
	encoded := strings.NewReplacer("/", "-", "\\", "-", ".", "-", ":", "-").Replace(strings.TrimRight(home, "/\\"))
	return encoded + "-"
}
