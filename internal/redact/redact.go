// Package redact strips filesystem locations from strings before they are
// logged or returned in error responses. Export failures carry the full path
// of the backup file, which exposes the host's directory layout and the
// user's home directory name.
package redact

import "regexp"

// Placeholders substituted for redacted fragments
const (
	RedactedPathPlaceholder = "[REDACTED_PATH]"
)

var (
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	patterns = []*regexp.Regexp{winPathRegex, unixPathRegex}
)

// String redacts filesystem paths from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		result = pattern.ReplaceAllString(result, RedactedPathPlaceholder)
	}
	return result
}

// Error redacts filesystem paths from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
