package pipeline

import (
	"regexp"
	"strings"
)

var (
	invalidFileChars   = regexp.MustCompile(`[^a-zA-Z0-9.-]`)
	underscoreRuns     = regexp.MustCompile(`_+`)
	invalidFolderChars = regexp.MustCompile(`[^a-zA-Z0-9\s-]`)
	whitespaceRuns     = regexp.MustCompile(`\s+`)
	hyphenRuns         = regexp.MustCompile(`-+`)
)

// SanitizeFilename normalizes a string into a storage-safe object name:
// every character outside [a-zA-Z0-9.-] becomes an underscore, underscore
// runs collapse to one, and the result is lower-cased. Idempotent. The
// result can still be a bare "_" for all-invalid input; callers must not
// assume it is meaningful.
func SanitizeFilename(name string) string {
	s := invalidFileChars.ReplaceAllString(name, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// SanitizeFolderName normalizes a category label into a storage-safe
// folder segment: characters outside [a-zA-Z0-9 -] are stripped,
// whitespace runs become a single hyphen, hyphen runs collapse, and the
// lower-cased result is trimmed of leading/trailing whitespace and
// hyphens. Idempotent.
func SanitizeFolderName(name string) string {
	s := invalidFolderChars.ReplaceAllString(name, "")
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(strings.ToLower(s), " -")
}
