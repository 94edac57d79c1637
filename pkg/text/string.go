package text

import (
	"path/filepath"
	"strings"
)

// IsBlank returns if a text is blank.
func IsBlank(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// TrimExtension removes the extension from a file name or file path.
func TrimExtension(path string) string {
	path = strings.TrimSuffix(path, string(filepath.Separator))
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// RemoveStartIfPresent removes a single occurrence of prefix at the start of text.
func RemoveStartIfPresent(text, prefix string) string {
	return strings.TrimPrefix(text, prefix)
}

// RemoveEndIfPresent removes a single occurrence of suffix at the end of text.
func RemoveEndIfPresent(text, suffix string) string {
	return strings.TrimSuffix(text, suffix)
}

// Concatenate joins a and b with exactly one separator between them,
// whether or not a already ends with it or b already starts with it.
func Concatenate(separator, a, b string) string {
	return RemoveEndIfPresent(a, separator) + separator + RemoveStartIfPresent(b, separator)
}
