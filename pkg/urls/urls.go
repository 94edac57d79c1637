// Package urls composes request URLs from a base URL, path segments and a query parameter.
package urls

import (
	"net/url"

	"github.com/julien-sobczak/nt-publish/pkg/text"
)

// Separator between path segments.
const Separator = "/"

// Resolve joins base and segment with exactly one separator at the junction.
func Resolve(base, segment string) string {
	return text.Concatenate(Separator, base, segment)
}

// MakeLocal removes a single leading separator if present.
func MakeLocal(path string) string {
	return text.RemoveStartIfPresent(path, Separator)
}

// ResolveAsLocal resolves segment against base and makes the result local.
func ResolveAsLocal(base, segment string) string {
	return MakeLocal(Resolve(base, segment))
}

// AddQueryParam returns a copy of u whose query string is exactly key=value.
// Any existing query is discarded.
func AddQueryParam(u *url.URL, key, value string) *url.URL {
	result := *u
	result.RawQuery = url.Values{key: []string{value}}.Encode()
	return &result
}
