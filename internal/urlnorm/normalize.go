// Package urlnorm canonicalizes user-supplied URLs before they are stored.
package urlnorm

import "strings"

const defaultScheme = "http://"

// Normalize prepends http:// unless the input already starts with
// http:// or https:// (case-sensitive). Empty input is returned as is;
// rejecting it is the caller's job.
func Normalize(input string) string {
	if input == "" {
		return input
	}
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return input
	}
	return defaultScheme + input
}
