// Package input validates user-supplied input before any network call is
// attempted.
package input

import "regexp"

// Accepted URL shapes for the supported video host: bare host domains, the
// short-link domain, watch-query, embed, and the legacy /v/ path, each with
// or without scheme and www. prefix. Matching is substring search: a match
// anywhere in the input counts, which tolerates surrounding text pasted
// along with the link.
var videoURLPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(https?://)?(www\.)?(youtube|youtu|youtube-nocookie)\.(com|be)/`),
	regexp.MustCompile(`(https?://)?(www\.)?youtu\.be/`),
	regexp.MustCompile(`(https?://)?(www\.)?youtube\.com/watch\?v=`),
	regexp.MustCompile(`(https?://)?(www\.)?youtube\.com/embed/`),
	regexp.MustCompile(`(https?://)?(www\.)?youtube\.com/v/`),
}

// IsVideoURL reports whether raw contains a recognized video URL shape.
// It is a pure check; no network access happens here.
func IsVideoURL(raw string) bool {
	for _, pattern := range videoURLPatterns {
		if pattern.MatchString(raw) {
			return true
		}
	}
	return false
}
