package ingestion

import (
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when a posting URL is malformed.
var ErrInvalidURL = fmt.Errorf("invalid URL")

// NormalizeURL canonicalizes a posting URL so deduplication by URL is
// stable: scheme and host are lowercased, fragments are dropped, and a
// bare trailing slash on the path is removed. The URL must be absolute.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: %s (must have scheme and host)", ErrInvalidURL, raw)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	if u.Path == "/" {
		u.Path = ""
	}
	return u.String(), nil
}
