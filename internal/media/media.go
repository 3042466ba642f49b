// Package media turns stored relative media paths into public URLs.
package media

import (
	"net/url"
	"strings"
)

const DefaultBaseURL = "/media/"

// Resolver prefixes relative paths with the configured media base URL.
type Resolver struct {
	base string
}

func NewResolver(base string) Resolver {
	if strings.TrimSpace(base) == "" {
		base = DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return Resolver{base: base}
}

// URL returns the public URL for a stored path. Empty paths stay empty and
// already absolute URLs pass through untouched.
func (r Resolver) URL(path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	base := r.base
	if base == "" {
		base = DefaultBaseURL
	}
	return base + strings.TrimLeft(path, "/")
}

// URLPtr is URL for optional paths such as avatars.
func (r Resolver) URLPtr(path *string) string {
	if path == nil {
		return ""
	}
	return r.URL(*path)
}
