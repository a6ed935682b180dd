package items

import (
	"net/url"
	"strings"

	"github.com/muurk/itemctl/internal/urls"
)

// ResolveAPIBase returns the API base for a page origin. When the origin's host
// is exactly "localhost" the base is the fixed loopback address; otherwise the
// API lives at the root-relative path /api on the same origin, whatever path
// the origin carries.
func ResolveAPIBase(origin string) (string, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return "", NewValidationError("invalid origin " + origin + ": " + err.Error())
	}
	if u.Scheme == "" || u.Host == "" {
		return "", NewValidationError("origin must be an absolute URL (e.g. http://localhost:3000), got " + origin)
	}

	if u.Hostname() == "localhost" {
		return urls.LocalAPIBase, nil
	}

	return u.Scheme + "://" + u.Host + urls.APIPrefix, nil
}

// OriginOf returns scheme://host of an API base, used for routes outside /api
func OriginOf(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(base, urls.APIPrefix)
	}
	return u.Scheme + "://" + u.Host
}
