package content

import (
	"net/url"
	"regexp"
	"strings"
)

var driveFilePath = regexp.MustCompile(`/file/d/([A-Za-z0-9_-]+)`)

// NormalizeImageURL rewrites Google Drive share links into directly embeddable image URLs.
// Any other value is returned trimmed but otherwise unchanged.
func NormalizeImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || !strings.HasSuffix(u.Hostname(), "google.com") {
		return raw
	}

	if m := driveFilePath.FindStringSubmatch(u.Path); m != nil {
		return driveImageURL(m[1])
	}
	if u.Path == "/open" || u.Path == "/uc" {
		if id := u.Query().Get("id"); id != "" {
			return driveImageURL(id)
		}
	}
	return raw
}

func driveImageURL(id string) string {
	return "https://lh3.googleusercontent.com/d/" + id
}
