package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Publish targets. The published URL shape depends on where the static site
// is pushed; both are simulated here, the deploy itself happens out of band.
const (
	PublishMethodNetlify  = "netlify"
	PublishMethodGitHub   = "github"
	PublishMethodDownload = "download"
)

// PublishURL builds the public URL a published portfolio will live at.
// Netlify deploys get a random suffix so repeated publishes of the same name
// never collide; GitHub Pages URLs are stable per user.
func PublishURL(method, fullName string) string {
	slug := Slugify(fullName)
	if slug == "" {
		slug = "portfolio"
	}
	switch method {
	case PublishMethodGitHub:
		return fmt.Sprintf("https://%s.github.io/portfolio", slug)
	default:
		suffix := strings.Split(uuid.NewString(), "-")[0]
		return fmt.Sprintf("https://%s-%s.netlify.app", slug, suffix)
	}
}

// Slugify lowercases a display name into a hostname-safe token. Runs of
// non-alphanumerics collapse into single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
