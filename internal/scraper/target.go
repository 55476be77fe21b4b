package scraper

import "strings"

// Target identifies one profile to scrape.
type Target struct {
	Username  string
	IsCompany bool
}

// ParseTarget extracts the username or company slug from a LinkedIn URL or
// returns the input as-is when it is already a bare name.
// Handles https://www.linkedin.com/in/<user>/ and
// https://www.linkedin.com/company/<name>/ forms, with or without trailing
// path segments and query strings.
func ParseTarget(raw string) Target {
	s := strings.TrimSpace(raw)

	if !strings.Contains(s, "/") {
		return Target{Username: s}
	}

	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")
	s = strings.TrimPrefix(s, "www.")

	if rest, ok := cutAfter(s, "/company/"); ok {
		return Target{Username: firstSegment(rest), IsCompany: true}
	}
	if rest, ok := cutAfter(s, "/in/"); ok {
		return Target{Username: firstSegment(rest)}
	}
	return Target{Username: firstSegment(s)}
}

// ProfileURL returns the canonical page for the target.
func (t Target) ProfileURL() string {
	if t.IsCompany {
		return "https://www.linkedin.com/company/" + t.Username + "/"
	}
	return "https://www.linkedin.com/in/" + t.Username + "/"
}

// PostsURL returns the page holding the target's posts. Company pages have a
// dedicated posts section; personal profiles show posts on the main page.
func (t Target) PostsURL() string {
	if t.IsCompany {
		return "https://www.linkedin.com/company/" + t.Username + "/posts/"
	}
	return t.ProfileURL()
}

// ActivityURL returns the personal-profile activity page, used as a fallback
// when the main page surfaces few posts.
func (t Target) ActivityURL() string {
	return "https://www.linkedin.com/in/" + t.Username + "/recent-activity/all/"
}

func cutAfter(s, marker string) (string, bool) {
	_, after, ok := strings.Cut(s, marker)
	return after, ok
}

func firstSegment(s string) string {
	s, _, _ = strings.Cut(s, "/")
	s, _, _ = strings.Cut(s, "?")
	return s
}
