package normalize

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagToken     = regexp.MustCompile(`#(\w+)`)
	anchorTag    = regexp.MustCompile(`(?i)/hashtag/([A-Za-z0-9_-]+)`)
	encodedTag   = regexp.MustCompile(`(?i)%23([A-Za-z0-9_-]+)`)
	hasAlnum     = regexp.MustCompile(`[a-z0-9]`)
	markupTag    = regexp.MustCompile(`<[^>]*>`)
	multiSpace   = regexp.MustCompile(`\s+`)
)

// ExtractHashtags collects hashtags from the post's visible text and, when
// present, its markup fragment (anchor link text, /hashtag/ path segments and
// %23-encoded markers in hrefs). Tags are lowercased and deduplicated
// case-insensitively; output order follows first appearance. Tags without a
// single alphanumeric character are dropped. An empty fragment skips the
// markup sources; malformed markup never fails.
func ExtractHashtags(text, htmlFragment string) []string {
	var tags []string
	seen := make(map[string]struct{})

	add := func(name string) {
		name = strings.ToLower(name)
		if !hasAlnum.MatchString(name) {
			return
		}
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		tags = append(tags, name)
	}

	scan := func(s string) {
		// Separate concatenated tags like "#AI#ML" before matching.
		s = strings.ReplaceAll(s, "#", " #")
		for _, m := range tagToken.FindAllStringSubmatch(s, -1) {
			add(m[1])
		}
	}

	scan(text)

	if htmlFragment != "" {
		scan(stripTags(htmlFragment))
		for _, m := range anchorTag.FindAllStringSubmatch(htmlFragment, -1) {
			add(m[1])
		}
		for _, m := range encodedTag.FindAllStringSubmatch(htmlFragment, -1) {
			add(m[1])
		}
	}

	return tags
}

// stripTags reduces an HTML fragment to its visible text.
func stripTags(fragment string) string {
	s := markupTag.ReplaceAllString(fragment, " ")
	s = html.UnescapeString(s)
	return strings.TrimSpace(multiSpace.ReplaceAllString(s, " "))
}
