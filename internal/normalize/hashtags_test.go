package normalize

import (
	"reflect"
	"testing"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name string
		text string
		html string
		want []string
	}{
		{
			name: "plain tags",
			text: "Shipping season #golang #opensource",
			want: []string{"golang", "opensource"},
		},
		{
			name: "concatenated tags split",
			text: "Loving #AI#ML today",
			want: []string{"ai", "ml"},
		},
		{
			name: "case insensitive dedup keeps first position",
			text: "#AI and more #ai and #ML",
			want: []string{"ai", "ml"},
		},
		{
			name: "anchor link text",
			text: "",
			html: `<a href="https://www.linkedin.com/feed/hashtag/?keywords=hiring">#Hiring</a>`,
			want: []string{"hiring"},
		},
		{
			name: "hashtag path segment",
			text: "",
			html: `<a href="/feed/hashtag/devops/">follow</a>`,
			want: []string{"devops"},
		},
		{
			name: "percent encoded marker",
			text: "",
			html: `<a href="https://example.com/share?text=%23growth">share</a>`,
			want: []string{"growth"},
		},
		{
			name: "text and markup merged without duplicates",
			text: "Big news #Launch",
			html: `<a href="/feed/hashtag/launch">#Launch</a> <a href="/feed/hashtag/startup">#Startup</a>`,
			want: []string{"launch", "startup"},
		},
		{
			name: "no alphanumeric discarded",
			text: "edge case #___ #ok",
			want: []string{"ok"},
		},
		{
			name: "empty fragment skips markup sources",
			text: "#solo",
			html: "",
			want: []string{"solo"},
		},
		{
			name: "malformed markup does not fail",
			text: "#fine",
			html: `<a href="/feed/hashtag/broken`,
			want: []string{"fine", "broken"},
		},
		{
			name: "no tags",
			text: "nothing to see here",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractHashtags(tt.text, tt.html)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ExtractHashtags(%q, %q) = %v, want %v", tt.text, tt.html, got, tt.want)
			}
		})
	}
}
