package normalize

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jcortez/linkharvest/internal/types"
)

// Assembler merges the facet parsers into normalized records for one
// profile's extraction run. It is the only place NormalizedPosts are built.
type Assembler struct {
	profile types.Profile
	ref     time.Time
	now     func() time.Time
}

// NewAssembler creates an assembler for the given profile. ref anchors
// relative-date resolution for the whole run.
func NewAssembler(profile types.Profile, ref time.Time) *Assembler {
	return &Assembler{profile: profile, ref: ref, now: time.Now}
}

// Assemble normalizes one candidate and admits it against the identity set.
// It returns (nil, false) when the candidate is a duplicate. Candidates are
// processed to completion one at a time and output order follows input
// order; no reordering happens here.
func (a *Assembler) Assemble(c types.CandidatePost, set *IdentitySet) (*types.NormalizedPost, bool) {
	var date *time.Time
	if d, ok := NormalizeDate(c.RawDate, a.ref); ok {
		date = &d
	}

	hashtags := ExtractHashtags(c.Text, c.HTMLFragment)
	contentType, mediaURL, hasDocument := Classify(c.Attachment)

	likes := ParseCount(c.RawLikes)
	comments := ParseCount(c.RawComments)
	shares := ParseCount(c.RawShares)
	rates := DeriveRates(likes, comments, shares, a.profile.Followers)

	// Identity comes last, over normalized text, so two differently
	// formatted raw captures of the same post collapse to one record.
	id := Identity(c.Text, date, c.Position)
	if !set.Admit(id) {
		return nil, false
	}

	return &types.NormalizedPost{
		ID:              id,
		Username:        a.profile.Username,
		Position:        c.Position,
		Date:            date,
		Text:            c.Text,
		ContentType:     contentType,
		MediaURL:        mediaURL,
		HasDocument:     hasDocument,
		Hashtags:        hashtags,
		HashtagCount:    len(hashtags),
		WordCount:       len(strings.Fields(c.Text)),
		CharCount:       utf8.RuneCountInString(c.Text),
		Likes:           likes,
		Comments:        comments,
		Shares:          shares,
		TotalEngagement: rates.Total,
		EngagementRate:  rates.EngagementRate,
		CommentRatio:    rates.CommentRatio,
		ShareRatio:      rates.ShareRatio,
		PostURL:         c.PostURL,
		SourceID:        c.SourceID,
		ExtractedAt:     a.now(),
	}, true
}
