package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcortez/linkharvest/internal/types"
)

var testProfile = types.Profile{
	Username:  "acme-corp",
	FullName:  "Acme Corp",
	Followers: 10000,
}

func TestAssembleFullScenario(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	asm := NewAssembler(testProfile, ref)
	set := NewIdentitySet()

	post, ok := asm.Assemble(types.CandidatePost{
		Text:        "Check this #AI#ML project #ai",
		RawDate:     "3d",
		RawLikes:    "1.2K",
		RawComments: "45",
		RawShares:   "",
		Position:    1,
	}, set)

	require.True(t, ok)
	require.NotNil(t, post)

	assert.Equal(t, []string{"ai", "ml"}, post.Hashtags)
	assert.Equal(t, 2, post.HashtagCount)
	assert.Equal(t, 1200, post.Likes)
	assert.Equal(t, 45, post.Comments)
	assert.Equal(t, 0, post.Shares)
	assert.Equal(t, 1245, post.TotalEngagement)
	require.NotNil(t, post.EngagementRate)
	assert.Equal(t, 12.45, *post.EngagementRate)
	require.NotNil(t, post.CommentRatio)
	assert.Equal(t, 0.04, *post.CommentRatio)
	require.NotNil(t, post.Date)
	assert.Equal(t, time.Date(2025, time.June, 12, 0, 0, 0, 0, time.UTC), *post.Date)
	assert.Equal(t, types.ContentText, post.ContentType)
	assert.Equal(t, "acme-corp", post.Username)
	assert.Equal(t, 5, post.WordCount)
	assert.False(t, post.ExtractedAt.IsZero())
}

func TestAssembleDuplicateDiscarded(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	asm := NewAssembler(testProfile, ref)
	set := NewIdentitySet()

	first := types.CandidatePost{Text: "Same post body", RawDate: "2d", Position: 4}
	// Re-rendered capture of the same post with messier whitespace.
	second := types.CandidatePost{Text: "  Same   post body ", RawDate: "2d", Position: 4}

	_, ok := asm.Assemble(first, set)
	require.True(t, ok)

	post, ok := asm.Assemble(second, set)
	assert.False(t, ok)
	assert.Nil(t, post)
}

func TestAssembleUnknownDateAndMetrics(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	asm := NewAssembler(types.Profile{Username: "someone"}, ref)
	set := NewIdentitySet()

	post, ok := asm.Assemble(types.CandidatePost{
		Text:     "no date, no numbers",
		RawDate:  "mystery",
		Position: 1,
	}, set)

	require.True(t, ok)
	assert.Nil(t, post.Date)
	assert.Zero(t, post.Likes)
	assert.Zero(t, post.TotalEngagement)
	assert.Nil(t, post.EngagementRate, "unknown followers must not produce a rate")
	assert.Nil(t, post.CommentRatio)
	assert.Nil(t, post.ShareRatio)
}

func TestAssemblePreservesInputOrder(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	asm := NewAssembler(testProfile, ref)
	set := NewIdentitySet()

	// Positions arrive in page order, whatever their numeric values.
	inputs := []types.CandidatePost{
		{Text: "post three", RawDate: "1d", Position: 3},
		{Text: "post one", RawDate: "1d", Position: 1},
		{Text: "post two", RawDate: "1d", Position: 2},
	}

	var texts []string
	for _, c := range inputs {
		post, ok := asm.Assemble(c, set)
		require.True(t, ok)
		texts = append(texts, post.Text)
	}

	assert.Equal(t, []string{"post three", "post one", "post two"}, texts)
}

func TestAssembleMediaPost(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	asm := NewAssembler(testProfile, ref)
	set := NewIdentitySet()

	post, ok := asm.Assemble(types.CandidatePost{
		Text:    "Slides from today's talk",
		RawDate: "4h",
		Attachment: types.AttachmentSignal{
			HasDocument: true,
			HasImage:    true,
			DocumentURL: "https://cdn.example.com/deck.pdf",
			ImageURL:    "https://cdn.example.com/cover.jpg",
		},
		Position: 2,
	}, set)

	require.True(t, ok)
	assert.Equal(t, types.ContentDocument, post.ContentType)
	assert.True(t, post.HasDocument)
	assert.Equal(t, "https://cdn.example.com/deck.pdf", post.MediaURL)
}

func TestAssembleExtractedAtUsesClock(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)
	asm := NewAssembler(testProfile, ref)
	fixed := time.Date(2025, time.June, 18, 8, 30, 0, 0, time.UTC)
	asm.now = func() time.Time { return fixed }

	post, ok := asm.Assemble(types.CandidatePost{
		Text:     "Timestamps come from the injected clock",
		Position: 1,
	}, NewIdentitySet())

	require.True(t, ok)
	assert.Equal(t, fixed, post.ExtractedAt)
}
