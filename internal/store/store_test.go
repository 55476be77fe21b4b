package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcortez/linkharvest/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePost(id string) *types.NormalizedPost {
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	rate := 12.45
	return &types.NormalizedPost{
		ID:              id,
		Username:        "acme",
		Position:        1,
		Date:            &date,
		Text:            "We shipped a new release today",
		ContentType:     types.ContentText,
		Hashtags:        []string{"release", "golang"},
		HashtagCount:    2,
		WordCount:       6,
		CharCount:       30,
		Likes:           1200,
		Comments:        45,
		TotalEngagement: 1245,
		EngagementRate:  &rate,
		ExtractedAt:     time.Now(),
	}
}

func TestSavePostUpsert(t *testing.T) {
	s := newTestStore(t)

	p := samplePost("abc123")
	require.NoError(t, s.SavePost(p))

	n, err := s.PostCount("acme")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// Same identity with fresher engagement must not create a second row
	p.Likes = 1500
	p.TotalEngagement = 1545
	require.NoError(t, s.SavePost(p))

	n, err = s.PostCount("acme")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestSavePostNullables(t *testing.T) {
	s := newTestStore(t)

	p := samplePost("nodate")
	p.Date = nil
	p.EngagementRate = nil
	require.NoError(t, s.SavePost(p))
}

func TestSaveProfile(t *testing.T) {
	s := newTestStore(t)

	p := &types.Profile{
		Username:  "acme",
		FullName:  "Acme Corp",
		Followers: 10000,
		IsCompany: true,
	}
	require.NoError(t, s.SaveProfile(p))

	p.Followers = 10500
	require.NoError(t, s.SaveProfile(p))
}

func TestIdentityRoundTrip(t *testing.T) {
	s := newTestStore(t)

	ids, err := s.SeenIdentities("acme")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, s.RecordIdentities("acme", []string{"id1", "id2"}))
	// Re-recording an identity is a no-op
	require.NoError(t, s.RecordIdentities("acme", []string{"id2", "id3"}))

	ids, err = s.SeenIdentities("acme")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"id1", "id2", "id3"}, ids)

	// Identities are scoped per profile
	ids, err = s.SeenIdentities("other")
	require.NoError(t, err)
	assert.Empty(t, ids)
}
