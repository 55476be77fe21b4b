package normalize

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

const unknownDateSentinel = "unknown"

// Identity computes the stable dedup token for a post from its
// whitespace-collapsed text, its parsed date (or a sentinel when the date is
// unknown) and its page position. Position alone shifts as scroll-loading
// re-renders the feed; text alone is ambiguous for media-only posts with no
// caption; the composite covers both failure modes.
func Identity(text string, date *time.Time, position int) string {
	dateSig := unknownDateSentinel
	if date != nil {
		dateSig = date.Format("2006-01-02")
	}
	h := sha256.New()
	h.Write([]byte(CollapseWhitespace(text)))
	h.Write([]byte{0})
	h.Write([]byte(dateSig))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(position)))
	return hex.EncodeToString(h.Sum(nil))
}

// CollapseWhitespace trims the string and collapses internal whitespace runs
// to single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// IdentitySet tracks the post identities already admitted for one profile's
// extraction run. It is owned by a single sequential run and needs no
// locking; concurrent profile scrapes must each use their own set.
type IdentitySet struct {
	seen map[string]struct{}
}

// NewIdentitySet creates an empty identity set.
func NewIdentitySet() *IdentitySet {
	return &IdentitySet{seen: make(map[string]struct{})}
}

// Seed preloads identities admitted in earlier sessions so re-scrapes of the
// same profile reject posts already collected.
func (s *IdentitySet) Seed(ids []string) {
	for _, id := range ids {
		s.seen[id] = struct{}{}
	}
}

// Admit records the identity and reports whether it was newly admitted.
// Admitting the same id again always returns false for the lifetime of the
// set.
func (s *IdentitySet) Admit(id string) bool {
	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	return true
}

// Len returns the number of identities the set has seen.
func (s *IdentitySet) Len() int {
	return len(s.seen)
}
