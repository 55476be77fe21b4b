package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// countPattern grabs the first numeric token with an optional compact suffix
// attached directly to it, so "1.2K reactions" parses but a stray capital in
// the following word does not become a multiplier.
var countPattern = regexp.MustCompile(`(\d+(?:\.\d+)?)([KkMm])?`)

// ParseCount converts a human-readable engagement value ("1,234", "1.2K",
// "45 comments") into an integer. Absent or unparseable input yields 0:
// a missing metric means zero engagement, unlike an unknown date.
func ParseCount(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, ",", "")

	m := countPattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	switch strings.ToUpper(m[2]) {
	case "K":
		value *= 1_000
	case "M":
		value *= 1_000_000
	}
	return int(math.Round(value))
}

// Rates holds the derived engagement metrics for one post. Nil pointers mean
// the metric is undefined for this post, not zero.
type Rates struct {
	Total          int
	EngagementRate *float64 // percent of followers
	CommentRatio   *float64 // comments per like
	ShareRatio     *float64 // shares per like
}

// DeriveRates computes total engagement and the rate/ratio metrics.
// The engagement rate is nil when the follower count is zero or unknown and
// the reaction ratios are nil when likes is zero; division by zero cannot
// occur. All values are rounded to two decimal places.
func DeriveRates(likes, comments, shares, followers int) Rates {
	r := Rates{Total: likes + comments + shares}
	if followers > 0 {
		v := round2(100 * float64(r.Total) / float64(followers))
		r.EngagementRate = &v
	}
	if likes > 0 {
		c := round2(float64(comments) / float64(likes))
		s := round2(float64(shares) / float64(likes))
		r.CommentRatio = &c
		r.ShareRatio = &s
	}
	return r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
