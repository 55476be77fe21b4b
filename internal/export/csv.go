// Package export writes scraped results to CSV spreadsheets and HTML run
// reports.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jcortez/linkharvest/internal/types"
)

// ProfileExport bundles one profile with its normalized posts for output
type ProfileExport struct {
	Profile types.Profile
	Posts   []types.NormalizedPost
}

// Columns is the CSV header, one row per post with its profile context
// repeated.
var Columns = []string{
	"Profile Username",
	"Profile Name",
	"Profile Headline",
	"Profile Location",
	"Profile URL",
	"Profile Followers",
	"Profile Connections",
	"Profile Summary",
	"Post Position",
	"Post URL",
	"Post ID",
	"Post Date",
	"Post Content (Full)",
	"Media URL",
	"Post Word Count",
	"Content Type",
	"Has Document",
	"Hashtags",
	"Hashtag Count",
	"Post Reactions (Likes)",
	"Post Comments",
	"Post Shares",
	"Total Engagement",
	"Engagement Rate (%)",
	"Comment/Reaction Ratio",
	"Share/Reaction Ratio",
	"Scraped At",
}

// WriteCSV writes all profiles and their posts to a single CSV file
func WriteCSV(path string, batches []ProfileExport) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(Columns); err != nil {
		return err
	}

	for _, batch := range batches {
		for _, p := range batch.Posts {
			if err := w.Write(postRow(batch.Profile, p)); err != nil {
				return err
			}
		}
	}

	w.Flush()
	return w.Error()
}

func postRow(profile types.Profile, p types.NormalizedPost) []string {
	return []string{
		profile.Username,
		profile.FullName,
		profile.Headline,
		profile.Location,
		profile.ProfileURL,
		strconv.Itoa(profile.Followers),
		strconv.Itoa(profile.Connections),
		profile.Summary,
		strconv.Itoa(p.Position),
		p.PostURL,
		p.ID,
		formatDate(p),
		p.Text,
		p.MediaURL,
		strconv.Itoa(p.WordCount),
		string(p.ContentType),
		yesNo(p.HasDocument),
		strings.Join(p.Hashtags, ", "),
		strconv.Itoa(p.HashtagCount),
		strconv.Itoa(p.Likes),
		strconv.Itoa(p.Comments),
		strconv.Itoa(p.Shares),
		strconv.Itoa(p.TotalEngagement),
		formatRate(p.EngagementRate),
		formatRate(p.CommentRatio),
		formatRate(p.ShareRatio),
		p.ExtractedAt.Format("2006-01-02 15:04:05"),
	}
}

// formatDate renders the post date, or empty when it could not be parsed
func formatDate(p types.NormalizedPost) string {
	if p.Date == nil {
		return ""
	}
	return p.Date.Format("2006-01-02")
}

// formatRate renders a ratio column, or empty when undefined (for example
// engagement rate with unknown follower count)
func formatRate(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
