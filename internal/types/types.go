package types

import "time"

// ContentType labels what kind of attachment a post carries.
type ContentType string

const (
	ContentText     ContentType = "Text"
	ContentImage    ContentType = "Image"
	ContentVideo    ContentType = "Video"
	ContentDocument ContentType = "Document"
)

// AttachmentSignal carries the raw media hints scraped from a post element.
// Several signals may be set at once; classification resolves the ambiguity.
type AttachmentSignal struct {
	HasImage    bool   `json:"has_image"`
	HasVideo    bool   `json:"has_video"`
	HasDocument bool   `json:"has_document"`
	ImageURL    string `json:"image_url,omitempty"`
	VideoURL    string `json:"video_url,omitempty"`
	DocumentURL string `json:"document_url,omitempty"`
}

// CandidatePost is one raw, unnormalized post as handed over by the scraper.
type CandidatePost struct {
	Text         string           `json:"text"`
	HTMLFragment string           `json:"html_fragment,omitempty"`
	RawDate      string           `json:"raw_date"`
	RawLikes     string           `json:"raw_likes"`
	RawComments  string           `json:"raw_comments"`
	RawShares    string           `json:"raw_shares"`
	Attachment   AttachmentSignal `json:"attachment"`
	PostURL      string           `json:"post_url,omitempty"`
	SourceID     string           `json:"source_id,omitempty"` // urn:li:activity numeric id when recoverable
	Position     int              `json:"position"`            // 1-based page-appearance order
}

// Profile holds the scraped profile-level fields shared by all of its posts.
type Profile struct {
	Username    string `json:"username"`
	FullName    string `json:"full_name"`
	Headline    string `json:"headline"`
	Location    string `json:"location"`
	ProfileURL  string `json:"profile_url"`
	Summary     string `json:"summary"`
	Followers   int    `json:"followers"`   // 0 = unknown
	Connections int    `json:"connections"` // 0 = unknown
	IsCompany   bool   `json:"is_company"`
}

// NormalizedPost is the fully parsed, deduplicated output record.
// It is constructed once by the assembler and never mutated afterwards.
type NormalizedPost struct {
	ID              string      `json:"id"` // content-derived identity token
	Username        string      `json:"username"`
	Position        int         `json:"position"`
	Date            *time.Time  `json:"date"` // nil = date unknown
	Text            string      `json:"text"`
	ContentType     ContentType `json:"content_type"`
	MediaURL        string      `json:"media_url,omitempty"`
	HasDocument     bool        `json:"has_document"`
	Hashtags        []string    `json:"hashtags"` // lowercase, first-seen order
	HashtagCount    int         `json:"hashtag_count"`
	WordCount       int         `json:"word_count"`
	CharCount       int         `json:"char_count"`
	Likes           int         `json:"likes"`
	Comments        int         `json:"comments"`
	Shares          int         `json:"shares"`
	TotalEngagement int         `json:"total_engagement"`
	EngagementRate  *float64    `json:"engagement_rate"` // percent, nil when followers unknown
	CommentRatio    *float64    `json:"comment_ratio"`   // nil when likes is zero
	ShareRatio      *float64    `json:"share_ratio"`     // nil when likes is zero
	PostURL         string      `json:"post_url,omitempty"`
	SourceID        string      `json:"source_id,omitempty"`
	ExtractedAt     time.Time   `json:"extracted_at"`
}
