package scraper

// LinkedIn DOM selectors
// These are isolated here because LinkedIn changes their DOM frequently
// Update these when scraping breaks

const (
	// Post containers, broadest-match first
	PostContainer = `div.feed-shared-update-v2, div[data-feed-item-type], article`

	// Post content selectors
	PostText = `span.break-words, div.feed-shared-text, .feed-shared-update-v2__commentary, .feed-shared-text__text-view`
	PostDate = `span.feed-shared-actor__sub-description, .update-components-actor__sub-description, time`

	// Engagement selectors
	ReactionCount = `.social-details-social-counts__reactions-count, [aria-label*="reaction"], [aria-label*="like"]`
	CommentCount  = `[aria-label*="comment"]`
	ShareCount    = `[aria-label*="repost"], [aria-label*="share"]`

	// Attachment indicators
	PostImage    = `.update-components-image img, img.update-components-image__image`
	PostVideo    = `video`
	PostDocument = `.update-components-document, a[href*="/document/"], a[href*=".pdf"]`

	// Profile page selectors
	ProfileName     = `h1`
	ProfileHeadline = `div.text-body-medium`
	ProfileLocation = `span.text-body-small`

	// Login page
	LoginUsername = `#username`
	LoginPassword = `#password`
	LoginSubmit   = `button[type="submit"]`
)

// Common wait conditions
const (
	WaitForPage  = `main`
	WaitForPosts = PostContainer
)
