// Package scraper drives a headless browser over LinkedIn profile pages and
// hands back raw candidate posts. It locates and reads DOM fragments but
// performs no normalization; that belongs to internal/normalize.
package scraper

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/codeGROOVE-dev/retry"

	"github.com/jcortez/linkharvest/internal/browser"
	"github.com/jcortez/linkharvest/internal/normalize"
	"github.com/jcortez/linkharvest/internal/types"
)

// Scraper handles extracting posts from LinkedIn
type Scraper struct {
	headless bool
}

// New creates a new scraper
func New(headless bool) *Scraper {
	return &Scraper{headless: headless}
}

var (
	followersPattern   = regexp.MustCompile(`(?i)([\d,.]+[KkMm]?)\s*followers?`)
	connectionsPattern = regexp.MustCompile(`(?i)([\d,.]+[KkMm]?)\s*(?:contacts|connections?)`)
	aboutPattern       = regexp.MustCompile(`(?m)^About\s*\n([^\n]+(?:\n[^\n]+){0,3})`)
)

// ScrapeProfile loads one profile (personal or company), scrolls its posts
// into view and returns the profile info plus raw candidate posts in
// page-appearance order.
func (s *Scraper) ScrapeProfile(ctx context.Context, cookies []*network.Cookie, target Target, maxPosts int) (types.Profile, []types.CandidatePost, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, browser.Options(s.headless)...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	browserCtx, timeoutCancel := context.WithTimeout(browserCtx, 5*time.Minute)
	defer timeoutCancel()

	if err := s.injectCookies(browserCtx, cookies); err != nil {
		return types.Profile{}, nil, fmt.Errorf("failed to inject cookies: %w", err)
	}

	if err := s.navigate(browserCtx, target.PostsURL()); err != nil {
		return types.Profile{}, nil, fmt.Errorf("failed to load profile: %w", err)
	}

	profile, err := s.extractProfile(browserCtx, target)
	if err != nil {
		return types.Profile{}, nil, fmt.Errorf("failed to extract profile info: %w", err)
	}

	scrolls := 8
	if target.IsCompany {
		scrolls = 12 // company post pages load slower
	}
	candidates, err := s.collectPosts(browserCtx, maxPosts, scrolls)
	if err != nil {
		return profile, nil, fmt.Errorf("failed to extract posts: %w", err)
	}

	// Personal profiles often surface few posts on the main page; the
	// activity page is the reliable source.
	if !target.IsCompany && len(candidates) < 5 {
		log.Printf("Found only %d posts on main page, trying activity page...", len(candidates))
		if err := s.navigate(browserCtx, target.ActivityURL()); err != nil {
			return profile, candidates, nil
		}
		more, err := s.collectPosts(browserCtx, maxPosts, 5)
		if err == nil && len(more) > len(candidates) {
			candidates = more
		}
	}

	return profile, candidates, nil
}

// navigate loads a URL, retrying transient failures.
func (s *Scraper) navigate(ctx context.Context, url string) error {
	return retry.Do(
		func() error {
			return chromedp.Run(ctx,
				chromedp.Navigate(url),
				chromedp.WaitVisible(WaitForPage, chromedp.ByQuery),
			)
		},
		retry.Context(ctx),
		retry.Attempts(3),
		retry.Delay(2*time.Second),
		retry.MaxDelay(30*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			log.Printf("Retrying navigation to %s (attempt %d): %v", url, n+1, err)
		}),
	)
}

// injectCookies sets cookies in the browser context
func (s *Scraper) injectCookies(ctx context.Context, cookies []*network.Cookie) error {
	return chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			for _, c := range cookies {
				err := network.SetCookie(c.Name, c.Value).
					WithDomain(c.Domain).
					WithPath(c.Path).
					WithSecure(c.Secure).
					WithHTTPOnly(c.HTTPOnly).
					Do(ctx)
				if err != nil {
					return err
				}
			}
			return nil
		}),
	)
}

// collectPosts scrolls the page and accumulates candidate posts until
// maxPosts are found or the scroll budget runs out.
func (s *Scraper) collectPosts(ctx context.Context, maxPosts, maxScrolls int) ([]types.CandidatePost, error) {
	var posts []types.CandidatePost
	seen := make(map[string]bool) // scroll-window re-extraction guard

	for attempt := 0; len(posts) < maxPosts && attempt < maxScrolls; attempt++ {
		visible, err := s.extractVisiblePosts(ctx)
		if err != nil {
			return nil, err
		}

		for _, rc := range visible {
			key := normalize.CollapseWhitespace(rc.Text)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true

			c, ok := rc.toCandidate(len(posts) + 1)
			if !ok {
				continue
			}
			posts = append(posts, c)
		}

		if err := s.scroll(ctx); err != nil {
			return nil, err
		}
		time.Sleep(time.Duration(1000+attempt*200) * time.Millisecond)
	}

	if len(posts) > maxPosts {
		posts = posts[:maxPosts]
	}
	return posts, nil
}

// rawCandidate represents the raw data extracted from the DOM via JavaScript
type rawCandidate struct {
	Text        string `json:"text"`
	HTML        string `json:"html"`
	RawDate     string `json:"rawDate"`
	Likes       string `json:"likes"`
	Comments    string `json:"comments"`
	Shares      string `json:"shares"`
	HasImage    bool   `json:"hasImage"`
	HasVideo    bool   `json:"hasVideo"`
	HasDocument bool   `json:"hasDocument"`
	ImageURL    string `json:"imageUrl"`
	VideoURL    string `json:"videoUrl"`
	DocumentURL string `json:"documentUrl"`
	PostURL     string `json:"postUrl"`
	SourceID    string `json:"sourceId"`
}

// toCandidate converts raw DOM data into a CandidatePost, filtering obvious
// page chrome (fragments under 3 words or 10 characters are never posts).
func (rc rawCandidate) toCandidate(position int) (types.CandidatePost, bool) {
	text := strings.TrimSpace(rc.Text)
	if len(text) < 10 || len(strings.Fields(text)) < 3 {
		return types.CandidatePost{}, false
	}

	rawDate := strings.TrimSpace(rc.RawDate)
	if len(rawDate) > 50 {
		rawDate = strings.SplitN(rawDate, "\n", 2)[0]
		if len(rawDate) > 50 {
			rawDate = rawDate[:50]
		}
	}

	return types.CandidatePost{
		Text:         text,
		HTMLFragment: rc.HTML,
		RawDate:      rawDate,
		RawLikes:     rc.Likes,
		RawComments:  rc.Comments,
		RawShares:    rc.Shares,
		Attachment: types.AttachmentSignal{
			HasImage:    rc.HasImage,
			HasVideo:    rc.HasVideo,
			HasDocument: rc.HasDocument,
			ImageURL:    rc.ImageURL,
			VideoURL:    rc.VideoURL,
			DocumentURL: rc.DocumentURL,
		},
		PostURL:  rc.PostURL,
		SourceID: rc.SourceID,
		Position: position,
	}, true
}

// extractVisiblePosts parses currently visible posts
func (s *Scraper) extractVisiblePosts(ctx context.Context) ([]rawCandidate, error) {
	var rawPosts []rawCandidate

	// JavaScript to extract post data from the DOM
	extractJS := `
		(function() {
			const nodes = document.querySelectorAll('div.feed-shared-update-v2, div[data-feed-item-type], article');
			const results = [];

			nodes.forEach(el => {
				try {
					// Post text block (keep its HTML for hashtag links)
					const textEl = el.querySelector('span.break-words, div.feed-shared-text, .feed-shared-update-v2__commentary, .feed-shared-text__text-view');
					const text = textEl?.innerText?.trim() || el.innerText?.trim() || '';
					const html = textEl?.innerHTML || '';

					// Timestamp fragment ("2d • Edited")
					const dateEl = el.querySelector('span.feed-shared-actor__sub-description, .update-components-actor__sub-description, time');
					const rawDate = dateEl?.innerText?.trim() || '';

					// Engagement: prefer aria-label phrases, fall back to text
					const metric = (sel) => {
						const m = el.querySelector(sel);
						if (!m) return '';
						return m.getAttribute('aria-label') || m.textContent?.trim() || '';
					};
					const likes = metric('.social-details-social-counts__reactions-count, [aria-label*="reaction"], [aria-label*="like"]');
					const comments = metric('[aria-label*="comment"]');
					const shares = metric('[aria-label*="repost"], [aria-label*="share"]');

					// Attachment signals
					const img = el.querySelector('.update-components-image img, img.update-components-image__image');
					const video = el.querySelector('video');
					const docLink = el.querySelector('.update-components-document, a[href*="/document/"], a[href*=".pdf"]');
					const imageUrl = img?.src || '';
					const videoUrl = video?.src || video?.poster || '';
					const documentUrl = docLink?.href || '';

					// Post URN -> canonical URL and numeric id
					let postUrl = '';
					let sourceId = '';
					const urnEl = el.closest('[data-urn]') || el.querySelector('[data-urn]');
					const urn = urnEl?.getAttribute('data-urn') || '';
					if (urn && (urn.includes('activity') || urn.includes('ugcPost') || urn.includes('share'))) {
						postUrl = 'https://www.linkedin.com/feed/update/' + urn + '/';
						const idMatch = urn.match(/(\d{19})/);
						if (idMatch) sourceId = idMatch[1];
					}

					results.push({
						text,
						html,
						rawDate,
						likes,
						comments,
						shares,
						hasImage: !!img,
						hasVideo: !!video,
						hasDocument: !!docLink,
						imageUrl,
						videoUrl,
						documentUrl,
						postUrl,
						sourceId
					});
				} catch (e) {
					console.error('Error extracting post:', e);
				}
			});

			return results;
		})()
	`

	err := chromedp.Run(ctx,
		chromedp.Evaluate(extractJS, &rawPosts),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to extract posts from DOM: %w", err)
	}

	return rawPosts, nil
}

// rawProfile is the profile-level data read from the page
type rawProfile struct {
	Name     string `json:"name"`
	Headline string `json:"headline"`
	Location string `json:"location"`
	BodyText string `json:"bodyText"`
}

// extractProfile reads the profile header fields plus the page text used for
// follower/connection counts.
func (s *Scraper) extractProfile(ctx context.Context, target Target) (types.Profile, error) {
	var rp rawProfile

	extractJS := `
		(function() {
			const name = document.querySelector('h1')?.innerText?.trim() || '';
			const headline = document.querySelector('div.text-body-medium')?.innerText?.trim() || '';
			const location = document.querySelector('span.text-body-small')?.innerText?.trim() || '';
			const bodyText = document.body?.innerText || '';
			return { name, headline, location, bodyText };
		})()
	`

	if err := chromedp.Run(ctx, chromedp.Evaluate(extractJS, &rp)); err != nil {
		return types.Profile{}, err
	}

	headline := rp.Headline
	if len(headline) > 100 {
		headline = headline[:100]
	}

	profile := types.Profile{
		Username:   target.Username,
		FullName:   rp.Name,
		Headline:   headline,
		Location:   rp.Location,
		ProfileURL: target.ProfileURL(),
		IsCompany:  target.IsCompany,
	}

	if m := followersPattern.FindStringSubmatch(rp.BodyText); m != nil {
		profile.Followers = normalize.ParseCount(m[1])
	}
	if m := connectionsPattern.FindStringSubmatch(rp.BodyText); m != nil {
		profile.Connections = normalize.ParseCount(m[1])
	}
	if m := aboutPattern.FindStringSubmatch(rp.BodyText); m != nil {
		summary := strings.TrimSpace(m[1])
		if len(summary) > 500 {
			summary = summary[:500]
		}
		profile.Summary = summary
	}

	return profile, nil
}

// scroll scrolls the page down
func (s *Scraper) scroll(ctx context.Context) error {
	return chromedp.Run(ctx,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
	)
}
