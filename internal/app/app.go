// Package app wires the scraping pipeline together: authenticate, scrape
// each configured profile, normalize and dedupe the posts, persist them and
// write the CSV export.
package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"time"

	"github.com/jcortez/linkharvest/internal/auth"
	"github.com/jcortez/linkharvest/internal/config"
	"github.com/jcortez/linkharvest/internal/export"
	"github.com/jcortez/linkharvest/internal/normalize"
	"github.com/jcortez/linkharvest/internal/scraper"
	"github.com/jcortez/linkharvest/internal/store"
	"github.com/jcortez/linkharvest/internal/types"
)

// App orchestrates one scrape run end to end
type App struct {
	cfg     *config.Config
	auth    *auth.Manager
	scraper *scraper.Scraper
	store   *store.Store
}

// New creates the orchestrator
func New(cfg *config.Config, authMgr *auth.Manager, sc *scraper.Scraper, st *store.Store) *App {
	return &App{cfg: cfg, auth: authMgr, scraper: sc, store: st}
}

// RunScrape scrapes all configured profiles, normalizes and persists their
// posts, and writes a timestamped CSV (plus HTML report when enabled). A
// single failing profile is logged and skipped; the run continues.
func (a *App) RunScrape(ctx context.Context) error {
	if len(a.cfg.Scraping.Profiles) == 0 {
		return fmt.Errorf("no profiles configured; add some to the config file")
	}

	if !a.auth.IsAuthenticated() {
		return fmt.Errorf("not authenticated; run the login command first")
	}

	cookies, err := a.auth.GetCookies()
	if err != nil {
		return fmt.Errorf("failed to load cookies: %w", err)
	}

	// One reference instant anchors relative dates for the whole run, so
	// "3d" means the same day for the first and the last profile scraped.
	refTime := time.Now()

	var batches []export.ProfileExport
	var summaries []export.ProfileSummary

	for _, raw := range a.cfg.Scraping.Profiles {
		target := scraper.ParseTarget(raw)
		log.Printf("Scraping %s...", target.Username)

		profile, candidates, err := a.scraper.ScrapeProfile(ctx, cookies, target, a.cfg.Scraping.PostsPerProfile)
		if err != nil {
			log.Printf("Failed to scrape %s: %v", target.Username, err)
			continue
		}

		if override, ok := a.cfg.Followers[target.Username]; ok && override > 0 {
			profile.Followers = override
		}

		seen, err := a.store.SeenIdentities(target.Username)
		if err != nil {
			return fmt.Errorf("failed to load identities for %s: %w", target.Username, err)
		}

		batch, summary, newIDs, err := a.processPosts(profile, candidates, seen, refTime)
		if err != nil {
			return err
		}

		if err := a.store.SaveProfile(&profile); err != nil {
			return fmt.Errorf("failed to save profile %s: %w", target.Username, err)
		}
		if err := a.store.RecordIdentities(target.Username, newIDs); err != nil {
			return fmt.Errorf("failed to record identities for %s: %w", target.Username, err)
		}

		total, err := a.store.PostCount(target.Username)
		if err == nil {
			log.Printf("Scraped %d new posts from %s (%d duplicates skipped, %d refreshed, %d stored total)",
				summary.PostCount, target.Username, summary.Duplicates, summary.Refreshed, total)
		}

		batches = append(batches, batch)
		summaries = append(summaries, summary)
	}

	if len(batches) == 0 {
		return fmt.Errorf("all profiles failed to scrape")
	}

	return a.writeExports(batches, summaries, refTime)
}

// processPosts normalizes one profile's candidates. Every admitted post is
// saved, so posts known from earlier runs get their engagement counts
// refreshed through the store upsert; only posts never seen before are
// exported and recorded as new identities. The identity set passed to the
// assembler is run-local, so within-run re-captures count as duplicates
// while cross-session re-scrapes count as refreshes.
func (a *App) processPosts(profile types.Profile, candidates []types.CandidatePost, seen []string, refTime time.Time) (export.ProfileExport, export.ProfileSummary, []string, error) {
	prior := normalize.NewIdentitySet()
	prior.Seed(seen)
	runSet := normalize.NewIdentitySet()

	assembler := normalize.NewAssembler(profile, refTime)

	batch := export.ProfileExport{Profile: profile}
	summary := export.ProfileSummary{
		Username:  profile.Username,
		FullName:  profile.FullName,
		Followers: profile.Followers,
	}
	tagCounts := make(map[string]int)
	var newIDs []string

	for _, c := range candidates {
		post, ok := assembler.Assemble(c, runSet)
		if !ok {
			summary.Duplicates++
			continue
		}

		if err := a.store.SavePost(post); err != nil {
			return batch, summary, nil, fmt.Errorf("failed to save post for %s: %w", profile.Username, err)
		}

		if !prior.Admit(post.ID) {
			summary.Refreshed++
			continue
		}

		batch.Posts = append(batch.Posts, *post)
		newIDs = append(newIDs, post.ID)
		summary.TotalLikes += post.Likes
		summary.TotalComments += post.Comments
		for _, tag := range post.Hashtags {
			tagCounts[tag]++
		}
	}
	summary.PostCount = len(batch.Posts)
	summary.TopHashtags = topHashtags(tagCounts, 5)

	return batch, summary, newIDs, nil
}

func (a *App) writeExports(batches []export.ProfileExport, summaries []export.ProfileSummary, refTime time.Time) error {
	dir, err := a.cfg.ExportDir()
	if err != nil {
		return fmt.Errorf("failed to resolve export directory: %w", err)
	}

	stamp := refTime.Format("20060102_150405")
	csvPath := filepath.Join(dir, fmt.Sprintf("linkedin_posts_%s.csv", stamp))
	if err := export.WriteCSV(csvPath, batches); err != nil {
		return fmt.Errorf("failed to write csv: %w", err)
	}
	log.Printf("Wrote %s", csvPath)

	if a.cfg.Export.WriteReport {
		reportPath := filepath.Join(dir, fmt.Sprintf("report_%s.html", stamp))
		if err := export.WriteReport(reportPath, summaries); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.Printf("Wrote %s", reportPath)
	}

	return nil
}

// topHashtags returns the n most frequent hashtags, most frequent first.
// Ties break alphabetically so the output is stable.
func topHashtags(counts map[string]int, n int) []string {
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool {
		if counts[tags[i]] != counts[tags[j]] {
			return counts[tags[i]] > counts[tags[j]]
		}
		return tags[i] < tags[j]
	})
	if len(tags) > n {
		tags = tags[:n]
	}
	return tags
}
