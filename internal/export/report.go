package export

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"time"
)

// ReportData is the template data for a run report
type ReportData struct {
	Date     string
	Profiles []ProfileSummary
	Stats    RunStats
}

// ProfileSummary summarizes one profile's scrape in the report
type ProfileSummary struct {
	Username      string
	FullName      string
	Followers     int
	PostCount     int
	Duplicates    int
	Refreshed     int
	TotalLikes    int
	TotalComments int
	TopHashtags   []string
}

// RunStats contains run-wide totals
type RunStats struct {
	TotalProfiles int
	TotalPosts    int
	TotalDupes    int
}

// WriteReport renders an HTML summary of a scrape run
func WriteReport(path string, summaries []ProfileSummary) error {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	data := ReportData{
		Date:     time.Now().Format("Monday, January 2 2006 15:04"),
		Profiles: summaries,
		Stats:    RunStats{TotalProfiles: len(summaries)},
	}
	for _, s := range summaries {
		data.Stats.TotalPosts += s.PostCount
		data.Stats.TotalDupes += s.Duplicates
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, data); err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}
	return nil
}

const reportTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Scrape Report</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 700px; margin: 0 auto; padding: 20px; background: #f5f5f5; }
        .container { background: white; border-radius: 8px; padding: 20px; }
        h1 { color: #0a66c2; margin-bottom: 5px; }
        .date { color: #666; margin-bottom: 20px; }
        .profile { border-bottom: 1px solid #eee; padding: 15px 0; }
        .profile:last-child { border-bottom: none; }
        .name { font-weight: bold; color: #333; }
        .handle { color: #666; }
        .metrics { color: #666; font-size: 13px; margin-top: 5px; }
        .tags { margin: 5px 0; }
        .tag { background: #e9f3ff; color: #0a66c2; padding: 2px 8px; border-radius: 12px; font-size: 12px; margin-right: 5px; }
        .footer { margin-top: 20px; padding-top: 15px; border-top: 1px solid #eee; color: #999; font-size: 12px; text-align: center; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Scrape Report</h1>
        <div class="date">{{.Date}}</div>

        {{range .Profiles}}
        <div class="profile">
            <div class="name">{{.FullName}} <span class="handle">@{{.Username}}</span></div>
            <div class="metrics">{{.PostCount}} new posts · {{.Duplicates}} duplicates skipped · {{.Refreshed}} refreshed · {{.Followers}} followers</div>
            <div class="metrics">{{.TotalLikes}} likes · {{.TotalComments}} comments</div>
            <div class="tags">
                {{range .TopHashtags}}<span class="tag">#{{.}}</span>{{end}}
            </div>
        </div>
        {{end}}

        <div class="footer">
            {{.Stats.TotalProfiles}} profiles · {{.Stats.TotalPosts}} posts · {{.Stats.TotalDupes}} duplicates · Generated by linkharvest
        </div>
    </div>
</body>
</html>`
