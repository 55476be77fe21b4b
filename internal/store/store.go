// Package store persists profiles, normalized posts and dedup identities in
// SQLite.
package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jcortez/linkharvest/internal/types"
)

// Store handles all database operations
type Store struct {
	db *sql.DB
}

// New creates a new Store with SQLite backend
func New(dbPath string) (*Store, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS profiles (
		username TEXT PRIMARY KEY,
		full_name TEXT,
		headline TEXT,
		location TEXT,
		profile_url TEXT,
		summary TEXT,
		followers INTEGER,
		connections INTEGER,
		is_company BOOLEAN,
		updated_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS posts (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		position INTEGER,
		post_date DATETIME,
		content TEXT NOT NULL,
		content_type TEXT,
		media_url TEXT,
		has_document BOOLEAN,
		hashtags TEXT,
		hashtag_count INTEGER,
		word_count INTEGER,
		char_count INTEGER,
		likes INTEGER,
		comments INTEGER,
		shares INTEGER,
		total_engagement INTEGER,
		engagement_rate REAL,
		comment_ratio REAL,
		share_ratio REAL,
		post_url TEXT,
		source_id TEXT,
		extracted_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS identities (
		username TEXT NOT NULL,
		identity TEXT NOT NULL,
		admitted_at DATETIME NOT NULL,
		PRIMARY KEY (username, identity)
	);

	CREATE INDEX IF NOT EXISTS idx_posts_username ON posts(username);
	CREATE INDEX IF NOT EXISTS idx_posts_date ON posts(post_date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// SaveProfile inserts or updates a profile
func (s *Store) SaveProfile(p *types.Profile) error {
	_, err := s.db.Exec(`
		INSERT INTO profiles (username, full_name, headline, location, profile_url,
			summary, followers, connections, is_company, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(username) DO UPDATE SET
			full_name = excluded.full_name,
			headline = excluded.headline,
			location = excluded.location,
			profile_url = excluded.profile_url,
			summary = excluded.summary,
			followers = excluded.followers,
			connections = excluded.connections,
			is_company = excluded.is_company,
			updated_at = excluded.updated_at
	`, p.Username, p.FullName, p.Headline, p.Location, p.ProfileURL,
		p.Summary, p.Followers, p.Connections, p.IsCompany, time.Now())

	return err
}

// SavePost inserts or updates a post. Re-scraped posts keep their identity
// and only refresh engagement numbers.
func (s *Store) SavePost(p *types.NormalizedPost) error {
	hashtagsJSON, _ := json.Marshal(p.Hashtags)

	_, err := s.db.Exec(`
		INSERT INTO posts (id, username, position, post_date, content, content_type,
			media_url, has_document, hashtags, hashtag_count, word_count, char_count,
			likes, comments, shares, total_engagement,
			engagement_rate, comment_ratio, share_ratio,
			post_url, source_id, extracted_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			likes = excluded.likes,
			comments = excluded.comments,
			shares = excluded.shares,
			total_engagement = excluded.total_engagement,
			engagement_rate = excluded.engagement_rate,
			comment_ratio = excluded.comment_ratio,
			share_ratio = excluded.share_ratio,
			extracted_at = excluded.extracted_at
	`, p.ID, p.Username, p.Position, p.Date, p.Text, string(p.ContentType),
		p.MediaURL, p.HasDocument, string(hashtagsJSON), p.HashtagCount, p.WordCount, p.CharCount,
		p.Likes, p.Comments, p.Shares, p.TotalEngagement,
		p.EngagementRate, p.CommentRatio, p.ShareRatio,
		p.PostURL, p.SourceID, p.ExtractedAt)

	return err
}

// SeenIdentities returns all dedup identities recorded for a profile, so
// previous runs' posts are not re-admitted.
func (s *Store) SeenIdentities(username string) ([]string, error) {
	rows, err := s.db.Query(`SELECT identity FROM identities WHERE username = ?`, username)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RecordIdentities persists newly admitted dedup identities for a profile
func (s *Store) RecordIdentities(username string, ids []string) error {
	now := time.Now()
	for _, id := range ids {
		_, err := s.db.Exec(`
			INSERT INTO identities (username, identity, admitted_at)
			VALUES (?, ?, ?)
			ON CONFLICT(username, identity) DO NOTHING
		`, username, id, now)
		if err != nil {
			return err
		}
	}
	return nil
}

// PostCount returns how many posts are stored for a profile
func (s *Store) PostCount(username string) (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM posts WHERE username = ?`, username).Scan(&n)
	return n, err
}
