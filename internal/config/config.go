package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration
type Config struct {
	Version  int            `toml:"version"`
	LinkedIn LinkedInConfig `toml:"linkedin"`
	Scraping ScrapingConfig `toml:"scraping"`
	Export   ExportConfig   `toml:"export"`

	// Followers overrides the scraped follower count per username, for
	// profiles that hide it. 0 means unknown.
	Followers map[string]int `toml:"followers"`
}

type LinkedInConfig struct {
	Email    string `toml:"email"`
	Password string `toml:"password"`
}

type ScrapingConfig struct {
	// Profiles are LinkedIn profile URLs or bare usernames/company slugs.
	Profiles            []string `toml:"profiles"`
	PostsPerProfile     int      `toml:"posts_per_profile"`
	ScrapeIntervalHours int      `toml:"scrape_interval_hours"`
	Headless            bool     `toml:"headless"`
}

type ExportConfig struct {
	// Dir defaults to <cache>/exports when empty.
	Dir         string `toml:"dir"`
	WriteReport bool   `toml:"write_report"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Version: 1,
		Scraping: ScrapingConfig{
			Profiles:            []string{},
			PostsPerProfile:     15,
			ScrapeIntervalHours: 6,
			Headless:            true,
		},
		Export: ExportConfig{
			WriteReport: true,
		},
		Followers: map[string]int{},
	}
}

// ConfigDir returns the platform-appropriate config directory
func ConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "linkharvest"), nil
}

// ConfigPath returns the full path to the config file
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// CacheDir returns the platform-appropriate cache directory
func CacheDir() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cacheDir, "linkharvest"), nil
}

// DBPath returns the path to the SQLite database file
func DBPath() (string, error) {
	dir, err := CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "linkharvest.db"), nil
}

// ExportDir returns the resolved export directory for this config
func (c *Config) ExportDir() (string, error) {
	if c.Export.Dir != "" {
		return c.Export.Dir, nil
	}
	dir, err := CacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "exports"), nil
}

// Load reads config from disk
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config to disk
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(c)
}
