// Command linkharvest scrapes LinkedIn profile posts, normalizes them and
// exports CSV spreadsheets.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/browser"

	"github.com/jcortez/linkharvest/internal/app"
	"github.com/jcortez/linkharvest/internal/auth"
	"github.com/jcortez/linkharvest/internal/config"
	"github.com/jcortez/linkharvest/internal/scheduler"
	"github.com/jcortez/linkharvest/internal/scraper"
	"github.com/jcortez/linkharvest/internal/store"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "login":
		runLogin()
	case "import-cookies":
		runImportCookies()
	case "logout":
		runLogout()
	case "scrape":
		runScrape()
	case "watch":
		runWatch()
	case "open":
		if len(os.Args) < 3 {
			fmt.Println("Usage: linkharvest open <config|exports>")
			os.Exit(1)
		}
		runOpen(os.Args[2])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage: linkharvest <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login           Open a browser window to sign in to LinkedIn")
	fmt.Println("  import-cookies  Reuse an existing LinkedIn session from your browser")
	fmt.Println("  logout          Clear stored credentials")
	fmt.Println("  scrape          Scrape configured profiles once and export CSV")
	fmt.Println("  watch           Scrape on the configured interval until interrupted")
	fmt.Println("  open config     Open config file in default editor")
	fmt.Println("  open exports    Open export directory in file explorer")
}

// loadConfig reads the config file, falling back to defaults (and writing
// them out) on first run.
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		if os.IsNotExist(err) {
			cfg = config.Default()
			if saveErr := cfg.Save(); saveErr != nil {
				log.Printf("Failed to write default config: %v", saveErr)
			} else if path, pathErr := config.ConfigPath(); pathErr == nil {
				log.Printf("Wrote default config to %s", path)
			}
			return cfg
		}
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func newAuthManager() *auth.Manager {
	cookiePath, err := auth.DefaultCookieStorePath()
	if err != nil {
		log.Fatalf("Failed to get cookie store path: %v", err)
	}
	return auth.NewManager(auth.NewCookieStore(cookiePath))
}

// newApp builds the full pipeline: auth, scraper, store, orchestrator.
// The returned cleanup closes the store.
func newApp(cfg *config.Config) (*app.App, func()) {
	authMgr := newAuthManager()

	dbPath, err := config.DBPath()
	if err != nil {
		log.Fatalf("Failed to get database path: %v", err)
	}
	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	sc := scraper.New(cfg.Scraping.Headless)
	return app.New(cfg, authMgr, sc, st), func() { st.Close() }
}

func runLogin() {
	cfg := loadConfig()
	authMgr := newAuthManager()

	log.Println("Opening LinkedIn login. Complete any 2FA checks in the browser window.")
	if err := authMgr.Login(context.Background(), cfg.LinkedIn.Email, cfg.LinkedIn.Password); err != nil {
		log.Fatalf("Login failed: %v", err)
	}
	log.Println("Logged in; session saved.")
}

func runImportCookies() {
	authMgr := newAuthManager()

	if err := authMgr.ImportFromBrowser(context.Background()); err != nil {
		log.Fatalf("Cookie import failed: %v", err)
	}
	log.Println("Imported LinkedIn session from browser.")
}

func runLogout() {
	authMgr := newAuthManager()

	if err := authMgr.Logout(); err != nil {
		log.Fatalf("Logout failed: %v", err)
	}
	log.Println("Cleared stored credentials.")
}

func runScrape() {
	a, cleanup := newApp(loadConfig())
	defer cleanup()

	if err := a.RunScrape(context.Background()); err != nil {
		log.Fatalf("Scrape failed: %v", err)
	}
}

func runWatch() {
	cfg := loadConfig()
	a, cleanup := newApp(cfg)
	defer cleanup()

	sched := scheduler.New()
	if err := sched.AddScrapeJob(cfg.Scraping.ScrapeIntervalHours, a.RunScrape); err != nil {
		log.Fatalf("Failed to schedule scrape job: %v", err)
	}
	sched.Start()

	// Run once immediately so the first export doesn't wait for the
	// interval to elapse.
	if err := a.RunScrape(context.Background()); err != nil {
		log.Printf("Initial scrape failed: %v", err)
	}

	if next, ok := sched.NextRun("scrape"); ok {
		log.Printf("Next scrape at %s", next.Format("15:04:05"))
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	log.Println("Shutting down...")
	<-sched.Stop().Done()
}

func runOpen(target string) {
	var path string
	var err error

	switch target {
	case "config":
		path, err = config.ConfigPath()
	case "exports":
		cfg := loadConfig()
		path, err = cfg.ExportDir()
		if err == nil {
			err = os.MkdirAll(path, 0755)
		}
	default:
		fmt.Printf("Unknown target: %s\n", target)
		os.Exit(1)
	}

	if err != nil {
		log.Fatalf("Failed to get path: %v", err)
	}

	if err := browser.OpenFile(path); err != nil {
		log.Fatalf("Failed to open: %v", err)
	}
}
