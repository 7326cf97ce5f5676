package main

import (
	"context"
	"fmt"

	"github.com/kataras/golog"
	"github.com/spf13/cobra"

	"github.com/jonathan/pitchkraft/internal/config"
	"github.com/jonathan/pitchkraft/internal/fetch"
	"github.com/jonathan/pitchkraft/internal/generation"
	"github.com/jonathan/pitchkraft/internal/llm"
	"github.com/jonathan/pitchkraft/internal/logging"
	"github.com/jonathan/pitchkraft/internal/portfolio"
	"github.com/jonathan/pitchkraft/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the generation service",
	Long: `Start an HTTP server exposing POST /generate and GET /health. Each request fetches the
posting, extracts its jobs with Gemini, matches portfolio links and drafts one email per job.`,
	RunE: runServe,
}

var (
	servePort         int
	serveAPIKey       string
	serveDatabaseURL  string
	servePortfolioCSV string
	serveUseBrowser   bool
	serveSender       string
	serveAgency       string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (defaults to PITCHKRAFT_PORT or 8000)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")
	serveCmd.Flags().StringVar(&serveDatabaseURL, "db-url", "", "PostgreSQL URL holding the portfolio table (defaults to DATABASE_URL)")
	serveCmd.Flags().StringVar(&servePortfolioCSV, "portfolio", "", "Portfolio CSV with Techstack,Links columns (defaults to PORTFOLIO_CSV)")
	serveCmd.Flags().BoolVar(&serveUseBrowser, "use-browser", false, "Render thin pages in headless Chrome")
	serveCmd.Flags().StringVar(&serveSender, "sender", "", "Name the emails are written as")
	serveCmd.Flags().StringVar(&serveAgency, "agency", "", "Agency the sender represents")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd,
		flagOverride{"port", func(c *config.Config) { c.Port = servePort }},
		flagOverride{"api-key", func(c *config.Config) { c.APIKey = serveAPIKey }},
		flagOverride{"db-url", func(c *config.Config) { c.DatabaseURL, c.PortfolioCSV = serveDatabaseURL, "" }},
		flagOverride{"portfolio", func(c *config.Config) { c.PortfolioCSV, c.DatabaseURL = servePortfolioCSV, "" }},
		flagOverride{"use-browser", func(c *config.Config) { c.UseBrowser = serveUseBrowser }},
		flagOverride{"sender", func(c *config.Config) { c.SenderName = serveSender }},
		flagOverride{"agency", func(c *config.Config) { c.Agency = serveAgency }},
	)
	if err != nil {
		return err
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable or --api-key flag is required")
	}

	ctx := cmd.Context()
	logger := logging.Stderr(cfg.LogLevel)

	store, closeStore, err := openPortfolio(ctx, cfg, logger)
	if err != nil {
		return err
	}

	model, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.APIKey)
	if err != nil {
		closeStore()
		return fmt.Errorf("failed to create LLM client: %w", err)
	}

	fetchOpts := fetch.DefaultOptions()
	fetchOpts.UseBrowser = cfg.UseBrowser

	svc := generation.NewService(
		fetch.NewFetcher(fetchOpts, logger),
		model,
		store,
		generation.Options{
			Sender:        generation.Sender{Name: cfg.SenderName, Agency: cfg.Agency},
			LinksPerSkill: cfg.LinksPerSkill,
		},
		logger,
	)

	srv, err := server.New(server.Config{
		Port:      cfg.Port,
		Generator: svc,
		Logger:    logger,
		OnShutdown: []func(){
			func() { _ = model.Close() },
			closeStore,
		},
	})
	if err != nil {
		_ = model.Close()
		closeStore()
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// openPortfolio picks the portfolio source: Postgres when a database URL is
// set, else the CSV file, else an empty store that matches nothing.
func openPortfolio(ctx context.Context, cfg config.Config, logger *golog.Logger) (portfolio.Store, func(), error) {
	if logger == nil {
		logger = logging.Discard()
	}
	switch {
	case cfg.DatabaseURL != "":
		store, err := portfolio.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("[portfolio] using table %s", portfolio.DefaultTable)
		return store, store.Close, nil
	case cfg.PortfolioCSV != "":
		store, err := portfolio.LoadCSV(cfg.PortfolioCSV)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("[portfolio] loaded %d entries from %s", store.Len(), cfg.PortfolioCSV)
		return store, func() {}, nil
	default:
		logger.Warn("[portfolio] no portfolio configured; every job will have zero matches")
		return portfolio.NewMemoryStore(nil), func() {}, nil
	}
}
