package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/pitchkraft/internal/config"
	"github.com/jonathan/pitchkraft/internal/portfolio"
	"github.com/jonathan/pitchkraft/internal/present"
)

var portfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Manage the portfolio used for link matching",
}

var portfolioImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Load a Techstack,Links CSV into the Postgres portfolio table",
	RunE:  runPortfolioImport,
}

var portfolioMatchCmd = &cobra.Command{
	Use:   "match [skill...]",
	Short: "Show which portfolio links a list of skills would match",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runPortfolioMatch,
}

var (
	portfolioCSV         string
	portfolioDatabaseURL string
	portfolioLinks       int
)

func init() {
	portfolioCmd.PersistentFlags().StringVar(&portfolioCSV, "csv", "", "Portfolio CSV with Techstack,Links columns (defaults to PORTFOLIO_CSV)")
	portfolioCmd.PersistentFlags().StringVar(&portfolioDatabaseURL, "db-url", "", "PostgreSQL connection URL (defaults to DATABASE_URL)")
	portfolioMatchCmd.Flags().IntVarP(&portfolioLinks, "n", "n", 0, "Links per skill (defaults to 2)")

	portfolioCmd.AddCommand(portfolioImportCmd, portfolioMatchCmd)
	rootCmd.AddCommand(portfolioCmd)
}

func runPortfolioImport(cmd *cobra.Command, _ []string) error {
	csvPath := portfolioCSV
	if csvPath == "" {
		csvPath = os.Getenv(config.EnvPortfolioCSV)
	}
	dbURL := portfolioDatabaseURL
	if dbURL == "" {
		dbURL = os.Getenv(config.EnvDatabaseURL)
	}
	if csvPath == "" || dbURL == "" {
		return fmt.Errorf("both --csv and --db-url (or PORTFOLIO_CSV and DATABASE_URL) are required")
	}

	f, err := os.Open(csvPath)
	if err != nil {
		return fmt.Errorf("failed to open portfolio %s: %w", csvPath, err)
	}
	defer func() { _ = f.Close() }()

	entries, err := portfolio.ReadCSV(f)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	store, err := portfolio.Connect(ctx, dbURL)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.InitSchema(ctx); err != nil {
		return err
	}
	n, err := store.Import(ctx, entries)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d portfolio entries\n", n)
	return nil
}

func runPortfolioMatch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd,
		flagOverride{"csv", func(c *config.Config) { c.PortfolioCSV, c.DatabaseURL = portfolioCSV, "" }},
		flagOverride{"db-url", func(c *config.Config) { c.DatabaseURL, c.PortfolioCSV = portfolioDatabaseURL, "" }},
		flagOverride{"n", func(c *config.Config) { c.LinksPerSkill = portfolioLinks }},
	)
	if err != nil {
		return err
	}

	store, closeStore, err := openPortfolio(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}
	defer closeStore()

	links, err := store.Query(cmd.Context(), args, cfg.LinksPerSkill)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(links) == 0 {
		_, _ = fmt.Fprintln(out, present.NoMatchesText)
		return nil
	}
	for i, link := range links {
		_, _ = fmt.Fprintf(out, "%d. %s\n", i+1, link)
	}
	return nil
}
