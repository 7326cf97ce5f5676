// Package main provides the pitchkraft CLI: the interactive outreach page, a
// one-shot generate command and the generation service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pitchkraft",
	Short: "Cold outreach emails from job posting URLs",
	Long: `PitchKraft turns a job posting URL into outreach drafts: the jobs on the page,
the portfolio projects that match their skills and a ready-to-edit email per job.`,
	SilenceUsage: true,
}

var (
	configPath string
	logLevel   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error, disable (defaults to LOG_LEVEL or info)")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
