package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/pitchkraft/internal/client"
	"github.com/jonathan/pitchkraft/internal/config"
	"github.com/jonathan/pitchkraft/internal/observability"
	"github.com/jonathan/pitchkraft/internal/present"
	"github.com/jonathan/pitchkraft/internal/workflow"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate outreach drafts for one job URL and print them",
	Long: `Submits the URL to the generation service once, waits for it to settle and prints
one box per job with its matched portfolio links and email. Exits non-zero when generation fails.`,
	RunE: runGenerateCmd,
}

var (
	generateURL        string
	generateServiceURL string
)

func init() {
	generateCommand.Flags().StringVarP(&generateURL, "url", "u", "", "Job posting URL")
	generateCommand.Flags().StringVar(&generateServiceURL, "service-url", "", "Generation service base URL (defaults to PITCHKRAFT_SERVICE_URL or http://localhost:8000)")
	_ = generateCommand.MarkFlagRequired("url")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, flagOverride{"service-url", func(c *config.Config) { c.ServiceURL = generateServiceURL }})
	if err != nil {
		return err
	}
	return generateOnce(cmd.Context(), os.Stdout, cfg.ServiceURL, generateURL)
}

// generateOnce drives a fresh controller through one request and prints the
// resulting view.
func generateOnce(ctx context.Context, out io.Writer, serviceURL, jobURL string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctrl := workflow.NewController(client.New(&client.Options{BaseURL: serviceURL}))
	ctrl.SetInput(jobURL)

	if err := ctrl.Run(ctx); err != nil {
		return err
	}

	state := ctrl.State()
	observability.NewPrinter(out).PrintView(present.Render(state))
	if state.Phase == workflow.PhaseFailed {
		return fmt.Errorf("generation failed: %s", state.Error)
	}
	return nil
}
