package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jonathan/pitchkraft/internal/client"
	"github.com/jonathan/pitchkraft/internal/config"
	"github.com/jonathan/pitchkraft/internal/tui"
	"github.com/jonathan/pitchkraft/internal/workflow"
)

var uiCommand = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive outreach page",
	Long: `Opens a terminal page with a job URL field. Enter submits the URL to the generation
service; each job found gets a card with its skills, portfolio links and an editable email.`,
	RunE: runUICmd,
}

var (
	uiServiceURL string
	uiURL        string
)

func init() {
	uiCommand.Flags().StringVar(&uiServiceURL, "service-url", "", "Generation service base URL (defaults to PITCHKRAFT_SERVICE_URL or http://localhost:8000)")
	uiCommand.Flags().StringVarP(&uiURL, "url", "u", "", "Pre-fill the job URL field")

	rootCmd.AddCommand(uiCommand)
}

func runUICmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, flagOverride{"service-url", func(c *config.Config) { c.ServiceURL = uiServiceURL }})
	if err != nil {
		return err
	}

	ctrl := workflow.NewController(client.New(&client.Options{BaseURL: cfg.ServiceURL}))
	if uiURL != "" {
		ctrl.SetInput(uiURL)
	}

	model := tui.New(cmd.Context(), ctrl, tui.Options{})
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("ui exited: %w", err)
	}
	return nil
}
