package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/pitchkraft/internal/llm"
	"github.com/jonathan/pitchkraft/internal/prompts"
	"github.com/jonathan/pitchkraft/internal/types"
)

// Sender identifies who the outreach email is written as.
type Sender struct {
	Name   string
	Agency string
}

// DefaultSender is used when the service is not configured with one.
var DefaultSender = Sender{Name: "Ashish", Agency: "PitchKraft"}

// BuildEmailPrompt fills the write-email template for job and links.
func BuildEmailPrompt(job types.Job, links []string, sender Sender) (string, error) {
	template, err := prompts.Get(prompts.Outreach, "write-email")
	if err != nil {
		return "", err
	}

	jobJSON, err := json.MarshalIndent(job, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal job: %w", err)
	}

	linkList := "(none)"
	if len(links) > 0 {
		linkList = strings.Join(links, ", ")
	}

	return prompts.Format(template, map[string]string{
		"Job":    string(jobJSON),
		"Sender": sender.Name,
		"Agency": sender.Agency,
		"Role":   job.Role,
		"Links":  linkList,
	}), nil
}

// DraftEmail writes the outreach email for one job.
func DraftEmail(ctx context.Context, client llm.Client, job types.Job, links []string, sender Sender) (string, error) {
	prompt, err := BuildEmailPrompt(job, links, sender)
	if err != nil {
		return "", err
	}
	text, err := client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(text), nil
}
