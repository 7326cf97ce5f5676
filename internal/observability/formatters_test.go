package observability

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/pitchkraft/internal/present"
	"github.com/jonathan/pitchkraft/internal/types"
	"github.com/jonathan/pitchkraft/internal/workflow"
)

func succeeded(results ...types.GenerationResult) present.View {
	return present.Render(workflow.State{Phase: workflow.PhaseSucceeded, Results: results})
}

func TestPrintView_Cards(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintView(succeeded(types.GenerationResult{
		Job: types.Job{
			Role:        "Backend Engineer",
			Experience:  "3+ years",
			Skills:      []string{"Go", "Postgres", "Kafka", "gRPC", "Docker", "Terraform"},
			Description: "Own the billing APIs.",
		},
		Links: []string{"https://example.com/go", "https://example.com/kafka"},
		Email: "Subject: Regarding your Backend Engineer search\n\nHi there,",
	}))
	output := buf.String()

	assert.Contains(t, output, "#1  Backend Engineer")
	assert.Contains(t, output, "Experience: 3+ years")
	assert.Contains(t, output, "Looking for: Go, Postgres, Kafka, gRPC, Docker")
	assert.NotContains(t, output, "Terraform")
	assert.Contains(t, output, "2 Portfolio Matches")
	assert.Contains(t, output, "1. https://example.com/go")
	assert.Contains(t, output, "2. https://example.com/kafka")
	assert.NotContains(t, output, "0. https://")
	assert.Contains(t, output, "EMAIL")
	assert.Contains(t, output, "Regarding your Backend Engineer search")
}

func TestPrintView_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintView(succeeded(types.GenerationResult{
		Job:   types.Job{Role: "SRE"},
		Links: []string{},
		Email: "Hello",
	}))

	assert.Contains(t, buf.String(), "0 Portfolio Matches")
	assert.Contains(t, buf.String(), "No specific portfolio links matched.")
}

func TestPrintView_Notice(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintView(present.Render(workflow.State{Phase: workflow.PhaseFailed, Error: "No content found"}))

	assert.Contains(t, buf.String(), "GENERATION FAILED")
	assert.Contains(t, buf.String(), "No content found")
}

func TestPrintView_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintView(succeeded())
	assert.Empty(t, buf.String())

	NewPrinter(&buf).PrintView(present.Render(workflow.State{Phase: workflow.PhaseIdle}))
	assert.Empty(t, buf.String())
}

func TestPrintBox_WrapsLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("EMAIL", strings.Repeat("word ", 40)+strings.Repeat("x", 100))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, utf8.RuneCountInString(line), "line %q", line)
	}
}

func TestWrap(t *testing.T) {
	assert.Equal(t, []string{"short"}, wrap("short", 10))
	assert.Equal(t, []string{"one two", "three"}, wrap("one two three", 8))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, wrap("abcdefghij", 4))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab...", truncate("abcdefgh", 5))
	assert.Equal(t, "éé...", truncate("éééééééé", 5))
}
