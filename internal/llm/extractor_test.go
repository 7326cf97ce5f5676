package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExtractionPrompt_JobPostings(t *testing.T) {
	prompt := BuildExtractionPrompt(JobPostingsSchema(), "We are hiring a Go engineer.")

	assert.Contains(t, prompt, "We are hiring a Go engineer.")
	assert.Contains(t, prompt, "JSON array")
	for _, field := range []string{`"role"`, `"experience"`, `"skills"`, `"description"`} {
		assert.Contains(t, prompt, field)
	}
	assert.Contains(t, prompt, `["string"] (required)`)
	assert.Contains(t, prompt, "NO PREAMBLE")
}

func TestBuildExtractionPrompt_SingleObject(t *testing.T) {
	schema := ExtractionSchema{
		Description: "Extract the company.",
		Fields:      []SchemaField{{Name: "company"}},
	}
	prompt := BuildExtractionPrompt(schema, "Acme")

	assert.Contains(t, prompt, "matching this exact structure")
	assert.Contains(t, prompt, `"company": "string"`)
	assert.NotContains(t, prompt, "(required)")
}
