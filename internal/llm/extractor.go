package llm

import (
	"fmt"
	"strings"
)

// ExtractionSchema describes the JSON a prompt asks the model to return.
type ExtractionSchema struct {
	Name        string        // e.g. "JobPostings"
	Description string        // task preamble
	Fields      []SchemaField // fields of each returned object
	List        bool          // the model returns an array of objects
}

// SchemaField is one output field.
type SchemaField struct {
	Name        string
	Type        string // type hint shown to the model
	Description string
	Required    bool
}

// BuildExtractionPrompt renders schema and the input text into a prompt.
func BuildExtractionPrompt(schema ExtractionSchema, inputText string) string {
	var sb strings.Builder

	sb.WriteString("### SCRAPED TEXT FROM WEBSITE:\n")
	sb.WriteString(inputText)
	sb.WriteString("\n\n### INSTRUCTION:\n")
	sb.WriteString(schema.Description)
	sb.WriteString("\n\n")

	if schema.List {
		sb.WriteString("Return ONLY a valid JSON array. Each element has this exact structure:\n{\n")
	} else {
		sb.WriteString("Return ONLY valid JSON matching this exact structure:\n{\n")
	}
	for i, field := range schema.Fields {
		typeHint := field.Type
		if typeHint == "" {
			typeHint = `"string"`
		}
		required := ""
		if field.Required {
			required = " (required)"
		}
		sb.WriteString(fmt.Sprintf("  %q: %s%s", field.Name, typeHint, required))
		if field.Description != "" {
			sb.WriteString(" // " + field.Description)
		}
		if i < len(schema.Fields)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n### VALID JSON (NO PREAMBLE):\n")

	return sb.String()
}

// JobPostingsSchema asks for every job posting found on a careers page.
func JobPostingsSchema() ExtractionSchema {
	return ExtractionSchema{
		Name: "JobPostings",
		Description: `The scraped text is from the careers page of a website.
Extract the job postings it contains. Guidelines:
- role: the exact job title (e.g. "Senior Full Stack Engineer").
- experience: years of experience required (e.g. "5+ years"). If not stated, infer from level (Senior=5+, Junior=0-2).
- skills: the key technical stack (e.g. React, Python, AWS) and soft skills.
- description: a concise summary of the key responsibilities and pain points this role solves.`,
		List: true,
		Fields: []SchemaField{
			{Name: "role", Type: `"string"`, Description: "exact job title", Required: true},
			{Name: "experience", Type: `"string"`, Description: "years of experience required", Required: true},
			{Name: "skills", Type: `["string"]`, Description: "technical and soft skills", Required: true},
			{Name: "description", Type: `"string"`, Description: "key responsibilities and pain points", Required: true},
		},
	}
}
