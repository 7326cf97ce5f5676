// Package types provides type definitions for the data exchanged between the outreach client and the generation service.
package types

import (
	"github.com/go-playground/validator/v10"
)

// Job is the descriptive summary of one job posting extracted by the generation service.
type Job struct {
	Role        string   `json:"role"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
}

// GenerationResult is one candidate outreach draft: the job it targets, the matched
// portfolio links (in service order) and the generated email text.
type GenerationResult struct {
	Job   Job      `json:"job"`
	Links []string `json:"links"`
	Email string   `json:"email"`
}

// GenerateRequest is the body of POST /generate.
type GenerateRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// Validate validates the GenerateRequest using the validator.
func (r *GenerateRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// GenerateResponse is the success body of POST /generate.
type GenerateResponse struct {
	Results []GenerationResult `json:"results"`
}

// ErrorResponse is the failure body of POST /generate. Only the error field
// carries a user-facing message; other fields such as FastAPI's detail are ignored.
type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}

// Clone returns a deep copy of the result so callers cannot alias its slices.
func (r GenerationResult) Clone() GenerationResult {
	out := r
	if r.Job.Skills != nil {
		out.Job.Skills = append([]string(nil), r.Job.Skills...)
	}
	if r.Links != nil {
		out.Links = append([]string(nil), r.Links...)
	}
	return out
}
