package generation

import "fmt"

// NoContentMessage is reported when a page yields no text.
const NoContentMessage = "No content found"

// UnparseableJobsMessage is reported when the model's job list cannot be parsed.
const UnparseableJobsMessage = "Context too big. Unable to parse jobs."

// NoContentError means the page at URL downloaded but had no usable text.
type NoContentError struct {
	URL string
}

func (e *NoContentError) Error() string {
	return NoContentMessage
}

// ExtractionError represents a failure turning page text into a job list.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// DraftError represents a failure writing the email for one job.
type DraftError struct {
	Index int
	Role  string
	Cause error
}

func (e *DraftError) Error() string {
	return fmt.Sprintf("failed to draft email for job %d (%s): %v", e.Index+1, e.Role, e.Cause)
}

func (e *DraftError) Unwrap() error {
	return e.Cause
}
