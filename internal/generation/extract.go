package generation

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/pitchkraft/internal/llm"
	"github.com/jonathan/pitchkraft/internal/schemas"
	"github.com/jonathan/pitchkraft/internal/types"
)

// ExtractJobs asks the model for the job postings in text. A single object in
// the reply is treated as a one-job list.
func ExtractJobs(ctx context.Context, client llm.Client, text string) ([]types.Job, error) {
	prompt := llm.BuildExtractionPrompt(llm.JobPostingsSchema(), text)

	raw, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &ExtractionError{Message: "failed to extract jobs", Cause: err}
	}

	doc := strings.TrimSpace(llm.CleanJSONBlock(raw))
	if strings.HasPrefix(doc, "{") {
		doc = "[" + doc + "]"
	}

	if err := schemas.ValidateJobs(doc); err != nil {
		return nil, &ExtractionError{Message: UnparseableJobsMessage, Cause: err}
	}

	var jobs []types.Job
	if err := json.Unmarshal([]byte(doc), &jobs); err != nil {
		return nil, &ExtractionError{Message: UnparseableJobsMessage, Cause: err}
	}
	for i := range jobs {
		if jobs[i].Skills == nil {
			jobs[i].Skills = []string{}
		}
	}
	return jobs, nil
}
