package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid lever url", "https://jobs.lever.co/example/job-id", false},
		{"empty", "", true},
		{"not a url", "jobs at acme", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := GenerateRequest{URL: tt.url}
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateResponse_DecodesServicePayload(t *testing.T) {
	payload := `{"results":[{"job":{"role":"Backend Engineer","description":"Own the API","skills":["Go","SQL"],"experience":"3+ years"},"links":["https://a.example"],"email":"Hi"}]}`

	var resp GenerateResponse
	require.NoError(t, json.Unmarshal([]byte(payload), &resp))
	require.Len(t, resp.Results, 1)

	got := resp.Results[0]
	assert.Equal(t, "Backend Engineer", got.Job.Role)
	assert.Equal(t, []string{"Go", "SQL"}, got.Job.Skills)
	assert.Equal(t, "3+ years", got.Job.Experience)
	assert.Equal(t, []string{"https://a.example"}, got.Links)
	assert.Equal(t, "Hi", got.Email)
}

func TestErrorResponse_IgnoresDetail(t *testing.T) {
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal([]byte(`{"detail":"internal boom"}`), &resp))
	assert.Empty(t, resp.Error)

	require.NoError(t, json.Unmarshal([]byte(`{"error":"Bad URL","detail":"ignored"}`), &resp))
	assert.Equal(t, "Bad URL", resp.Error)
}

func TestGenerationResult_Clone(t *testing.T) {
	orig := GenerationResult{
		Job:   Job{Role: "SRE", Skills: []string{"k8s"}},
		Links: []string{"https://a.example"},
		Email: "hello",
	}

	clone := orig.Clone()
	clone.Job.Skills[0] = "changed"
	clone.Links[0] = "changed"

	assert.Equal(t, "k8s", orig.Job.Skills[0])
	assert.Equal(t, "https://a.example", orig.Links[0])
	assert.Equal(t, orig.Email, clone.Email)
}
