package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_Success(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, GeneratePath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[{"job":{"role":"A"},"links":[],"email":"one"},{"job":{"role":"B"},"links":["x"],"email":"two"}]}`))
	}))
	defer server.Close()

	c := New(&Options{BaseURL: server.URL})
	results, err := c.Generate(context.Background(), " https://jobs.lever.co/example/job-id")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"url": " https://jobs.lever.co/example/job-id"}, gotBody)
	require.Len(t, results, 2)
	assert.Equal(t, "A", results[0].Job.Role)
	assert.Equal(t, "B", results[1].Job.Role)
	assert.Equal(t, []string{"x"}, results[1].Links)
}

func TestGenerate_NullResultsIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":null}`))
	}))
	defer server.Close()

	results, err := New(&Options{BaseURL: server.URL}).Generate(context.Background(), "https://a.example")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestGenerate_ServiceErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"error field", `{"error":"Bad URL"}`, "Bad URL"},
		{"detail field only", `{"detail":"internal boom"}`, ""},
		{"no message", `{}`, ""},
		{"not json", `<html>502</html>`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := New(&Options{BaseURL: server.URL}).Generate(context.Background(), "https://a.example")
			require.Error(t, err)

			var svcErr *ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
			assert.Equal(t, tt.wantMsg, svcErr.Message)
		})
	}
}

func TestGenerate_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":`))
	}))
	defer server.Close()

	_, err := New(&Options{BaseURL: server.URL}).Generate(context.Background(), "https://a.example")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Contains(t, err.Error(), "malformed response body")
}

func TestGenerate_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	base := server.URL
	server.Close()

	_, err := New(&Options{BaseURL: base}).Generate(context.Background(), "https://a.example")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestNew_Defaults(t *testing.T) {
	c := New(nil)
	assert.Equal(t, DefaultBaseURL+GeneratePath, c.Endpoint())

	c = New(&Options{BaseURL: "http://svc:9000/"})
	assert.Equal(t, "http://svc:9000/generate", c.Endpoint())
}
