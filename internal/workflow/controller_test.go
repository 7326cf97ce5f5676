package workflow

import (
	"context"
	"errors"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonathan/pitchkraft/internal/client"
	"github.com/jonathan/pitchkraft/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGenerator records calls and returns canned outcomes.
type fakeGenerator struct {
	calls   []string
	results []types.GenerationResult
	err     error
}

func (f *fakeGenerator) Generate(_ context.Context, url string) ([]types.GenerationResult, error) {
	f.calls = append(f.calls, url)
	return f.results, f.err
}

func sampleResults() []types.GenerationResult {
	return []types.GenerationResult{
		{Job: types.Job{Role: "Backend Engineer", Skills: []string{"Go"}}, Links: []string{"https://a.example"}, Email: "first"},
		{Job: types.Job{Role: "Data Engineer"}, Links: []string{}, Email: "second"},
	}
}

func assertInvariants(t *testing.T, s State) {
	t.Helper()
	assert.False(t, s.Error != "" && s.Results != nil, "error and results both set")
	if s.Phase != PhaseFailed {
		assert.Empty(t, s.Error)
	}
	if s.Phase != PhaseSucceeded {
		assert.Nil(t, s.Results)
	}
}

func TestNewController_InitialState(t *testing.T) {
	c := NewController(&fakeGenerator{})
	s := c.State()

	assert.Equal(t, PhaseIdle, s.Phase)
	assert.Equal(t, DefaultInput, s.Input)
	assert.Empty(t, s.Error)
	assert.Nil(t, s.Results)
	assert.Equal(t, uint64(0), c.Generation())
}

func TestSetInput_DoesNotChangePhase(t *testing.T) {
	c := NewController(&fakeGenerator{})
	_, err := c.Submit()
	require.NoError(t, err)

	c.SetInput("https://boards.greenhouse.io/acme/jobs/1")
	assert.Equal(t, PhaseInFlight, c.Phase())
	assert.Equal(t, "https://boards.greenhouse.io/acme/jobs/1", c.Input())
}

func TestSubmit_WhileInFlightIsIgnored(t *testing.T) {
	gen := &fakeGenerator{results: sampleResults()}
	c := NewController(gen)

	req, err := c.Submit()
	require.NoError(t, err)
	before := c.State()

	_, err = c.Submit()
	assert.ErrorIs(t, err, ErrInFlight)
	assert.Equal(t, before, c.State())
	assert.Equal(t, req.Generation, c.Generation())

	assert.True(t, c.Settle(c.Execute(context.Background(), req)))
	assert.Len(t, gen.calls, 1)
	assert.Equal(t, PhaseSucceeded, c.Phase())
}

func TestSubmit_EmptyInputIsRejected(t *testing.T) {
	gen := &fakeGenerator{}
	c := NewController(gen)
	c.SetInput("   ")

	_, err := c.Submit()
	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Equal(t, PhaseIdle, c.Phase())
	assert.Empty(t, gen.calls)
}

func TestSubmit_CarriesInputVerbatim(t *testing.T) {
	gen := &fakeGenerator{}
	c := NewController(gen)
	c.SetInput(" https://jobs.lever.co/acme/42 ")

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, []string{" https://jobs.lever.co/acme/42 "}, gen.calls)
}

func TestSubmit_ClearsPreviousOutcome(t *testing.T) {
	gen := &fakeGenerator{err: &client.ServiceError{StatusCode: 500, Message: "boom"}}
	c := NewController(gen)
	require.NoError(t, c.Run(context.Background()))
	require.Equal(t, "boom", c.State().Error)

	_, err := c.Submit()
	require.NoError(t, err)
	s := c.State()
	assert.Equal(t, PhaseInFlight, s.Phase)
	assert.Empty(t, s.Error)
	assert.Nil(t, s.Results)
}

func TestSettle_Success(t *testing.T) {
	c := NewController(&fakeGenerator{results: sampleResults()})
	require.NoError(t, c.Run(context.Background()))

	s := c.State()
	assert.Equal(t, PhaseSucceeded, s.Phase)
	require.Len(t, s.Results, 2)
	assert.Equal(t, "Backend Engineer", s.Results[0].Job.Role)
	assert.Equal(t, "Data Engineer", s.Results[1].Job.Role)
}

func TestSettle_EmptyResultsIsSuccess(t *testing.T) {
	c := NewController(&fakeGenerator{results: []types.GenerationResult{}})
	require.NoError(t, c.Run(context.Background()))

	s := c.State()
	assert.Equal(t, PhaseSucceeded, s.Phase)
	assert.NotNil(t, s.Results)
	assert.Empty(t, s.Results)
	assert.Empty(t, s.Error)
}

func TestSettle_ServiceErrorVerbatim(t *testing.T) {
	c := NewController(&fakeGenerator{err: &client.ServiceError{StatusCode: 400, Message: "Bad URL"}})
	require.NoError(t, c.Run(context.Background()))

	s := c.State()
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.Equal(t, "Bad URL", s.Error)
	assert.Nil(t, s.Results)
}

func TestSettle_FallbackMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"transport failure", &client.TransportError{Message: "HTTP request failed", Cause: errors.New("connection refused")}},
		{"service error without message", &client.ServiceError{StatusCode: 500}},
		{"unknown error", errors.New("something else")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(&fakeGenerator{err: tt.err})
			require.NoError(t, c.Run(context.Background()))

			s := c.State()
			assert.Equal(t, PhaseFailed, s.Phase)
			assert.Equal(t, GenericFailureMessage, s.Error)
			assert.Nil(t, s.Results)
		})
	}
}

func TestRun_DetailBodyShowsGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail":"internal boom"}`))
	}))
	defer server.Close()

	c := NewController(client.New(&client.Options{BaseURL: server.URL}))
	require.NoError(t, c.Run(context.Background()))

	s := c.State()
	assert.Equal(t, PhaseFailed, s.Phase)
	assert.Equal(t, GenericFailureMessage, s.Error)
}

func TestSettle_StaleOrUnexpectedIsDropped(t *testing.T) {
	c := NewController(&fakeGenerator{})

	// Nothing in flight.
	assert.False(t, c.Settle(Settlement{Generation: 0, Err: errors.New("late")}))
	assert.Equal(t, PhaseIdle, c.Phase())

	first, err := c.Submit()
	require.NoError(t, err)
	require.True(t, c.Settle(Settlement{Generation: first.Generation, Results: sampleResults()}))

	second, err := c.Submit()
	require.NoError(t, err)

	// A settlement tagged with the earlier generation must not overwrite the newer request.
	assert.False(t, c.Settle(Settlement{Generation: first.Generation, Err: errors.New("slow")}))
	assert.Equal(t, PhaseInFlight, c.Phase())

	assert.True(t, c.Settle(Settlement{Generation: second.Generation, Results: []types.GenerationResult{}}))
	assert.Equal(t, PhaseSucceeded, c.Phase())
}

func TestState_ResultsAreReadOnlySnapshot(t *testing.T) {
	c := NewController(&fakeGenerator{results: sampleResults()})
	require.NoError(t, c.Run(context.Background()))

	snap := c.State()
	snap.Results[0].Email = "edited"
	snap.Results[0].Links[0] = "edited"

	fresh := c.State()
	assert.Equal(t, "first", fresh.Results[0].Email)
	assert.Equal(t, "https://a.example", fresh.Results[0].Links[0])
}

func TestRun_PropagatesGuardErrors(t *testing.T) {
	c := NewController(&fakeGenerator{})
	_, err := c.Submit()
	require.NoError(t, err)

	assert.ErrorIs(t, c.Run(context.Background()), ErrInFlight)
}

func TestController_InvariantsHoldForRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	outcomes := []*fakeGenerator{
		{results: sampleResults()},
		{results: []types.GenerationResult{}},
		{err: &client.ServiceError{StatusCode: 400, Message: "Bad URL"}},
		{err: &client.TransportError{Message: "HTTP request failed"}},
	}

	for run := 0; run < 50; run++ {
		gen := &fakeGenerator{}
		c := NewController(gen)
		var pending []Request

		for step := 0; step < 40; step++ {
			switch rng.Intn(4) {
			case 0:
				c.SetInput("https://jobs.example/" + string(rune('a'+rng.Intn(26))))
			case 1:
				if req, err := c.Submit(); err == nil {
					pending = append(pending, req)
				}
			case 2:
				if len(pending) > 0 {
					o := outcomes[rng.Intn(len(outcomes))]
					*gen = fakeGenerator{calls: gen.calls, results: o.results, err: o.err}
					req := pending[rng.Intn(len(pending))]
					c.Settle(c.Execute(context.Background(), req))
				}
			case 3:
				_, _ = c.Submit()
			}
			assertInvariants(t, c.State())
		}
	}
}
