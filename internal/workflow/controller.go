// Package workflow owns the request/response lifecycle of a single outreach generation:
// the URL input, the in-flight guard, and the last result set or error.
package workflow

import (
	"context"
	"errors"
	"strings"

	"github.com/jonathan/pitchkraft/internal/client"
	"github.com/jonathan/pitchkraft/internal/types"
)

// DefaultInput is the example URL the input starts with.
const DefaultInput = "https://jobs.lever.co/example/job-id"

// GenericFailureMessage is shown when the service gave no message of its own.
const GenericFailureMessage = "Failed to generate"

// ErrInFlight is returned by Submit while a request is outstanding.
var ErrInFlight = errors.New("generation already in flight")

// ErrEmptyInput is returned by Submit when the input is blank.
var ErrEmptyInput = errors.New("input is empty")

// Generator is the outbound call to the generation service.
type Generator interface {
	Generate(ctx context.Context, url string) ([]types.GenerationResult, error)
}

// State is a snapshot of the workflow. Error is non-empty only in PhaseFailed and
// Results is non-nil only in PhaseSucceeded.
type State struct {
	Input   string
	Phase   Phase
	Error   string
	Results []types.GenerationResult
}

// Request identifies one submitted generation.
type Request struct {
	Generation uint64
	URL        string
}

// Settlement is the outcome of executing a Request.
type Settlement struct {
	Generation uint64
	Results    []types.GenerationResult
	Err        error
}

// Controller holds the single WorkflowState of a session. It is not safe for
// concurrent use: every mutation happens on the caller's event loop, and only
// Execute may run elsewhere.
type Controller struct {
	gen        Generator
	state      State
	generation uint64
}

// NewController creates a controller in PhaseIdle with the example URL as input.
func NewController(gen Generator) *Controller {
	return &Controller{
		gen: gen,
		state: State{
			Input: DefaultInput,
			Phase: PhaseIdle,
		},
	}
}

// SetInput replaces the input text. Allowed in every phase.
func (c *Controller) SetInput(text string) {
	c.state.Input = text
}

// Input returns the current input text.
func (c *Controller) Input() string {
	return c.state.Input
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	return c.state.Phase
}

// Generation returns the tag of the most recent submitted request.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// State returns a snapshot whose results do not alias the controller's.
func (c *Controller) State() State {
	s := c.state
	if c.state.Results != nil {
		s.Results = make([]types.GenerationResult, len(c.state.Results))
		for i, r := range c.state.Results {
			s.Results[i] = r.Clone()
		}
	}
	return s
}

// Submit starts a generation for the current input. While a request is in flight
// it returns ErrInFlight and changes nothing; a blank input returns ErrEmptyInput.
func (c *Controller) Submit() (Request, error) {
	if c.state.Phase == PhaseInFlight {
		return Request{}, ErrInFlight
	}
	if strings.TrimSpace(c.state.Input) == "" {
		return Request{}, ErrEmptyInput
	}

	c.transition(PhaseInFlight)
	c.state.Error = ""
	c.state.Results = nil
	c.generation++

	return Request{Generation: c.generation, URL: c.state.Input}, nil
}

// Execute performs the outbound call for req. It does not read or write state.
func (c *Controller) Execute(ctx context.Context, req Request) Settlement {
	results, err := c.gen.Generate(ctx, req.URL)
	return Settlement{Generation: req.Generation, Results: results, Err: err}
}

// Settle applies s if it belongs to the request currently in flight and reports
// whether it did. Stale or unexpected settlements are dropped.
func (c *Controller) Settle(s Settlement) bool {
	if c.state.Phase != PhaseInFlight || s.Generation != c.generation {
		return false
	}

	if s.Err != nil {
		c.transition(PhaseFailed)
		c.state.Error = ErrorMessage(s.Err)
		c.state.Results = nil
		return true
	}

	results := make([]types.GenerationResult, len(s.Results))
	for i, r := range s.Results {
		results[i] = r.Clone()
	}
	c.transition(PhaseSucceeded)
	c.state.Results = results
	c.state.Error = ""
	return true
}

// Run submits, waits for the request to settle and applies it.
func (c *Controller) Run(ctx context.Context) error {
	req, err := c.Submit()
	if err != nil {
		return err
	}
	c.Settle(c.Execute(ctx, req))
	return nil
}

// ErrorMessage maps a failed request to the text shown to the user: the service's
// own message when it sent one, otherwise GenericFailureMessage.
func ErrorMessage(err error) string {
	var svcErr *client.ServiceError
	if errors.As(err, &svcErr) && strings.TrimSpace(svcErr.Message) != "" {
		return svcErr.Message
	}
	return GenericFailureMessage
}

func (c *Controller) transition(to Phase) {
	if !isValidTransition(c.state.Phase, to) {
		panic("workflow: invalid transition " + string(c.state.Phase) + " -> " + string(to))
	}
	c.state.Phase = to
}
