// Package generation turns a job posting URL into outreach drafts: fetch the
// page, extract the jobs, match portfolio links and write one email per job.
package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/kataras/golog"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/pitchkraft/internal/fetch"
	"github.com/jonathan/pitchkraft/internal/llm"
	"github.com/jonathan/pitchkraft/internal/logging"
	"github.com/jonathan/pitchkraft/internal/portfolio"
	"github.com/jonathan/pitchkraft/internal/types"
)

// DefaultConcurrency bounds how many emails are drafted at once.
const DefaultConcurrency = 4

// PageFetcher downloads a posting and extracts its text.
type PageFetcher interface {
	Fetch(ctx context.Context, pageURL string) (*fetch.Page, error)
}

// ProgressEvent reports a finished pipeline step.
type ProgressEvent struct {
	Step    string
	Message string
}

// Pipeline step names.
const (
	StepFetch   = "fetch"
	StepExtract = "extract"
	StepMatch   = "match"
	StepDraft   = "draft"
)

// ProgressCallback receives progress events.
type ProgressCallback func(event ProgressEvent)

// Options configures a Service.
type Options struct {
	Sender        Sender
	LinksPerSkill int
	Concurrency   int
	OnProgress    ProgressCallback
}

// Service runs the generation pipeline.
type Service struct {
	fetcher   PageFetcher
	llm       llm.Client
	portfolio portfolio.Store
	opts      Options
	logger    *golog.Logger
}

// NewService wires a Service. Zero option fields take their defaults; a nil
// logger discards.
func NewService(fetcher PageFetcher, client llm.Client, store portfolio.Store, opts Options, logger *golog.Logger) *Service {
	if opts.Sender.Name == "" {
		opts.Sender.Name = DefaultSender.Name
	}
	if opts.Sender.Agency == "" {
		opts.Sender.Agency = DefaultSender.Agency
	}
	if opts.LinksPerSkill <= 0 {
		opts.LinksPerSkill = portfolio.DefaultLinksPerSkill
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = DefaultConcurrency
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Service{fetcher: fetcher, llm: client, portfolio: store, opts: opts, logger: logger}
}

// Generate produces one result per job found at jobURL, in extraction order.
// A page without text fails with *NoContentError.
func (s *Service) Generate(ctx context.Context, jobURL string) ([]types.GenerationResult, error) {
	page, err := s.fetcher.Fetch(ctx, jobURL)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(page.Text) == "" {
		return nil, &NoContentError{URL: jobURL}
	}
	s.progress(StepFetch, fmt.Sprintf("%d chars from %s", len(page.Text), page.Platform))

	jobs, err := ExtractJobs(ctx, s.llm, page.Text)
	if err != nil {
		return nil, err
	}
	s.progress(StepExtract, fmt.Sprintf("%d jobs", len(jobs)))

	results := make([]types.GenerationResult, len(jobs))
	for i, job := range jobs {
		links, err := s.portfolio.Query(ctx, job.Skills, s.opts.LinksPerSkill)
		if err != nil {
			return nil, fmt.Errorf("failed to match portfolio for %s: %w", job.Role, err)
		}
		if links == nil {
			links = []string{}
		}
		results[i] = types.GenerationResult{Job: job, Links: links}
	}
	s.progress(StepMatch, fmt.Sprintf("links for %d jobs", len(results)))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Concurrency)
	for i := range results {
		i := i
		g.Go(func() error {
			email, err := DraftEmail(gctx, s.llm, results[i].Job, results[i].Links, s.opts.Sender)
			if err != nil {
				return &DraftError{Index: i, Role: results[i].Job.Role, Cause: err}
			}
			results[i].Email = email
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	s.progress(StepDraft, fmt.Sprintf("%d emails", len(results)))

	return results, nil
}

func (s *Service) progress(step, message string) {
	s.logger.Debugf("[%s] %s", step, message)
	if s.opts.OnProgress != nil {
		s.opts.OnProgress(ProgressEvent{Step: step, Message: message})
	}
}
