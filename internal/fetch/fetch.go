// Package fetch downloads a job posting page and reduces it to the plain text the
// job extractor reads.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/kataras/golog"

	"github.com/jonathan/pitchkraft/internal/logging"
)

// DefaultTimeout bounds a single page download.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for page requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; PitchKraft/1.0)"

// Error represents an error during page fetching.
type Error struct {
	URL        string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetcher.
type Options struct {
	Timeout    time.Duration
	UserAgent  string
	Headers    map[string]string
	UseBrowser bool // render short pages in headless Chrome
}

// DefaultOptions returns the defaults used by `pitchkraft serve`.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// RenderFunc returns the fully rendered HTML of a page.
type RenderFunc func(ctx context.Context, pageURL string) (string, error)

// Page is the downloaded and cleaned content of a job posting.
type Page struct {
	URL      string
	Platform Platform
	HTML     string
	Text     string
	Rendered bool // text came from the browser fallback
}

// Fetcher downloads pages over HTTP with an optional browser fallback for
// script-rendered job boards.
type Fetcher struct {
	opts   *Options
	http   *http.Client
	render RenderFunc
	logger *golog.Logger
}

// NewFetcher creates a fetcher. A nil opts uses DefaultOptions; a nil logger discards.
func NewFetcher(opts *Options, logger *golog.Logger) *Fetcher {
	if opts == nil {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	f := &Fetcher{
		opts:   opts,
		http:   &http.Client{Timeout: opts.Timeout},
		logger: logger,
	}
	if opts.UseBrowser {
		f.render = func(ctx context.Context, pageURL string) (string, error) {
			return WithBrowser(ctx, pageURL, opts.Timeout, logger)
		}
	}
	return f
}

// WithRenderer replaces the browser fallback, mainly for tests.
func (f *Fetcher) WithRenderer(render RenderFunc) *Fetcher {
	f.render = render
	return f
}

// Fetch downloads pageURL and extracts its main text. When the text is too short
// to be a real posting and a renderer is configured, the page is rendered again
// in a browser and the longer text wins.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*Page, error) {
	platform := DetectPlatform(pageURL)

	html, err := f.download(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	text, err := ExtractMainText(html, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	if err != nil {
		return nil, &Error{URL: pageURL, Message: "failed to extract text", Cause: err}
	}
	page := &Page{URL: pageURL, Platform: platform, HTML: html, Text: CleanText(text)}
	f.logger.Debugf("[fetch] %s (%s): %d chars over HTTP", pageURL, platform, len(page.Text))

	if f.render == nil || !ShouldUseBrowser(page.Text) {
		return page, nil
	}

	rendered, err := f.render(ctx, pageURL)
	if err != nil {
		// Keep the HTTP text; a thin page is still better than none.
		f.logger.Warnf("[fetch] browser fallback failed for %s: %v", pageURL, err)
		return page, nil
	}
	renderedText, err := ExtractMainText(rendered, PlatformContentSelectors(platform), PlatformNoiseSelectors(platform)...)
	if err == nil && len(CleanText(renderedText)) > len(page.Text) {
		page.HTML = rendered
		page.Text = CleanText(renderedText)
		page.Rendered = true
		f.logger.Debugf("[fetch] %s: %d chars after browser render", pageURL, len(page.Text))
	}
	return page, nil
}

func (f *Fetcher) download(ctx context.Context, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: pageURL, Message: "invalid URL", Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", &Error{URL: pageURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", f.opts.UserAgent)
	for key, value := range f.opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := f.http.Do(req)
	if err != nil {
		return "", &Error{URL: pageURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: pageURL, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &Error{
			URL:        pageURL,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	return string(body), nil
}

// ExtractMainText parses HTML and returns the text of the first element matching
// contentSelectors, after removing noiseSelectors. It falls back to <body>.
func ExtractMainText(html string, contentSelectors []string, noiseSelectors ...string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("nav, footer, header, script, style, noscript, svg, iframe, .cookie-banner, .popup").Remove()
	if len(noiseSelectors) > 0 {
		doc.Find(strings.Join(noiseSelectors, ", ")).Remove()
	}

	var main *goquery.Selection
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector); sel.Length() > 0 {
			main = sel.First()
			break
		}
	}
	if main == nil {
		main = doc.Find("body")
	}

	return main.Text(), nil
}
