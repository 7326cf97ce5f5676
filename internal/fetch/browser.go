package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/kataras/golog"
)

// hydrationDelay gives client-rendered job boards time to fill in the
// description after the body is ready.
const hydrationDelay = 2 * time.Second

var chromeFlags = []chromedp.ExecAllocatorOption{
	chromedp.Flag("headless", true),
	chromedp.Flag("disable-gpu", true),
	chromedp.Flag("no-sandbox", true),
	chromedp.Flag("disable-dev-shm-usage", true),
}

// renderTasks navigates to pageURL and captures the hydrated document into html.
func renderTasks(pageURL string, html *string) chromedp.Tasks {
	return chromedp.Tasks{
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Sleep(hydrationDelay),
		chromedp.OuterHTML("html", html),
	}
}

// WithBrowser renders pageURL in headless Chrome and returns the resulting HTML.
// Chrome or Chromium must be installed on the host.
func WithBrowser(ctx context.Context, pageURL string, timeout time.Duration, logger *golog.Logger) (string, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:], chromeFlags...)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	runCtx, cancelRun := context.WithTimeout(tabCtx, timeout)
	defer cancelRun()

	start := time.Now()
	logger.Debugf("[browser] rendering %s", pageURL)

	var html string
	if err := chromedp.Run(runCtx, renderTasks(pageURL, &html)); err != nil {
		return "", fmt.Errorf("render %s in browser: %w", pageURL, err)
	}

	logger.Debugf("[browser] %s rendered in %s (%d bytes)", pageURL, time.Since(start).Round(time.Millisecond), len(html))
	return html, nil
}
