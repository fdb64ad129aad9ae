package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// Renderer fetches pages through headless Chrome, for listings that
// assemble their rows with JavaScript instead of serving them inline.
type Renderer struct {
	UserAgent     string
	PageLoadDelay time.Duration
	Timeout       time.Duration
}

func (r *Renderer) FetchPage(ctx context.Context, target string) (string, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, chromedp.DefaultExecAllocatorOptions[:]...)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	tabCtx, tabCancel := context.WithTimeout(browserCtx, r.Timeout)
	defer tabCancel()

	var html string
	tasks := chromedp.Tasks{
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetUserAgentOverride(r.UserAgent).Do(ctx)
		}),
		chromedp.Navigate(target),
		chromedp.WaitReady("body", chromedp.ByQuery),
		// Give client-side scripts time to fill the table in.
		chromedp.Sleep(r.PageLoadDelay),
		chromedp.OuterHTML("html", &html),
	}

	if err := chromedp.Run(tabCtx, tasks); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return html, nil
}
