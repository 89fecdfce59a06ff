package browser

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
)

// PageData is what a navigation yields: the rendered document plus basic
// metadata.
type PageData struct {
	Title           string
	MetaDescription string
	HTMLContent     string
	StatusCode      int
}

// Capturer owns one headless browser context per pipeline instance. It is
// not safe for concurrent use; each clone request gets its own Capturer and
// must release it on every exit path via Cleanup.
type Capturer struct {
	width  int
	height int

	mu          sync.Mutex
	allocCancel context.CancelFunc
	browserCtx  context.Context
	ctxCancel   context.CancelFunc
}

func NewCapturer(width, height int) *Capturer {
	if width <= 0 {
		width = 1920
	}
	if height <= 0 {
		height = 1080
	}
	return &Capturer{width: width, height: height}
}

// start lazily launches the browser on first use.
func (c *Capturer) start(ctx context.Context) context.Context {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.browserCtx != nil {
		return c.browserCtx
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(c.width, c.height),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, ctxCancel := chromedp.NewContext(allocCtx)
	c.allocCancel = allocCancel
	c.browserCtx = browserCtx
	c.ctxCancel = ctxCancel
	return browserCtx
}

// Navigate loads url and returns the rendered page. The timeout bounds the
// whole navigation including initial render.
func (c *Capturer) Navigate(ctx context.Context, url string, timeout time.Duration) (PageData, error) {
	browserCtx := c.start(ctx)
	tctx, cancel := context.WithTimeout(browserCtx, timeout)
	defer cancel()

	var data PageData
	chromedp.ListenTarget(tctx, func(ev any) {
		if resp, ok := ev.(*network.EventResponseReceived); ok && resp.Type == network.ResourceTypeDocument {
			data.StatusCode = int(resp.Response.Status)
		}
	})

	err := chromedp.Run(tctx,
		network.Enable(),
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		chromedp.Title(&data.Title),
		chromedp.Evaluate(`(document.querySelector('meta[name="description"]')||{}).content || ''`, &data.MetaDescription),
		chromedp.OuterHTML("html", &data.HTMLContent),
	)
	if err != nil {
		return PageData{}, fmt.Errorf("navigation to %s failed: %w", url, err)
	}
	log.Printf("Navigated to %s: status=%d htmlLen=%d", url, data.StatusCode, len(data.HTMLContent))
	return data, nil
}

// Screenshot captures a full-page screenshot into outputPath, creating
// parent directories as needed.
func (c *Capturer) Screenshot(ctx context.Context, outputPath string) (string, error) {
	c.mu.Lock()
	browserCtx := c.browserCtx
	c.mu.Unlock()
	if browserCtx == nil {
		return "", fmt.Errorf("screenshot requested before navigation")
	}

	var buf []byte
	if err := chromedp.Run(browserCtx, chromedp.FullScreenshot(&buf, 90)); err != nil {
		return "", fmt.Errorf("screenshot failed: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}
	if err := os.WriteFile(outputPath, buf, 0644); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	log.Printf("Screenshot saved: %s", outputPath)
	return outputPath, nil
}

// CaptureURL navigates to url and screenshots it in one shot. Used for the
// generated-site comparison capture.
func (c *Capturer) CaptureURL(ctx context.Context, url, outputPath string, timeout time.Duration) (string, error) {
	if _, err := c.Navigate(ctx, url, timeout); err != nil {
		return "", err
	}
	return c.Screenshot(ctx, outputPath)
}

// Cleanup releases the browser resources. It is idempotent and safe to call
// even if no resources were ever acquired.
func (c *Capturer) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ctxCancel != nil {
		c.ctxCancel()
		c.ctxCancel = nil
	}
	if c.allocCancel != nil {
		c.allocCancel()
		c.allocCancel = nil
	}
	c.browserCtx = nil
}
