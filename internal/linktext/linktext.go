// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package linktext downloads the pages behind links found in an assignment
// description and extracts their readable text, so it can be supplied as
// external content to the draft synthesizer.
package linktext

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/assignment-engine/internal/httputil"
	"github.com/pdiddy/assignment-engine/pkg/types"
)

// DefaultMaxBytes caps a downloaded page when FetchConfig.MaxBytes is zero.
const DefaultMaxBytes = 2 << 20

const defaultConcurrency = 4

const maxRedirects = 10

// Page is the readable text of one fetched link.
type Page struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	Text  string `json:"text" yaml:"text"`
}

// BatchResult holds the outcome of fetching several links.
type BatchResult struct {
	Fetched int
	Failed  int
	Pages   []Page
}

// Total returns the number of links processed.
func (r BatchResult) Total() int {
	return r.Fetched + r.Failed
}

// Fetcher retrieves link text over HTTP.
type Fetcher struct {
	client *http.Client
	cfg    types.FetchConfig
}

// New returns a Fetcher using cfg. The LMS token, when set, is sent as a
// bearer credential only to https URLs on FetchConfig.LMSHost, including
// after redirects.
func New(cfg types.FetchConfig) *Fetcher {
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = DefaultMaxBytes
	}
	f := &Fetcher{cfg: cfg}
	f.client = &http.Client{Timeout: cfg.Timeout, CheckRedirect: f.checkRedirect}
	return f
}

// authorize sets or clears the bearer token on req depending on its target.
func (f *Fetcher) authorize(req *http.Request) {
	if f.trusted(req.URL) {
		req.Header.Set("Authorization", "Bearer "+f.cfg.LMSToken)
		return
	}
	req.Header.Del("Authorization")
}

func (f *Fetcher) trusted(u *url.URL) bool {
	return f.cfg.LMSToken != "" && f.cfg.LMSHost != "" &&
		u.Scheme == "https" && strings.EqualFold(u.Host, f.cfg.LMSHost)
}

func (f *Fetcher) checkRedirect(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("stopped after %d redirects", maxRedirects)
	}
	f.authorize(req)
	return nil
}

// Fetch downloads rawURL and returns its readable text. HTML pages go
// through readability; text/plain bodies are returned as-is.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Page, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Page{}, fmt.Errorf("parsing link %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Page{}, fmt.Errorf("unsupported link scheme %q in %s", u.Scheme, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("creating request: %w", err)
	}
	if f.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", f.cfg.UserAgent)
	}
	f.authorize(req)

	resp, err := httputil.DoWithRetry(ctx, f.client, req, f.cfg.MaxRetries)
	if err != nil {
		return Page{}, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Page{}, fmt.Errorf("fetching %s: HTTP %d", rawURL, resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, f.cfg.MaxBytes)
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if mediaType == "text/plain" {
		data, err := io.ReadAll(body)
		if err != nil {
			return Page{}, fmt.Errorf("reading %s: %w", rawURL, err)
		}
		return Page{URL: rawURL, Text: strings.TrimSpace(string(data))}, nil
	}

	article, err := readability.FromReader(body, u)
	if err != nil {
		return Page{}, fmt.Errorf("extracting text from %s: %w", rawURL, err)
	}
	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return Page{}, fmt.Errorf("no readable text at %s", rawURL)
	}
	return Page{URL: rawURL, Title: strings.TrimSpace(article.Title), Text: text}, nil
}

// FetchAll fetches links in parallel, up to FetchConfig.Concurrency at a
// time, then writes per-link status to w in input order. Individual failures
// are counted, not returned. Links not started before ctx is done are
// skipped.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string, w io.Writer) BatchResult {
	type outcome struct {
		page    Page
		err     error
		skipped bool
	}
	outcomes := make([]outcome, len(urls))

	var g errgroup.Group
	g.SetLimit(f.concurrency())
	for i, u := range urls {
		g.Go(func() error {
			if ctx.Err() != nil {
				outcomes[i].skipped = true
				return nil
			}
			outcomes[i].page, outcomes[i].err = f.Fetch(ctx, u)
			return nil
		})
	}
	g.Wait()

	var result BatchResult
	for i, o := range outcomes {
		switch {
		case o.skipped:
		case o.err != nil:
			fmt.Fprintf(w, "failed: %v\n", o.err)
			result.Failed++
		default:
			fmt.Fprintf(w, "fetched: %s (%d chars)\n", urls[i], len([]rune(o.page.Text)))
			result.Fetched++
			result.Pages = append(result.Pages, o.page)
		}
	}
	return result
}

func (f *Fetcher) concurrency() int {
	if f.cfg.Concurrency <= 0 {
		return defaultConcurrency
	}
	return f.cfg.Concurrency
}

// Combine joins pages into a single external-content block, one section
// per page headed by its source.
func Combine(pages []Page) string {
	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		var b strings.Builder
		fmt.Fprintf(&b, "Source: %s\n", p.URL)
		if p.Title != "" {
			fmt.Fprintf(&b, "Title: %s\n", p.Title)
		}
		fmt.Fprintf(&b, "\n%s", p.Text)
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n---\n\n")
}
