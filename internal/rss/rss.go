package rss

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/deusflow/fieldbrief/internal/logger"
	"github.com/deusflow/fieldbrief/internal/sanitize"
)

const userAgent = "fieldbrief/1.0 (+https://github.com/deusflow/fieldbrief)"

// Feed is one source to fetch.
type Feed struct {
	Name string
	URL  string
}

// Item is a feed entry reduced to what the digest needs.
type Item struct {
	Title   string
	Link    string
	Snippet string
	// Published is nil when the feed carries no parseable date.
	Published *time.Time
}

// FetchResult is the outcome for one feed. Err is set on failure and Items
// is then empty; a failed feed never affects the others.
type FetchResult struct {
	Feed     Feed
	Items    []Item
	Err      error
	Duration time.Duration
}

type Options struct {
	Timeout       time.Duration // per feed
	Concurrency   int
	RatePerSecond float64 // 0 = unlimited
	Client        *http.Client
}

type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	concurrency int
	limiter     *rate.Limiter
}

func NewFetcher(opts Options) *Fetcher {
	f := &Fetcher{
		client:      opts.Client,
		timeout:     opts.Timeout,
		concurrency: opts.Concurrency,
	}
	if f.client == nil {
		f.client = &http.Client{}
	}
	if f.timeout <= 0 {
		f.timeout = 20 * time.Second
	}
	if f.concurrency <= 0 {
		f.concurrency = 8
	}
	if opts.RatePerSecond > 0 {
		f.limiter = rate.NewLimiter(rate.Limit(opts.RatePerSecond), 1)
	}
	return f
}

// FetchAll downloads every feed concurrently and returns one result per feed,
// in input order. It does not return an error: failures are reported per feed.
func (f *Fetcher) FetchAll(ctx context.Context, feeds []Feed) []FetchResult {
	results := make([]FetchResult, len(feeds))

	var g errgroup.Group
	g.SetLimit(f.concurrency)

	for i, feed := range feeds {
		i, feed := i, feed
		g.Go(func() error {
			results[i] = f.fetch(ctx, feed)
			return nil
		})
	}
	_ = g.Wait()

	ok := 0
	for _, r := range results {
		if r.Err == nil {
			ok++
		}
	}
	logger.Info("Processed RSS feeds", "ok", ok, "total", len(feeds))
	return results
}

func (f *Fetcher) fetch(ctx context.Context, feed Feed) FetchResult {
	start := time.Now()
	res := FetchResult{Feed: feed}

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			res.Err = fmt.Errorf("rate limit wait: %w", err)
			return res
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	fp := gofeed.NewParser()
	fp.Client = f.client
	fp.UserAgent = userAgent

	parsed, err := fp.ParseURLWithContext(feed.URL, fetchCtx)
	res.Duration = time.Since(start)
	if err != nil {
		res.Err = fmt.Errorf("parse %s: %w", feed.URL, err)
		logger.Warn("Error parsing RSS", "source", feed.Name, "url", feed.URL, "error", err)
		return res
	}

	res.Items = make([]Item, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		res.Items = append(res.Items, toItem(it))
	}
	logger.Debug("Loaded feed", "source", feed.Name, "items", len(res.Items), "duration", res.Duration)
	return res
}

func toItem(it *gofeed.Item) Item {
	snippet := sanitize.PlainText(it.Description)
	if snippet == "" {
		snippet = sanitize.PlainText(it.Content)
	}

	published := it.PublishedParsed
	if published == nil {
		published = it.UpdatedParsed
	}

	return Item{
		Title:     sanitize.PlainText(it.Title),
		Link:      it.Link,
		Snippet:   snippet,
		Published: published,
	}
}
