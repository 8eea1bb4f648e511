package app

import (
	"log/slog"
	"time"

	"github.com/deusflow/fieldbrief/internal/config"
	"github.com/deusflow/fieldbrief/internal/metrics"
	"github.com/deusflow/fieldbrief/internal/news"
	"github.com/deusflow/fieldbrief/internal/rss"
)

// collect turns fetch results into articles. Failed feeds contribute nothing;
// items without a title or link are dropped; items without a date are
// stamped with fetchedAt.
func collect(results []rss.FetchResult, sources []config.Source, fetchedAt time.Time, m *metrics.Metrics, log *slog.Logger) []news.Article {
	byName := make(map[string]config.Source, len(sources))
	for _, s := range sources {
		byName[s.Name] = s
	}

	var articles []news.Article
	for _, r := range results {
		m.RecordFetch(r.Err == nil, len(r.Items))
		if r.Err != nil {
			log.Warn("Source skipped", "source", r.Feed.Name, "error", r.Err)
			continue
		}

		src := byName[r.Feed.Name]
		dropped := 0
		for _, it := range r.Items {
			if it.Title == "" || it.Link == "" {
				dropped++
				continue
			}
			published := fetchedAt
			if it.Published != nil {
				published = *it.Published
			}
			articles = append(articles, news.Article{
				ID:            news.ArticleID(it.Link),
				Title:         it.Title,
				Summary:       it.Snippet,
				URL:           it.Link,
				SourceName:    src.Name,
				Category:      src.Category,
				PublishedDate: published,
				Priority:      src.Priority,
			})
		}
		if dropped > 0 {
			m.AddDropped(dropped)
			log.Debug("Dropped items without title or link", "source", src.Name, "count", dropped)
		}
	}
	return articles
}
