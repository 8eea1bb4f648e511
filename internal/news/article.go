package news

import (
	"fmt"
	"hash/fnv"
	"time"
)

// Article is one deduplicated feed entry. It is never modified after ingestion.
type Article struct {
	ID            string
	Title         string
	Summary       string
	URL           string
	SourceName    string
	Category      string
	PublishedDate time.Time
	Priority      int
}

// ArticleID derives a stable identifier from the article URL (FNV-1a, 32 bit).
// The same URL maps to the same id across runs.
func ArticleID(url string) string {
	h := fnv.New32a()
	h.Write([]byte(url))
	return fmt.Sprintf("a_%x", h.Sum32())
}

// Dedup collapses articles sharing a URL. The last article seen for a URL wins,
// but it keeps the position of the first occurrence.
func Dedup(articles []Article) []Article {
	index := make(map[string]int, len(articles))
	out := make([]Article, 0, len(articles))

	for _, a := range articles {
		if i, dup := index[a.URL]; dup {
			out[i] = a
			continue
		}
		index[a.URL] = len(out)
		out = append(out, a)
	}
	return out
}
