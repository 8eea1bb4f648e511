package digest

import (
	"sort"
	"time"

	"github.com/deusflow/fieldbrief/internal/news"
)

// MaxPerSource caps how many articles one source contributes to the weekly digest.
const MaxPerSource = 2

// SelectDaily keeps articles published within the last DailyCurrencyHours
// from daily-eligible sources, then fills the minutes budget first-fit:
// an article that would overflow is skipped and later, shorter ones are
// still considered.
func SelectDaily(pool []news.ScoredArticle, budget TimeBudget, elig Eligibility, now time.Time) []news.ScoredArticle {
	cutoff := now.Add(-time.Duration(budget.DailyCurrencyHours) * time.Hour)

	candidates := filter(pool, func(a news.ScoredArticle) bool {
		return elig.Daily(a.SourceName) && !a.PublishedDate.Before(cutoff)
	})
	sortByPriority(candidates)

	selected := make([]news.ScoredArticle, 0, len(candidates))
	minutes := 0
	for _, a := range candidates {
		if minutes+a.EstimatedReadingMinutes > budget.DailyMinutes {
			continue
		}
		minutes += a.EstimatedReadingMinutes
		selected = append(selected, a)
	}
	return selected
}

// SelectWeekly keeps articles published within the last WeeklyCurrencyDays
// from weekly-eligible sources and accepts them in order, at most
// MaxPerSource per source. It stops as soon as WeeklyArticleCount articles
// are selected.
func SelectWeekly(pool []news.ScoredArticle, budget TimeBudget, elig Eligibility, now time.Time) []news.ScoredArticle {
	cutoff := now.AddDate(0, 0, -budget.WeeklyCurrencyDays)

	candidates := filter(pool, func(a news.ScoredArticle) bool {
		return elig.Weekly(a.SourceName) && !a.PublishedDate.Before(cutoff)
	})
	sortByPriority(candidates)

	selected := make([]news.ScoredArticle, 0, max(0, budget.WeeklyArticleCount))
	perSource := make(map[string]int)
	for _, a := range candidates {
		if len(selected) >= budget.WeeklyArticleCount {
			break
		}
		if perSource[a.SourceName] >= MaxPerSource {
			continue
		}
		perSource[a.SourceName]++
		selected = append(selected, a)
	}
	return selected
}

// TotalMinutes sums estimated reading time.
func TotalMinutes(articles []news.ScoredArticle) int {
	total := 0
	for _, a := range articles {
		total += a.EstimatedReadingMinutes
	}
	return total
}

func filter(pool []news.ScoredArticle, keep func(news.ScoredArticle) bool) []news.ScoredArticle {
	out := make([]news.ScoredArticle, 0, len(pool))
	for _, a := range pool {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// sortByPriority orders by source priority ascending, then relevance descending.
func sortByPriority(articles []news.ScoredArticle) {
	sort.SliceStable(articles, func(i, j int) bool {
		if articles[i].Priority != articles[j].Priority {
			return articles[i].Priority < articles[j].Priority
		}
		return articles[i].RelevanceScore > articles[j].RelevanceScore
	})
}
