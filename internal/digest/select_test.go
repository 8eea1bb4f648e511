package digest

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deusflow/fieldbrief/internal/news"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func scored(id, source string, priority int, relevance float64, minutes int, age time.Duration) news.ScoredArticle {
	return news.ScoredArticle{
		Article: news.Article{
			ID:            id,
			Title:         "title " + id,
			URL:           "https://example.com/" + id,
			SourceName:    source,
			Priority:      priority,
			PublishedDate: now.Add(-age),
		},
		RelevanceScore:          relevance,
		EstimatedReadingMinutes: minutes,
	}
}

func ids(articles []news.ScoredArticle) []string {
	out := make([]string, len(articles))
	for i, a := range articles {
		out[i] = a.ID
	}
	return out
}

func TestEligibility(t *testing.T) {
	e := Eligibility{"d": Daily, "w": Weekly, "b": Both}

	assert.True(t, e.Daily("d"))
	assert.False(t, e.Weekly("d"))
	assert.False(t, e.Daily("w"))
	assert.True(t, e.Weekly("w"))
	assert.True(t, e.Daily("b"))
	assert.True(t, e.Weekly("b"))
	assert.False(t, e.Daily("unknown"))
	assert.False(t, e.Weekly("unknown"))
}

func TestDigestType_Valid(t *testing.T) {
	assert.True(t, Daily.Valid())
	assert.True(t, Weekly.Valid())
	assert.True(t, Both.Valid())
	assert.False(t, DigestType("").Valid())
	assert.False(t, DigestType("monthly").Valid())
}

func TestSelectDaily_SortsByPriorityThenRelevance(t *testing.T) {
	pool := []news.ScoredArticle{
		scored("low-p2", "S", 2, 0.9, 1, time.Hour),
		scored("p1-weak", "S", 1, 0.3, 1, time.Hour),
		scored("p1-strong", "S", 1, 0.8, 1, time.Hour),
	}
	budget := TimeBudget{DailyMinutes: 60, DailyCurrencyHours: 24}

	got := SelectDaily(pool, budget, Eligibility{"S": Daily}, now)
	assert.Equal(t, []string{"p1-strong", "p1-weak", "low-p2"}, ids(got))
}

func TestSelectDaily_SkipsOverflowAndContinues(t *testing.T) {
	pool := []news.ScoredArticle{
		scored("a", "S", 1, 0.9, 6, time.Hour),
		scored("too-long", "S", 1, 0.8, 5, time.Hour),
		scored("fits", "S", 1, 0.7, 4, time.Hour),
	}
	budget := TimeBudget{DailyMinutes: 10, DailyCurrencyHours: 24}

	got := SelectDaily(pool, budget, Eligibility{"S": Both}, now)
	assert.Equal(t, []string{"a", "fits"}, ids(got))
	assert.Equal(t, 10, TotalMinutes(got))
}

func TestSelectDaily_NeverExceedsBudget(t *testing.T) {
	var pool []news.ScoredArticle
	for i := 0; i < 40; i++ {
		pool = append(pool, scored(fmt.Sprintf("a%d", i), "S", 1+i%3, float64(i%7)/7, 1+i%10, time.Hour))
	}
	for _, limit := range []int{0, 1, 7, 25, 60} {
		got := SelectDaily(pool, TimeBudget{DailyMinutes: limit, DailyCurrencyHours: 24}, Eligibility{"S": Daily}, now)
		assert.LessOrEqual(t, TotalMinutes(got), limit)
	}
}

func TestSelectDaily_RecencyAndEligibility(t *testing.T) {
	pool := []news.ScoredArticle{
		scored("fresh", "S", 1, 0.5, 1, 2*time.Hour),
		scored("edge", "S", 1, 0.5, 1, 24*time.Hour),
		scored("stale", "S", 1, 0.5, 1, 25*time.Hour),
		scored("weekly-only", "W", 1, 0.5, 1, time.Hour),
		scored("unknown", "U", 1, 0.5, 1, time.Hour),
	}
	budget := TimeBudget{DailyMinutes: 60, DailyCurrencyHours: 24}

	got := SelectDaily(pool, budget, Eligibility{"S": Daily, "W": Weekly}, now)
	assert.Equal(t, []string{"fresh", "edge"}, ids(got))
}

func TestSelectWeekly_PerSourceCap(t *testing.T) {
	pool := []news.ScoredArticle{
		scored("a1", "A", 1, 0.9, 1, time.Hour),
		scored("a2", "A", 1, 0.8, 1, time.Hour),
		scored("a3", "A", 1, 0.7, 1, time.Hour),
		scored("b1", "B", 1, 0.6, 1, time.Hour),
	}
	budget := TimeBudget{WeeklyArticleCount: 10, WeeklyCurrencyDays: 7}

	got := SelectWeekly(pool, budget, Eligibility{"A": Weekly, "B": Both}, now)
	assert.Equal(t, []string{"a1", "a2", "b1"}, ids(got))
}

func TestSelectWeekly_StopsAtCount(t *testing.T) {
	pool := []news.ScoredArticle{
		scored("a1", "A", 1, 0.9, 1, time.Hour),
		scored("b1", "B", 1, 0.8, 1, time.Hour),
		scored("c1", "C", 1, 0.7, 1, time.Hour),
	}
	budget := TimeBudget{WeeklyArticleCount: 2, WeeklyCurrencyDays: 7}

	got := SelectWeekly(pool, budget, Eligibility{"A": Weekly, "B": Weekly, "C": Weekly}, now)
	assert.Equal(t, []string{"a1", "b1"}, ids(got))
}

func TestSelectWeekly_RecencyWindow(t *testing.T) {
	pool := []news.ScoredArticle{
		scored("recent", "A", 1, 0.5, 1, 6*24*time.Hour),
		scored("old", "B", 1, 0.9, 1, 8*24*time.Hour),
	}
	budget := TimeBudget{WeeklyArticleCount: 5, WeeklyCurrencyDays: 7}

	got := SelectWeekly(pool, budget, Eligibility{"A": Weekly, "B": Weekly}, now)
	assert.Equal(t, []string{"recent"}, ids(got))
}

// Daily skips an article that does not fit and keeps looking; weekly stops
// outright once its count is reached. The two pipelines are deliberately
// left asymmetric and this test pins that behavior.
func TestSelectors_DailySkipsWeeklyStops(t *testing.T) {
	pool := []news.ScoredArticle{
		scored("big", "A", 1, 0.9, 9, time.Hour),
		scored("small1", "B", 1, 0.8, 1, time.Hour),
		scored("small2", "C", 1, 0.7, 1, time.Hour),
	}
	elig := Eligibility{"A": Both, "B": Both, "C": Both}

	daily := SelectDaily(pool, TimeBudget{DailyMinutes: 2, DailyCurrencyHours: 24}, elig, now)
	assert.Equal(t, []string{"small1", "small2"}, ids(daily))

	weekly := SelectWeekly(pool, TimeBudget{WeeklyArticleCount: 1, WeeklyCurrencyDays: 7}, elig, now)
	assert.Equal(t, []string{"big"}, ids(weekly))
}

func TestSelect_DoesNotReorderInput(t *testing.T) {
	pool := []news.ScoredArticle{
		scored("p2", "S", 2, 0.9, 1, time.Hour),
		scored("p1", "S", 1, 0.1, 1, time.Hour),
	}
	_ = SelectDaily(pool, TimeBudget{DailyMinutes: 10, DailyCurrencyHours: 24}, Eligibility{"S": Both}, now)
	require.Len(t, pool, 2)
	assert.Equal(t, "p2", pool[0].ID)
}
