package digest

import (
	"math"
	"time"

	"github.com/deusflow/fieldbrief/internal/news"
)

// Payload is the persisted digest snapshot. Its JSON form is the contract
// with the web renderer.
type Payload struct {
	GeneratedAt     time.Time           `json:"generatedAt"`
	ScoringWeights  news.ScoringWeights `json:"scoringWeights"`
	TimeBudget      TimeBudget          `json:"timeBudget"`
	Totals          Totals              `json:"totals"`
	Daily           DailySection        `json:"daily"`
	Weekly          WeeklySection       `json:"weekly"`
	CrossReferences []CrossReference    `json:"crossReferences"`
	Briefing        string              `json:"briefing,omitempty"`
}

// Totals counts the deduplicated pool and both selections.
type Totals struct {
	All    int `json:"all"`
	Daily  int `json:"daily"`
	Weekly int `json:"weekly"`
}

// DailySection is the daily digest with its minute budget and spend.
type DailySection struct {
	MinutesBudget int       `json:"minutesBudget"`
	TotalMinutes  int       `json:"totalMinutes"`
	Articles      []Article `json:"articles"`
}

// WeeklySection is the weekly digest with its article count budget.
type WeeklySection struct {
	ArticleCountBudget int       `json:"articleCountBudget"`
	Articles           []Article `json:"articles"`
}

// CrossReference is the published form of a cross-source topic.
type CrossReference struct {
	Topic          string  `json:"topic"`
	SourceCount    int     `json:"sourceCount"`
	RelevanceBoost float64 `json:"relevanceBoost"`
}

// Article is the published form of a scored article. Source priority and the
// score breakdown are left out.
type Article struct {
	ID                      string           `json:"id"`
	Title                   string           `json:"title"`
	Summary                 string           `json:"summary"`
	URL                     string           `json:"url"`
	SourceName              string           `json:"sourceName"`
	Category                string           `json:"category"`
	PublishedDate           time.Time        `json:"publishedDate"`
	RelevanceScore          float64          `json:"relevanceScore"`
	EstimatedReadingMinutes int              `json:"estimatedReadingMinutes"`
	MatchedIndustry         *MatchedIndustry `json:"matchedIndustry"`
	MatchedClient           *MatchedClient   `json:"matchedClient"`
	CrossReferenceBoost     float64          `json:"crossReferenceBoost"`
}

// MatchedIndustry names the industry rule an article matched.
type MatchedIndustry struct {
	Industry string `json:"industry"`
	Tier     string `json:"tier"`
}

// MatchedClient names the client an article mentions.
type MatchedClient struct {
	Name string `json:"name"`
}

// Input is everything Build needs for one run.
type Input struct {
	GeneratedAt     time.Time
	Weights         news.ScoringWeights
	Budget          TimeBudget
	Scored          []news.ScoredArticle
	CrossRefs       []news.CrossReferenceTopic
	Eligibility     Eligibility
	SummaryMaxRunes int
}

// Build selects both digests from the scored pool and assembles the snapshot.
// GeneratedAt doubles as the selection clock.
func Build(in Input) Payload {
	daily := SelectDaily(in.Scored, in.Budget, in.Eligibility, in.GeneratedAt)
	weekly := SelectWeekly(in.Scored, in.Budget, in.Eligibility, in.GeneratedAt)

	refs := make([]CrossReference, 0, len(in.CrossRefs))
	for _, t := range in.CrossRefs {
		refs = append(refs, CrossReference{
			Topic:          t.Topic,
			SourceCount:    t.SourceCount,
			RelevanceBoost: t.RelevanceBoost,
		})
	}

	return Payload{
		GeneratedAt:    in.GeneratedAt.UTC(),
		ScoringWeights: in.Weights,
		TimeBudget:     in.Budget,
		Totals: Totals{
			All:    len(in.Scored),
			Daily:  len(daily),
			Weekly: len(weekly),
		},
		Daily: DailySection{
			MinutesBudget: in.Budget.DailyMinutes,
			TotalMinutes:  TotalMinutes(daily),
			Articles:      publish(daily, in.SummaryMaxRunes),
		},
		Weekly: WeeklySection{
			ArticleCountBudget: in.Budget.WeeklyArticleCount,
			Articles:           publish(weekly, in.SummaryMaxRunes),
		},
		CrossReferences: refs,
	}
}

// RecentTitles collects the titles of a previous snapshot's daily and weekly
// digests for novelty detection. A nil payload yields an empty set.
func RecentTitles(p *Payload) news.TitleSet {
	if p == nil {
		return news.NewTitleSet()
	}
	titles := make([]string, 0, len(p.Daily.Articles)+len(p.Weekly.Articles))
	for _, a := range p.Daily.Articles {
		titles = append(titles, a.Title)
	}
	for _, a := range p.Weekly.Articles {
		titles = append(titles, a.Title)
	}
	return news.NewTitleSet(titles...)
}

func publish(scored []news.ScoredArticle, summaryMax int) []Article {
	out := make([]Article, 0, len(scored))
	for _, s := range scored {
		a := Article{
			ID:                      s.ID,
			Title:                   s.Title,
			Summary:                 truncateRunes(s.Summary, summaryMax),
			URL:                     s.URL,
			SourceName:              s.SourceName,
			Category:                s.Category,
			PublishedDate:           s.PublishedDate.UTC().Truncate(time.Second),
			RelevanceScore:          round4(s.RelevanceScore),
			EstimatedReadingMinutes: s.EstimatedReadingMinutes,
			CrossReferenceBoost:     round4(s.CrossReferenceBoost),
		}
		if s.MatchedIndustry != nil {
			a.MatchedIndustry = &MatchedIndustry{
				Industry: s.MatchedIndustry.Industry,
				Tier:     string(s.MatchedIndustry.Tier),
			}
		}
		if s.MatchedClient != nil {
			a.MatchedClient = &MatchedClient{Name: s.MatchedClient.Name}
		}
		out = append(out, a)
	}
	return out
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func round4(x float64) float64 {
	return math.Round(x*1e4) / 1e4
}
