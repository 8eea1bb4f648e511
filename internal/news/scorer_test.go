package news

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietArticle() Article {
	return Article{
		ID:         ArticleID("https://x.example/quiet"),
		Title:      "Garden fog",
		Summary:    "Quiet morning lull",
		URL:        "https://x.example/quiet",
		SourceName: "X",
		Priority:   3,
	}
}

func TestScore_CredibilityOnly(t *testing.T) {
	// Novelty is zeroed: with no recent titles every title is novel (1.0),
	// so a weighted novelty term would always add to the score.
	ctx := ScoringContext{
		Weights: ScoringWeights{
			FieldWeight: 0.3, RegionalWeight: 0.15, RegionalEnabled: true,
			UrgencyWeight: 0.2, NoveltyWeight: 0, CredibilityWeight: 0.2,
		},
		Credibility: map[string]float64{"X": 0.9},
	}
	s := NewScorer(ctx)
	got := s.Score(quietArticle())

	assert.InDelta(t, 0.9*s.Weights().Credibility, got.RelevanceScore, 1e-9)
	assert.Equal(t, 0.0, got.Breakdown.Bonuses())
	assert.Nil(t, got.MatchedIndustry)
	assert.Nil(t, got.MatchedClient)
}

func TestScore_NovelTitleAddsNoveltyWeight(t *testing.T) {
	ctx := ScoringContext{
		Weights:     ScoringWeights{NoveltyWeight: 1, CredibilityWeight: 1},
		Credibility: map[string]float64{"X": 0.9},
	}
	got := NewScorer(ctx).Score(quietArticle())
	assert.InDelta(t, 0.5*0.9+0.5*1.0, got.RelevanceScore, 1e-9)
}

func TestScore_RepeatedTitleLowersScore(t *testing.T) {
	weights := ScoringWeights{FieldWeight: 0.3, UrgencyWeight: 0.2, NoveltyWeight: 0.15, CredibilityWeight: 0.2}
	a := quietArticle()

	novel := NewScorer(ScoringContext{Weights: weights}).Score(a)
	repeated := NewScorer(ScoringContext{
		Weights:      weights,
		RecentTitles: NewTitleSet(a.Title),
	}).Score(a)

	assert.Equal(t, NoveltyNovel, novel.Breakdown.Novelty)
	assert.Equal(t, NoveltyNearDuplicate, repeated.Breakdown.Novelty)
	assert.Less(t, repeated.RelevanceScore, novel.RelevanceScore)
}

func TestScore_DefaultCredibility(t *testing.T) {
	got := NewScorer(ScoringContext{Weights: ScoringWeights{CredibilityWeight: 1}}).Score(quietArticle())
	assert.InDelta(t, DefaultCredibility, got.RelevanceScore, 1e-9)
}

func TestScore_ClampedWithLargeBonuses(t *testing.T) {
	a := Article{
		ID:         "big",
		Title:      "Acme bank adopts agentic AI on OpenShift",
		Summary:    strings.Join(FieldKeywords, " "),
		SourceName: "X",
		Priority:   1,
	}
	ctx := ScoringContext{
		Weights:     ScoringWeights{FieldWeight: 1, CredibilityWeight: 1},
		Credibility: map[string]float64{"X": 3},
		Industries:  []IndustryRule{{Name: "Finance", Tier: Tier1, Keywords: []string{"bank"}, Boost: 5, Enabled: true}},
		Clients:     []ClientRule{{Name: "Acme", Enabled: true}},
	}
	got := NewScorer(ctx).Score(a)

	assert.Equal(t, 1.0, got.RelevanceScore)
	assert.Equal(t, 1.0, got.Breakdown.Credibility)
	require.NotNil(t, got.MatchedIndustry)
	assert.Equal(t, IndustryMatch{Industry: "Finance", Tier: Tier1}, *got.MatchedIndustry)
	require.NotNil(t, got.MatchedClient)
	assert.Equal(t, "Acme", got.MatchedClient.Name)
	assert.Equal(t, 0.25, got.Breakdown.Client)
	assert.Equal(t, 0.20, got.Breakdown.Priority)
}

func TestScore_NegativeIndustryBoostIgnored(t *testing.T) {
	ctx := ScoringContext{
		Industries: []IndustryRule{{Name: "Weather", Tier: Tier2, Keywords: []string{"fog"}, Boost: -1, Enabled: true}},
	}
	got := NewScorer(ctx).Score(quietArticle())
	require.NotNil(t, got.MatchedIndustry)
	assert.Equal(t, 0.0, got.Breakdown.Industry)
	assert.GreaterOrEqual(t, got.RelevanceScore, 0.0)
}

func TestPriorityBoost(t *testing.T) {
	assert.Equal(t, 0.20, PriorityBoost(1))
	assert.Equal(t, 0.10, PriorityBoost(2))
	assert.Equal(t, 0.0, PriorityBoost(3))
	assert.Equal(t, 0.0, PriorityBoost(0))
}

func TestEstimateReadingMinutes(t *testing.T) {
	words := func(n int) string { return strings.Repeat("word ", n) }

	assert.Equal(t, 1, EstimateReadingMinutes(""))
	assert.Equal(t, 1, EstimateReadingMinutes(words(149)))
	assert.Equal(t, 2, EstimateReadingMinutes(words(150)))
	assert.Equal(t, 10, EstimateReadingMinutes(words(5000)))
}

func TestScorePool_AppliesCrossReferences(t *testing.T) {
	pool := []Article{
		{ID: ArticleID("u1"), URL: "u1", SourceName: "A", Title: "Quantum advance"},
		{ID: ArticleID("u2"), URL: "u2", SourceName: "B", Title: "Quantum roadmap"},
		{ID: ArticleID("u3"), URL: "u3", SourceName: "B", Title: "Garden fog"},
	}

	scored, topics := ScorePool(pool, ScoringContext{Weights: ScoringWeights{CredibilityWeight: 1}})
	require.Len(t, scored, 3)
	require.Len(t, topics, 1)
	assert.Equal(t, "quantum", topics[0].Topic)

	assert.Equal(t, 0.15, scored[0].CrossReferenceBoost)
	assert.Equal(t, 0.15, scored[1].CrossReferenceBoost)
	assert.Equal(t, 0.0, scored[2].CrossReferenceBoost)
	assert.Greater(t, scored[0].RelevanceScore, scored[2].RelevanceScore)
}
