package news

import (
	"math"
	"strings"
)

const (
	DefaultCredibility = 0.7

	competitiveFactor  = 0.1
	architectureFactor = 0.05
	clientBoost        = 0.25

	wordsPerMinute    = 150
	minReadingMinutes = 1
	maxReadingMinutes = 10
)

// ScoringContext carries everything per-article scoring reads. It is
// assembled once per run and shared read-only across articles.
type ScoringContext struct {
	Weights      ScoringWeights
	RecentTitles TitleSet
	// Credibility maps source name to a trust score in [0,1].
	Credibility map[string]float64
	Industries  []IndustryRule
	Clients     []ClientRule
	CrossRefs   []CrossReferenceTopic
}

// IndustryMatch is the display form of a matched industry rule.
type IndustryMatch struct {
	Industry string
	Tier     Tier
}

// ClientMatch is the display form of a matched client rule.
type ClientMatch struct {
	Name string
}

// Breakdown records every component and bonus behind a relevance score.
type Breakdown struct {
	Field        float64
	Regional     float64
	Urgency      float64
	Novelty      float64
	Credibility  float64
	Weighted     float64
	Competitive  float64
	Architecture float64
	Priority     float64
	Industry     float64
	Client       float64
	CrossRef     float64
}

// Bonuses is the sum of the additive bonuses.
func (b Breakdown) Bonuses() float64 {
	return b.Competitive + b.Architecture + b.Priority + b.Industry + b.Client + b.CrossRef
}

// ScoredArticle is an article plus its derived scoring output. It is built
// fresh every run.
type ScoredArticle struct {
	Article
	RelevanceScore          float64
	EstimatedReadingMinutes int
	MatchedIndustry         *IndustryMatch
	MatchedClient           *ClientMatch
	CrossReferenceBoost     float64
	Breakdown               Breakdown
}

// Scorer computes relevance scores against a fixed context.
type Scorer struct {
	ctx     ScoringContext
	weights EffectiveWeights
}

// NewScorer normalizes the context weights once for the whole run.
func NewScorer(ctx ScoringContext) *Scorer {
	return &Scorer{ctx: ctx, weights: NormalizeWeights(ctx.Weights)}
}

// Weights returns the effective weights the scorer applies.
func (s *Scorer) Weights() EffectiveWeights {
	return s.weights
}

// Score computes the bounded relevance score of one article.
func (s *Scorer) Score(a Article) ScoredArticle {
	text := NormalizeLight(a.Title + " " + a.Summary)
	w := s.weights

	var b Breakdown
	b.Field = KeywordScore(text, FieldKeywords)
	if s.ctx.Weights.RegionalEnabled {
		b.Regional = KeywordScore(text, RegionalKeywords)
	}
	b.Urgency = UrgencyScore(text)
	b.Novelty = NoveltyScore(a.Title, s.ctx.RecentTitles)
	b.Credibility = s.credibility(a.SourceName)

	b.Weighted = b.Field*w.Field +
		b.Regional*w.Regional +
		b.Urgency*w.Urgency +
		b.Novelty*w.Novelty +
		b.Credibility*w.Credibility

	b.Competitive = KeywordScore(text, CompetitiveKeywords) * competitiveFactor
	b.Architecture = KeywordScore(text, ArchitectureKeywords) * architectureFactor
	b.Priority = PriorityBoost(a.Priority)

	out := ScoredArticle{Article: a}

	if rule, ok := DetectIndustry(text, s.ctx.Industries); ok {
		b.Industry = math.Max(0, rule.Boost)
		out.MatchedIndustry = &IndustryMatch{Industry: rule.Name, Tier: rule.Tier}
	}
	if rule, ok := DetectClient(text, s.ctx.Clients); ok {
		b.Client = clientBoost
		out.MatchedClient = &ClientMatch{Name: rule.Name}
	}
	b.CrossRef = CrossRefBoostForArticle(a.ID, s.ctx.CrossRefs)

	out.RelevanceScore = clamp01(b.Weighted + b.Bonuses())
	out.EstimatedReadingMinutes = EstimateReadingMinutes(a.Summary)
	out.CrossReferenceBoost = b.CrossRef
	out.Breakdown = b
	return out
}

func (s *Scorer) credibility(source string) float64 {
	c, ok := s.ctx.Credibility[source]
	if !ok {
		return DefaultCredibility
	}
	return clamp01(c)
}

// PriorityBoost maps source priority to a flat bonus: 1 -> 0.20, 2 -> 0.10.
func PriorityBoost(priority int) float64 {
	switch priority {
	case 1:
		return 0.20
	case 2:
		return 0.10
	default:
		return 0
	}
}

// EstimateReadingMinutes is floor(words/150)+1, clamped to [1,10].
func EstimateReadingMinutes(summary string) int {
	words := len(strings.Fields(summary))
	return min(maxReadingMinutes, max(minReadingMinutes, words/wordsPerMinute+1))
}

// ScorePool detects cross-references over the whole pool, then scores every
// article with them. The detection pass always completes first.
func ScorePool(pool []Article, ctx ScoringContext) ([]ScoredArticle, []CrossReferenceTopic) {
	ctx.CrossRefs = DetectCrossReferences(pool, TopicGroups)
	scorer := NewScorer(ctx)

	scored := make([]ScoredArticle, len(pool))
	for i, a := range pool {
		scored[i] = scorer.Score(a)
	}
	return scored, ctx.CrossRefs
}
