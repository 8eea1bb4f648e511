package news

import (
	"strings"
	"unicode/utf8"
)

const (
	// governanceBonus and sovereigntyBonus are applied at most once each.
	governanceBonus  = 0.15
	sovereigntyBonus = 0.15
)

// KeywordScore returns a density score in [0,1]. Every keyword found in the
// text contributes len(keyword)/10; the sum is divided by half the size of the
// keyword list. An empty list scores 0.
func KeywordScore(text string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	lower := NormalizeLight(text)

	var weighted float64
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			weighted += float64(utf8.RuneCountInString(kw)) / 10.0
		}
	}

	maxPossible := float64(len(keywords)) * 0.5
	return clamp01(weighted / maxPossible)
}

// UrgencyScore is the urgency keyword score plus flat governance and
// sovereignty bonuses, clamped to 1.
func UrgencyScore(text string) float64 {
	lower := NormalizeLight(text)
	score := KeywordScore(lower, UrgencyKeywords)

	if containsAny(lower, GovernanceTerms) {
		score += governanceBonus
	}
	if containsAny(lower, SovereigntyTerms) {
		score += sovereigntyBonus
	}
	return clamp01(score)
}

// containsAny reports whether lowered text contains any of the terms.
// Terms are lowercased before matching; empty terms never match.
func containsAny(lower string, terms []string) bool {
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

func clamp01(x float64) float64 {
	if x != x || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
