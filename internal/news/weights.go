package news

// ScoringWeights are the raw, non-negative component weights from settings.
type ScoringWeights struct {
	FieldWeight       float64 `yaml:"fieldWeight" json:"fieldWeight"`
	RegionalWeight    float64 `yaml:"regionalWeight" json:"regionalWeight"`
	RegionalEnabled   bool    `yaml:"regionalEnabled" json:"regionalEnabled"`
	UrgencyWeight     float64 `yaml:"urgencyWeight" json:"urgencyWeight"`
	NoveltyWeight     float64 `yaml:"noveltyWeight" json:"noveltyWeight"`
	CredibilityWeight float64 `yaml:"credibilityWeight" json:"credibilityWeight"`
}

// EffectiveWeights are the five weights actually multiplied into component scores.
type EffectiveWeights struct {
	Field       float64
	Regional    float64
	Urgency     float64
	Novelty     float64
	Credibility float64
}

// Sum adds the five effective weights.
func (w EffectiveWeights) Sum() float64 {
	return w.Field + w.Regional + w.Urgency + w.Novelty + w.Credibility
}

// NormalizeWeights scales the weights to sum to 1. A disabled regional weight
// counts as 0. When the raw sum is not positive the weights are used as given.
func NormalizeWeights(w ScoringWeights) EffectiveWeights {
	regional := 0.0
	if w.RegionalEnabled {
		regional = w.RegionalWeight
	}

	raw := EffectiveWeights{
		Field:       w.FieldWeight,
		Regional:    regional,
		Urgency:     w.UrgencyWeight,
		Novelty:     w.NoveltyWeight,
		Credibility: w.CredibilityWeight,
	}

	total := raw.Sum()
	if !(total > 0) {
		return raw
	}
	return EffectiveWeights{
		Field:       raw.Field / total,
		Regional:    raw.Regional / total,
		Urgency:     raw.Urgency / total,
		Novelty:     raw.Novelty / total,
		Credibility: raw.Credibility / total,
	}
}
