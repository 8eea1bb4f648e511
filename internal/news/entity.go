package news

import "sort"

// Tier is an industry rule precedence class. tier1 is checked first.
type Tier string

const (
	Tier1 Tier = "tier1"
	Tier2 Tier = "tier2"
	Tier3 Tier = "tier3"
)

// Rank orders tiers; anything unrecognised ranks with tier3.
func (t Tier) Rank() int {
	switch t {
	case Tier1:
		return 1
	case Tier2:
		return 2
	default:
		return 3
	}
}

// IndustryRule boosts articles that mention one of its keywords.
type IndustryRule struct {
	Name     string   `yaml:"industry" json:"industry"`
	Tier     Tier     `yaml:"tier" json:"tier"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Boost    float64  `yaml:"boost" json:"boost"`
	Enabled  bool     `yaml:"isEnabled" json:"isEnabled"`
}

// ClientRule flags articles that mention a named client or one of its aliases.
type ClientRule struct {
	Name    string   `yaml:"name" json:"name"`
	Aliases []string `yaml:"aliases" json:"aliases"`
	Enabled bool     `yaml:"isEnabled" json:"isEnabled"`
}

// DetectIndustry scans enabled rules in tier order (stable within a tier) and
// returns the first rule with a keyword contained in text. The second result
// is false when nothing matches.
func DetectIndustry(text string, rules []IndustryRule) (IndustryRule, bool) {
	lower := NormalizeLight(text)

	enabled := make([]IndustryRule, 0, len(rules))
	for _, r := range rules {
		if r.Enabled {
			enabled = append(enabled, r)
		}
	}
	sort.SliceStable(enabled, func(i, j int) bool {
		return enabled[i].Tier.Rank() < enabled[j].Tier.Rank()
	})

	for _, r := range enabled {
		if containsAny(lower, r.Keywords) {
			return r, true
		}
	}
	return IndustryRule{}, false
}

// DetectClient scans enabled rules in the given order and returns the first
// one whose name or alias is contained in text.
func DetectClient(text string, rules []ClientRule) (ClientRule, bool) {
	lower := NormalizeLight(text)

	for _, r := range rules {
		if !r.Enabled {
			continue
		}
		terms := append([]string{r.Name}, r.Aliases...)
		if containsAny(lower, terms) {
			return r, true
		}
	}
	return ClientRule{}, false
}
