package digest

// DigestType says which digests a source may feed.
type DigestType string

const (
	Daily  DigestType = "daily"
	Weekly DigestType = "weekly"
	Both   DigestType = "both"
)

// Valid reports whether t is one of daily, weekly or both.
func (t DigestType) Valid() bool {
	return t == Daily || t == Weekly || t == Both
}

// TimeBudget bounds both digests.
type TimeBudget struct {
	DailyMinutes       int `yaml:"dailyMinutes" json:"dailyMinutes"`
	DailyCurrencyHours int `yaml:"dailyCurrencyHours" json:"dailyCurrencyHours"`
	WeeklyArticleCount int `yaml:"weeklyArticleCount" json:"weeklyArticleCount"`
	WeeklyCurrencyDays int `yaml:"weeklyCurrencyDays" json:"weeklyCurrencyDays"`
}

// Eligibility maps a source name to its configured digest type.
// Sources that are not listed feed neither digest.
type Eligibility map[string]DigestType

// Daily reports whether the source may appear in the daily digest.
func (e Eligibility) Daily(source string) bool {
	t := e[source]
	return t == Daily || t == Both
}

// Weekly reports whether the source may appear in the weekly digest.
func (e Eligibility) Weekly(source string) bool {
	t := e[source]
	return t == Weekly || t == Both
}
