package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/deusflow/fieldbrief/internal/digest"
	"github.com/deusflow/fieldbrief/internal/news"
)

var (
	// ErrMissingSettings means the settings file or one of its required blocks is absent.
	ErrMissingSettings = errors.New("scoring settings missing")
	// ErrInvalidSettings means the settings are present but unusable.
	ErrInvalidSettings = errors.New("scoring settings invalid")
)

// Source is one configured feed.
type Source struct {
	Name             string            `yaml:"name"`
	URL              string            `yaml:"url"`
	Category         string            `yaml:"category"`
	Priority         int               `yaml:"priority"`
	CredibilityScore *float64          `yaml:"credibilityScore"`
	DigestType       digest.DigestType `yaml:"digestType"`
	Enabled          bool              `yaml:"isEnabled"`
}

// Settings is the scoring policy. Both blocks are required.
type Settings struct {
	ScoringWeights news.ScoringWeights
	TimeBudget     digest.TimeBudget
}

// Policy is everything the engine needs from disk for one run.
type Policy struct {
	Sources    []Source
	Settings   Settings
	Industries []news.IndustryRule
	Clients    []news.ClientRule
}

// Enabled returns the sources with isEnabled set.
func (p *Policy) Enabled() []Source {
	out := make([]Source, 0, len(p.Sources))
	for _, s := range p.Sources {
		if s.Enabled {
			out = append(out, s)
		}
	}
	return out
}

// Credibility maps enabled source names to their configured credibility.
// Sources without a score are left out so the scorer default applies.
func (p *Policy) Credibility() map[string]float64 {
	out := make(map[string]float64)
	for _, s := range p.Enabled() {
		if s.CredibilityScore != nil {
			out[s.Name] = *s.CredibilityScore
		}
	}
	return out
}

// Eligibility maps enabled source names to their digest type.
func (p *Policy) Eligibility() digest.Eligibility {
	out := make(digest.Eligibility)
	for _, s := range p.Enabled() {
		out[s.Name] = s.DigestType
	}
	return out
}

// LoadPolicy reads the four policy files. Sources and settings are required;
// a missing industries or clients file yields an empty rule list.
func LoadPolicy(c *Config) (*Policy, error) {
	sources, err := LoadSources(c.SourcesPath)
	if err != nil {
		return nil, err
	}
	settings, err := LoadSettings(c.SettingsPath)
	if err != nil {
		return nil, err
	}

	var industries []news.IndustryRule
	if err := decodeOptional(c.IndustriesPath, &industries); err != nil {
		return nil, fmt.Errorf("industries %s: %w", c.IndustriesPath, err)
	}
	var clients []news.ClientRule
	if err := decodeOptional(c.ClientsPath, &clients); err != nil {
		return nil, fmt.Errorf("clients %s: %w", c.ClientsPath, err)
	}

	return &Policy{
		Sources:    sources,
		Settings:   *settings,
		Industries: industries,
		Clients:    clients,
	}, nil
}

// LoadSources reads the source list. JSON files are valid YAML.
// Every entry needs a name, a url, a priority of at least 1 and a digestType
// of daily, weekly or both; there are no defaults.
func LoadSources(path string) ([]Source, error) {
	var sources []Source
	if err := decodeFile(path, &sources); err != nil {
		return nil, fmt.Errorf("sources %s: %w", path, err)
	}
	for i, s := range sources {
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("sources %s: entry %d: %w", path, i, err)
		}
	}
	return sources, nil
}

// Validate checks the fields selection depends on.
func (s Source) Validate() error {
	if s.Name == "" || s.URL == "" {
		return errors.New("needs name and url")
	}
	if s.Priority < 1 {
		return fmt.Errorf("%s: priority must be 1 or greater, got %d", s.Name, s.Priority)
	}
	if !s.DigestType.Valid() {
		return fmt.Errorf("%s: digestType must be daily, weekly or both, got %q", s.Name, s.DigestType)
	}
	return nil
}

type settingsFile struct {
	ScoringWeights *news.ScoringWeights `yaml:"scoringWeights"`
	TimeBudget     *digest.TimeBudget   `yaml:"timeBudget"`
}

// LoadSettings reads and validates the scoring policy. Every failure wraps
// ErrMissingSettings or ErrInvalidSettings.
func LoadSettings(path string) (*Settings, error) {
	var raw settingsFile
	if err := decodeFile(path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSettings, path)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSettings, path, err)
	}
	if raw.ScoringWeights == nil {
		return nil, fmt.Errorf("%w: %s has no scoringWeights", ErrMissingSettings, path)
	}
	if raw.TimeBudget == nil {
		return nil, fmt.Errorf("%w: %s has no timeBudget", ErrMissingSettings, path)
	}

	s := &Settings{ScoringWeights: *raw.ScoringWeights, TimeBudget: *raw.TimeBudget}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidSettings, path, err)
	}
	return s, nil
}

func (s *Settings) Validate() error {
	w := s.ScoringWeights
	for name, v := range map[string]float64{
		"fieldWeight":       w.FieldWeight,
		"regionalWeight":    w.RegionalWeight,
		"urgencyWeight":     w.UrgencyWeight,
		"noveltyWeight":     w.NoveltyWeight,
		"credibilityWeight": w.CredibilityWeight,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative", name)
		}
	}

	b := s.TimeBudget
	if b.DailyMinutes <= 0 || b.DailyCurrencyHours <= 0 {
		return fmt.Errorf("daily budget and currency must be positive")
	}
	if b.WeeklyArticleCount <= 0 || b.WeeklyCurrencyDays <= 0 {
		return fmt.Errorf("weekly budget and currency must be positive")
	}
	return nil
}

func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func decodeOptional(path string, out any) error {
	if path == "" {
		return nil
	}
	err := decodeFile(path, out)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
