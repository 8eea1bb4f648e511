package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/deusflow/fieldbrief/internal/config"
	"github.com/deusflow/fieldbrief/internal/digest"
	"github.com/deusflow/fieldbrief/internal/gemini"
	"github.com/deusflow/fieldbrief/internal/logger"
	"github.com/deusflow/fieldbrief/internal/metrics"
	"github.com/deusflow/fieldbrief/internal/news"
	"github.com/deusflow/fieldbrief/internal/preview"
	"github.com/deusflow/fieldbrief/internal/retry"
	"github.com/deusflow/fieldbrief/internal/rss"
	"github.com/deusflow/fieldbrief/internal/scheduler"
	"github.com/deusflow/fieldbrief/internal/storage"
	"github.com/deusflow/fieldbrief/internal/telegram"
)

const jobTimeout = 30 * time.Minute

// Fetcher downloads feeds; one result per feed, failures included.
type Fetcher interface {
	FetchAll(ctx context.Context, feeds []rss.Feed) []rss.FetchResult
}

// Briefer writes a short prose briefing of the daily articles.
type Briefer interface {
	Brief(ctx context.Context, articles []digest.Article) (string, error)
}

// Publisher announces a finished digest.
type Publisher interface {
	PublishDigest(ctx context.Context, p digest.Payload) error
}

var (
	_ Fetcher   = (*rss.Fetcher)(nil)
	_ Briefer   = (*gemini.Client)(nil)
	_ Publisher = (*telegram.Publisher)(nil)
)

// Deps are the collaborators of a run. Briefer and Publisher may be nil.
type Deps struct {
	Fetcher   Fetcher
	Briefer   Briefer
	Publisher Publisher
	Metrics   *metrics.Metrics
	Preview   io.Writer
	Now       func() time.Time
}

type App struct {
	cfg      *config.Config
	deps     Deps
	output   *storage.SnapshotStore
	previous *storage.SnapshotStore
}

func New(cfg *config.Config, deps Deps) *App {
	if deps.Metrics == nil {
		deps.Metrics = metrics.Global
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Preview == nil {
		deps.Preview = os.Stdout
	}
	return &App{
		cfg:      cfg,
		deps:     deps,
		output:   storage.NewSnapshotStore(cfg.OutputPath),
		previous: storage.NewSnapshotStore(cfg.PreviousDigestPath),
	}
}

// NewFromConfig wires the production collaborators. The returned cleanup
// releases the Gemini client when one was created.
func NewFromConfig(ctx context.Context, cfg *config.Config) (*App, func(), error) {
	deps := Deps{
		Fetcher: rss.NewFetcher(rss.Options{
			Timeout:       cfg.FetchTimeout,
			Concurrency:   cfg.FetchConcurrency,
			RatePerSecond: cfg.FetchRatePerSecond,
		}),
	}
	cleanup := func() {}

	if cfg.GeminiEnabled() {
		client, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, nil, err
		}
		deps.Briefer = client
		cleanup = client.Close
	}
	if cfg.TelegramEnabled() {
		deps.Publisher = telegram.NewPublisher(cfg.TelegramToken, cfg.TelegramChatID,
			telegram.WithRetry(retry.RetryConfig{
				MaxAttempts: cfg.RetryAttempts,
				Delay:       cfg.RetryDelay,
				Backoff:     true,
			}))
	}
	return New(cfg, deps), cleanup, nil
}

// Run executes once, or on cfg.Schedule until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a.cfg.Schedule == "" {
		_, err := a.RunOnce(ctx)
		return err
	}

	s, err := scheduler.New(ctx, a.cfg.Timezone, jobTimeout)
	if err != nil {
		return err
	}
	if err := s.AddJob("digest", a.cfg.Schedule, func(ctx context.Context) error {
		_, err := a.RunOnce(ctx)
		return err
	}); err != nil {
		return err
	}

	s.Start()
	if next, ok := s.NextRun("digest"); ok {
		logger.Info("Waiting for next scheduled run", "next", next)
	}
	<-ctx.Done()
	<-s.Stop().Done()
	return nil
}

// RunOnce fetches, scores, selects and writes one digest snapshot.
func (a *App) RunOnce(ctx context.Context) (*digest.Payload, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := logger.With("run_id", runID)
	m := a.deps.Metrics

	payload, err := a.runOnce(ctx, runID)
	if err != nil {
		m.SetError(err.Error())
		log.Error("Digest run failed", "error", err)
		return nil, err
	}

	m.RecordProcessingTime(time.Since(start))
	m.SetLastRun(runID)
	log.Info("Digest run completed", "duration", time.Since(start),
		"daily", payload.Totals.Daily, "weekly", payload.Totals.Weekly)
	return payload, nil
}

func (a *App) runOnce(ctx context.Context, runID string) (*digest.Payload, error) {
	log := logger.With("run_id", runID)
	m := a.deps.Metrics
	now := a.deps.Now()

	policy, err := config.LoadPolicy(a.cfg)
	if err != nil {
		return nil, fmt.Errorf("load policy: %w", err)
	}

	prev, err := a.previous.Load()
	if err != nil {
		log.Warn("Previous digest unreadable, novelty memory empty", "path", a.previous.Path(), "error", err)
	}
	recent := digest.RecentTitles(prev)

	sources := policy.Enabled()
	feeds := make([]rss.Feed, len(sources))
	for i, s := range sources {
		feeds[i] = rss.Feed{Name: s.Name, URL: s.URL}
	}
	log.Info("Fetching feeds", "sources", len(feeds), "recent_titles", len(recent))
	results := a.deps.Fetcher.FetchAll(ctx, feeds)

	raw := collect(results, sources, now, m, log)
	pool := news.Dedup(raw)
	m.AddDuplicates(len(raw) - len(pool))

	scored, topics := news.ScorePool(pool, news.ScoringContext{
		Weights:      policy.Settings.ScoringWeights,
		RecentTitles: recent,
		Credibility:  policy.Credibility(),
		Industries:   policy.Industries,
		Clients:      policy.Clients,
	})
	m.AddScored(len(scored))

	payload := digest.Build(digest.Input{
		GeneratedAt:     now,
		Weights:         policy.Settings.ScoringWeights,
		Budget:          policy.Settings.TimeBudget,
		Scored:          scored,
		CrossRefs:       topics,
		Eligibility:     policy.Eligibility(),
		SummaryMaxRunes: a.cfg.SummaryMaxRunes,
	})
	m.AddSelected(payload.Totals.Daily, payload.Totals.Weekly)

	if a.deps.Briefer != nil && len(payload.Daily.Articles) > 0 {
		briefing, err := a.deps.Briefer.Brief(ctx, payload.Daily.Articles)
		if err != nil {
			log.Warn("Briefing skipped", "error", err)
		} else {
			payload.Briefing = briefing
		}
	}

	if err := a.output.Save(payload); err != nil {
		return nil, fmt.Errorf("save digest: %w", err)
	}
	log.Info("Wrote digest", "path", a.output.Path(), "articles", len(pool), "topics", len(topics))

	if a.cfg.PreviewCount > 0 {
		if err := preview.Print(a.deps.Preview, payload, a.cfg.PreviewCount); err != nil {
			log.Debug("Preview failed", "error", err)
		}
	}

	if a.deps.Publisher != nil && len(payload.Daily.Articles) > 0 {
		if err := a.deps.Publisher.PublishDigest(ctx, payload); err != nil {
			log.Warn("Telegram publication failed", "error", err)
		} else {
			m.IncrementTelegramSent()
		}
	}

	return &payload, nil
}
