package metrics

import (
	"sync"
	"time"
)

type Metrics struct {
	mu sync.RWMutex

	// Counters
	RunsCompleted     int64
	RunsFailed        int64
	SourcesSucceeded  int64
	SourcesFailed     int64
	ItemsFetched      int64
	ItemsDropped      int64
	DuplicatesRemoved int64
	ArticlesScored    int64
	DailySelected     int64
	WeeklySelected    int64
	TelegramSent      int64

	// Timings
	LastProcessingTime    time.Duration
	AverageProcessingTime time.Duration
	TotalProcessingTime   time.Duration
	ProcessingCount       int64

	// Status
	LastRunTime   time.Time
	LastRunID     string
	LastErrorTime time.Time
	LastError     string
	IsHealthy     bool
}

// Global is shared by the run loop and the monitoring endpoints.
var Global = New()

func New() *Metrics {
	return &Metrics{IsHealthy: true}
}

// RecordFetch counts one source outcome and how many items it yielded.
func (m *Metrics) RecordFetch(ok bool, items int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ok {
		m.SourcesSucceeded++
	} else {
		m.SourcesFailed++
	}
	m.ItemsFetched += int64(items)
}

func (m *Metrics) AddDropped(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ItemsDropped += int64(n)
}

func (m *Metrics) AddDuplicates(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DuplicatesRemoved += int64(n)
}

func (m *Metrics) AddScored(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ArticlesScored += int64(n)
}

func (m *Metrics) AddSelected(daily, weekly int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DailySelected += int64(daily)
	m.WeeklySelected += int64(weekly)
}

func (m *Metrics) IncrementTelegramSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TelegramSent++
}

func (m *Metrics) RecordProcessingTime(duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.LastProcessingTime = duration
	m.TotalProcessingTime += duration
	m.ProcessingCount++

	if m.ProcessingCount > 0 {
		m.AverageProcessingTime = m.TotalProcessingTime / time.Duration(m.ProcessingCount)
	}
}

// SetLastRun marks a successful run.
func (m *Metrics) SetLastRun(runID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RunsCompleted++
	m.LastRunTime = time.Now()
	m.LastRunID = runID
	m.IsHealthy = true
}

func (m *Metrics) SetError(err string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RunsFailed++
	m.LastError = err
	m.LastErrorTime = time.Now()
	m.IsHealthy = false
}

func (m *Metrics) Healthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.IsHealthy
}

func (m *Metrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return map[string]interface{}{
		"runs_completed":             m.RunsCompleted,
		"runs_failed":                m.RunsFailed,
		"sources_succeeded":          m.SourcesSucceeded,
		"sources_failed":             m.SourcesFailed,
		"items_fetched":              m.ItemsFetched,
		"items_dropped":              m.ItemsDropped,
		"duplicates_removed":         m.DuplicatesRemoved,
		"articles_scored":            m.ArticlesScored,
		"daily_selected":             m.DailySelected,
		"weekly_selected":            m.WeeklySelected,
		"telegram_sent":              m.TelegramSent,
		"last_processing_time_ms":    m.LastProcessingTime.Milliseconds(),
		"average_processing_time_ms": m.AverageProcessingTime.Milliseconds(),
		"last_run_time":              m.LastRunTime.Format(time.RFC3339),
		"last_run_id":                m.LastRunID,
		"last_error_time":            m.LastErrorTime.Format(time.RFC3339),
		"last_error":                 m.LastError,
		"is_healthy":                 m.IsHealthy,
	}
}
