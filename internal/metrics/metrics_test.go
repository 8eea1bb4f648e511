package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(ok bool) {
			defer wg.Done()
			m.RecordFetch(ok, 3)
		}(i%2 == 0)
	}
	wg.Wait()

	m.AddDropped(2)
	m.AddDuplicates(1)
	m.AddScored(25)
	m.AddSelected(4, 6)

	stats := m.GetStats()
	assert.Equal(t, int64(5), stats["sources_succeeded"])
	assert.Equal(t, int64(5), stats["sources_failed"])
	assert.Equal(t, int64(30), stats["items_fetched"])
	assert.Equal(t, int64(2), stats["items_dropped"])
	assert.Equal(t, int64(1), stats["duplicates_removed"])
	assert.Equal(t, int64(25), stats["articles_scored"])
	assert.Equal(t, int64(4), stats["daily_selected"])
	assert.Equal(t, int64(6), stats["weekly_selected"])
}

func TestMetrics_Health(t *testing.T) {
	m := New()
	assert.True(t, m.Healthy())

	m.SetError("boom")
	assert.False(t, m.Healthy())
	assert.Equal(t, "boom", m.GetStats()["last_error"])

	m.SetLastRun("run-1")
	assert.True(t, m.Healthy())
	assert.Equal(t, "run-1", m.GetStats()["last_run_id"])
	assert.Equal(t, int64(1), m.GetStats()["runs_failed"])
}

func TestMetrics_ProcessingTime(t *testing.T) {
	m := New()
	m.RecordProcessingTime(100 * time.Millisecond)
	m.RecordProcessingTime(300 * time.Millisecond)
	assert.Equal(t, int64(200), m.GetStats()["average_processing_time_ms"])
}
