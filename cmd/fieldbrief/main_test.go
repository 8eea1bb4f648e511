package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deusflow/fieldbrief/internal/metrics"
)

func TestHealthHandler(t *testing.T) {
	orig := metrics.Global
	t.Cleanup(func() { metrics.Global = orig })

	metrics.Global = metrics.New()
	rec := httptest.NewRecorder()
	healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])

	metrics.Global.SetError("feeds down")
	rec = httptest.NewRecorder()
	healthHandler(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsHandler(t *testing.T) {
	orig := metrics.Global
	t.Cleanup(func() { metrics.Global = orig })

	metrics.Global = metrics.New()
	metrics.Global.AddScored(3)

	rec := httptest.NewRecorder()
	metricsHandler(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["articles_scored"])
}

func setRunEnv(t *testing.T, dir string) {
	t.Helper()
	orig := metrics.Global
	t.Cleanup(func() { metrics.Global = orig })
	metrics.Global = metrics.New()

	for _, key := range []string{"SCHEDULE", "GEMINI_API_KEY", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID", "ENABLE_HTTP_MONITORING"} {
		t.Setenv(key, "")
	}
	t.Setenv("TIMEZONE", "UTC")
	t.Setenv("PREVIEW_COUNT", "0")
	t.Setenv("SOURCES_PATH", filepath.Join(dir, "sources.json"))
	t.Setenv("SETTINGS_PATH", filepath.Join(dir, "settings.json"))
	t.Setenv("INDUSTRIES_PATH", filepath.Join(dir, "industries.json"))
	t.Setenv("CLIENTS_PATH", filepath.Join(dir, "clients.json"))
	t.Setenv("OUTPUT_PATH", filepath.Join(dir, "out", "digest.json"))
	t.Setenv("PREVIOUS_DIGEST_PATH", "")
}

func TestRun_InvalidConfig(t *testing.T) {
	setRunEnv(t, t.TempDir())
	t.Setenv("TIMEZONE", "Not/AZone")

	assert.Equal(t, 1, run())
}

func TestRun_FailedRunReturnsOne(t *testing.T) {
	dir := t.TempDir()
	setRunEnv(t, dir)
	t.Setenv("ENABLE_HTTP_MONITORING", "true")
	t.Setenv("MONITORING_PORT", "0")

	assert.Equal(t, 1, run())
	assert.NoFileExists(t, filepath.Join(dir, "out", "digest.json"))
}

func TestRun_Succeeds(t *testing.T) {
	dir := t.TempDir()
	setRunEnv(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sources.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{
  "scoringWeights": {"fieldWeight": 0.3, "urgencyWeight": 0.2, "noveltyWeight": 0.15, "credibilityWeight": 0.2},
  "timeBudget": {"dailyMinutes": 20, "dailyCurrencyHours": 36, "weeklyArticleCount": 12, "weeklyCurrencyDays": 7}
}`), 0o644))

	assert.Equal(t, 0, run())
	assert.FileExists(t, filepath.Join(dir, "out", "digest.json"))
}
