package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findMetric(t *testing.T, r *Registry, name string, labels map[string]string) *dto.Metric {
	t.Helper()
	families, err := r.Prometheus().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	next:
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue next
				}
			}
			return m
		}
	}
	t.Fatalf("metric %s %v not found", name, labels)
	return nil
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, DefaultRegistry(), DefaultRegistry())
}

func TestRecordHTTPRequest(t *testing.T) {
	r := NewRegistry()
	r.RecordHTTPRequest("GET", "/api/v1/catalog", "200", 20*time.Millisecond)
	r.RecordHTTPRequest("GET", "/api/v1/catalog", "200", 40*time.Millisecond)

	m := findMetric(t, r, "sentinel_http_requests_total", map[string]string{"route": "/api/v1/catalog"})
	assert.Equal(t, 2.0, m.GetCounter().GetValue())

	h := findMetric(t, r, "sentinel_http_request_duration_seconds", map[string]string{"status": "200"})
	assert.Equal(t, uint64(2), h.GetHistogram().GetSampleCount())
}

func TestRecordSummarizeAndInsight(t *testing.T) {
	r := NewRegistry()
	r.RecordSummarize("mock", "ok", time.Second)
	r.RecordSummarize("gemini", "unavailable", time.Second)
	r.RecordInsight("started")
	r.RecordClassification("focus")
	r.SessionsCreatedTotal.Inc()

	assert.Equal(t, 1.0, findMetric(t, r, "sentinel_summarize_calls_total", map[string]string{"provider": "gemini", "outcome": "unavailable"}).GetCounter().GetValue())
	assert.Equal(t, 1.0, findMetric(t, r, "sentinel_insight_requests_total", map[string]string{"outcome": "started"}).GetCounter().GetValue())
	assert.Equal(t, 1.0, findMetric(t, r, "sentinel_classifications_total", map[string]string{"regime": "focus"}).GetCounter().GetValue())
	assert.Equal(t, 1.0, findMetric(t, r, "sentinel_sessions_created_total", nil).GetCounter().GetValue())
}

func TestHandler(t *testing.T) {
	r := NewRegistry()
	r.RecordClassification("plan")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `sentinel_classifications_total{regime="plan"} 1`)
}
