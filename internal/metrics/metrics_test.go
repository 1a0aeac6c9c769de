package metrics

import (
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounters(t *testing.T) {
	m := New()

	m.FeedLoads.WithLabelValues("forYou", ResultOK).Inc()
	m.FeedLoads.WithLabelValues("forYou", ResultOK).Inc()
	m.SeedRuns.WithLabelValues("events", ResultSkip).Inc()
	m.FollowEvents.Inc()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FeedLoads.WithLabelValues("forYou", ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SeedRuns.WithLabelValues("events", ResultSkip)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FollowEvents))
}

func TestHandlerExposesCounters(t *testing.T) {
	m := New()
	m.FollowEvents.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "scenefeed_follow_events_total 1"))
}

func TestResult(t *testing.T) {
	assert.Equal(t, ResultOK, Result(nil))
	assert.Equal(t, ResultError, Result(errors.New("boom")))
}
