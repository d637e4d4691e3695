// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/platform/metrics"
)

func TestRecorders(t *testing.T) {
	m := metrics.New()

	m.CacheLookup(metrics.CacheHit)
	m.CacheLookup(metrics.CacheHit)
	m.ImportRow(metrics.ImportCreated)
	m.ContentWrite("story", "create")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LanguageCache.WithLabelValues(metrics.CacheHit)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ImportRows.WithLabelValues(metrics.ImportCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContentWrites.WithLabelValues("story", "create")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.CacheLookup(metrics.CacheMiss)
		m.ImportRow(metrics.ImportSkipped)
		m.ContentWrite("verse", "delete")
	})
}

func TestHandler_ExposesNamespace(t *testing.T) {
	m := metrics.New()
	m.ContentWrite("product", "create")

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "bibble_content_writes_total")
}
