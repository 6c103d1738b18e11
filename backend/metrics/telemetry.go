// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 Canonical Ltd.

/*
 *  Metrics package is used to expose the metrics of the console service.
 */

package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/omec-project/webconsole-ui/backend/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	backendRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webui_console_backend_requests_total",
		Help: "Requests sent by the console to the configuration backend",
	}, []string{"resource", "method", "code"})

	backendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "webui_console_backend_request_duration_seconds",
		Help:    "Latency of requests sent to the configuration backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"resource", "method"})

	consoleActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "webui_console_actions_total",
		Help: "Operator actions handled by the console",
	}, []string{"action", "result"})
)

// ObserveBackendRequest records one backend call. code is 0 when the
// request never produced a response.
func ObserveBackendRequest(resource, method string, code int, elapsed time.Duration) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	backendRequests.WithLabelValues(resource, method, label).Inc()
	backendDuration.WithLabelValues(resource, method).Observe(elapsed.Seconds())
}

// ObserveAction records the outcome of an operator action.
func ObserveAction(action string, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	consoleActions.WithLabelValues(action, result).Inc()
}

// InitMetrics initializes console metrics
func InitMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.InitLog.Errorf("could not open metrics port: %v", err)
	}
}
