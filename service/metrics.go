// Copyright 2024 JC-Lab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package service

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/golang/glog"
	"github.com/jc-lab/softtoken-aes/symmetric"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates functionality related to serving Prometheus metrics for the engine.
type Metrics struct {
	ServingURL *url.URL
}

var (
	OperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "operations_total",
			Help: "Total number of engine operations.",
		},
		[]string{"operation_type"},
	)

	FailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "failures_total",
			Help: "Total number of failed engine operations.",
		},
		[]string{"operation_type", "reason"},
	)

	CryptoOperationalLatencies = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "crypto_latencies",
			Help: "Latencies in milliseconds of engine crypto operations.",
			// In-process AES stays well under a millisecond for key sized inputs.
			Buckets: prometheus.ExponentialBuckets(0.005, 2, 16),
		},
		[]string{"operation_type"},
	)
)

func init() {
	prometheus.MustRegister(OperationsTotal)
	prometheus.MustRegister(FailuresTotal)
	prometheus.MustRegister(CryptoOperationalLatencies)
}

// Serve creates http server for hosting Prometheus metrics.
func (m *Metrics) Serve() chan error {
	errorChan := make(chan error)
	mux := http.NewServeMux()
	mux.Handle(fmt.Sprintf("/%s", m.ServingURL.EscapedPath()), promhttp.Handler())

	go func() {
		defer close(errorChan)
		glog.Infof("Registering Metrics listener on port %s", m.ServingURL.Port())
		errorChan <- http.ListenAndServe(m.ServingURL.Host, mux)
	}()

	return errorChan
}

func RecordCryptoOperation(operationType string, start time.Time) {
	CryptoOperationalLatencies.WithLabelValues(operationType).Observe(sinceInMilliseconds(start))
}

// RecordFailure counts err under its error kind.
func RecordFailure(operationType string, err error) {
	FailuresTotal.WithLabelValues(operationType, symmetric.Reason(err)).Inc()
}

func sinceInMilliseconds(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}
