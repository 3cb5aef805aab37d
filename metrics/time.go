// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "near_batch"

// Time records how long the operations of a component take.
type Time struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
}

// NewTime registers the duration histogram and the call counter for the given
// component on the registerer.
func NewTime(reg prometheus.Registerer, component string) *Time {

	factory := promauto.With(reg)

	duration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: component,
		Name:      "duration_seconds",
		Help:      "duration of calls in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation"})

	total := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: component,
		Name:      "calls_total",
		Help:      "number of calls by result",
	}, []string{"operation", "result"})

	t := Time{
		duration: duration,
		total:    total,
	}

	return &t
}

// Duration starts timing the operation. The returned function stops the
// timer and counts the call with the result of the given error.
func (t *Time) Duration(operation string) func(err error) {
	start := time.Now()
	return func(err error) {
		t.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		t.total.WithLabelValues(operation, Result(err)).Inc()
	}
}
