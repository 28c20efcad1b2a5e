// Copyright (c) 2025, Xiaofeng Zu.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package generator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Build-script generation metrics
	generateDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "zmake_generate_duration_seconds",
			Help:    "Duration of build-script rendering in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"backend"},
	)
	generateErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zmake_generate_errors_total",
			Help: "Total number of failed build-script renderings",
		},
		[]string{"backend"},
	)

	// Plan content metrics
	actionsRendered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "zmake_actions_rendered_total",
			Help: "Total number of build actions rendered, by kind",
		},
		[]string{"backend", "kind"},
	)
)
