/*
 * metrics.go, part of chemview.
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chemview_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	HttpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chemview_http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"path"})

	LookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chemview_pubchem_lookups_total",
		Help: "PubChem lookups by outcome (found, not_found, error)",
	}, []string{"outcome"})

	DerivationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chemview_structure_derivation_seconds",
		Help:    "Time spent deriving 3D structures from SMILES",
		Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	DerivationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chemview_structure_derivation_failures_total",
		Help: "Number of SMILES for which no 3D structure could be derived",
	})
)
