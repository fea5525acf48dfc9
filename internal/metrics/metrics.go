// Package metrics exposes Prometheus instrumentation for the perturbation
// engine. Counters are registered with the default registry via promauto;
// binaries that want them scraped serve promhttp (see cmd/perturb with
// -metrics-addr).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts perturbed sign queries.
	QueriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "perturb_queries_total",
		Help: "Total number of perturbed sign queries",
	})
	// QueriesEscalatedTotal counts queries not resolved by the single
	// perturbation variable fast path.
	QueriesEscalatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "perturb_queries_escalated_total",
		Help: "Queries that required more than one perturbation variable",
	})
	// EscalationRoundsTotal counts multivariate escalation rounds across all
	// queries.
	EscalationRoundsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "perturb_escalation_rounds_total",
		Help: "Total number of multivariate escalation rounds",
	})
	// PredicateEvaluationsTotal counts exact predicate evaluations.
	PredicateEvaluationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "perturb_predicate_evaluations_total",
		Help: "Total number of exact predicate evaluations",
	})
)
