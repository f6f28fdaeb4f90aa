// Package metrics defines the Prometheus collectors for quotation activity.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultTrimmed = "trimmed"
	ResultFits    = "fits"
)

// Domain holds the collectors exported on /-/metrics. A nil *Domain is valid
// and records nothing.
type Domain struct {
	recommendations    *prometheus.CounterVec
	optimizations      *prometheus.CounterVec
	commits            *prometheus.CounterVec
	resolutionWarnings prometheus.Gauge
}

// NewDomain creates the collectors and registers them on reg. Collectors that
// are already registered, for example by a previous NewDomain call against
// the same registry, are reused.
func NewDomain(namespace string, reg prometheus.Registerer) (*Domain, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	d := &Domain{
		recommendations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "recommendations_total",
			Help:      "Recommendation requests by event type.",
		}, []string{"event_type"}),
		optimizations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "budget_optimizations_total",
			Help:      "Budget optimizations by outcome.",
		}, []string{"result"}),
		commits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quotation_commits_total",
			Help:      "Quotation edit commits by operation and outcome.",
		}, []string{"operation", "result"}),
		resolutionWarnings: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_resolution_warnings",
			Help:      "Rule fragments that resolved ambiguously or not at all.",
		}),
	}

	if err := register(reg, d.recommendations, func(c prometheus.Collector) {
		d.recommendations = c.(*prometheus.CounterVec)
	}); err != nil {
		return nil, err
	}

	if err := register(reg, d.optimizations, func(c prometheus.Collector) {
		d.optimizations = c.(*prometheus.CounterVec)
	}); err != nil {
		return nil, err
	}

	if err := register(reg, d.commits, func(c prometheus.Collector) {
		d.commits = c.(*prometheus.CounterVec)
	}); err != nil {
		return nil, err
	}

	if err := register(reg, d.resolutionWarnings, func(c prometheus.Collector) {
		d.resolutionWarnings = c.(prometheus.Gauge)
	}); err != nil {
		return nil, err
	}

	return d, nil
}

func register(reg prometheus.Registerer, c prometheus.Collector, reuse func(prometheus.Collector)) error {
	err := reg.Register(c)
	if err == nil {
		return nil
	}

	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		reuse(are.ExistingCollector)
		return nil
	}

	return fmt.Errorf("registering domain metric: %w", err)
}

// RecordRecommendation counts one recommendation request.
func (d *Domain) RecordRecommendation(eventType string) {
	if d == nil {
		return
	}

	d.recommendations.WithLabelValues(eventType).Inc()
}

// RecordOptimization counts one budget optimization.
func (d *Domain) RecordOptimization(trimmed bool) {
	if d == nil {
		return
	}

	result := ResultFits
	if trimmed {
		result = ResultTrimmed
	}

	d.optimizations.WithLabelValues(result).Inc()
}

// RecordCommit counts one quotation commit for operation.
func (d *Domain) RecordCommit(operation string, err error) {
	if d == nil {
		return
	}

	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}

	d.commits.WithLabelValues(operation, result).Inc()
}

// SetResolutionWarnings publishes the number of catalog resolution warnings.
func (d *Domain) SetResolutionWarnings(n int) {
	if d == nil {
		return
	}

	d.resolutionWarnings.Set(float64(n))
}
