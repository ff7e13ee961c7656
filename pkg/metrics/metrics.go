// Package metrics exposes Prometheus collectors for form processing.
//
// Metrics:
//   - <ns>_validations_total{form,result}: validations by outcome ("valid", "invalid")
//   - <ns>_field_errors_total{form,field}: fields that failed validation
//   - <ns>_validation_duration_seconds{form}: time spent in SetData plus Validate
//   - <ns>_configuration_errors_total{form}: unresolved actions and other declaration faults
//   - <ns>_catalog_reloads_total{result}: declaration reloads ("success", "failure")
//
// All methods are safe on a nil *Metrics, so callers can leave metrics out.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "formkit"

// Metrics holds the form processing collectors.
type Metrics struct {
	validations  *prometheus.CounterVec
	fieldErrors  *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	configErrors *prometheus.CounterVec
	reloads      *prometheus.CounterVec
}

// New creates the collectors and registers them with reg under namespace
// (DefaultNamespace when empty).
func New(reg prometheus.Registerer, namespace string) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	m := &Metrics{
		validations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "validations_total",
				Help:      "Total number of form validations by result",
			},
			[]string{"form", "result"},
		),
		fieldErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "field_errors_total",
				Help:      "Total number of fields that failed validation",
			},
			[]string{"form", "field"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "validation_duration_seconds",
				Help:      "Duration of filtering and validation in seconds",
				// 10µs to ~80ms
				Buckets: prometheus.ExponentialBuckets(0.00001, 2, 14),
			},
			[]string{"form"},
		),
		configErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "configuration_errors_total",
				Help:      "Total number of form configuration errors",
			},
			[]string{"form"},
		),
		reloads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "catalog_reloads_total",
				Help:      "Total number of form declaration reloads by result",
			},
			[]string{"result"},
		),
	}

	reg.MustRegister(m.validations, m.fieldErrors, m.duration, m.configErrors, m.reloads)
	return m
}

// ObserveValidation records one validation of form. errorFields lists the
// fields that failed, empty when the data was valid.
func (m *Metrics) ObserveValidation(form string, errorFields []string, d time.Duration) {
	if m == nil {
		return
	}
	result := "valid"
	if len(errorFields) > 0 {
		result = "invalid"
	}
	m.validations.WithLabelValues(form, result).Inc()
	m.duration.WithLabelValues(form).Observe(d.Seconds())
	for _, field := range errorFields {
		m.fieldErrors.WithLabelValues(form, field).Inc()
	}
}

// ConfigurationError records a declaration fault of form.
func (m *Metrics) ConfigurationError(form string) {
	if m == nil {
		return
	}
	m.configErrors.WithLabelValues(form).Inc()
}

// CatalogReload records a declaration reload outcome.
func (m *Metrics) CatalogReload(err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.reloads.WithLabelValues(result).Inc()
}
