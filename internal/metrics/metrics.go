// Package metrics counts vocabulary operations and exports them for the node-exporter
// textfile collector.
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"modeldb-common/pkg/common"
)

// Outcome labels.
const (
	OutcomeOK          = "ok"
	OutcomeMismatch    = "value_type_mismatch"
	OutcomeConstraint  = "illegal_operator"
	OutcomePartOrder   = "part_order"
	OutcomePagination  = "invalid_pagination"
	OutcomeMalformed   = "malformed"
	OutcomeMissingKey  = "missing_key"
	OutcomeInvalidBlob = "invalid_blob"
	OutcomeError       = "error"
)

// Metrics registers its collectors on its own registry, not the global default.
type Metrics struct {
	Registry *prometheus.Registry

	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	RejectionsTotal   *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "modeldb_common",
				Name:      "operations_total",
				Help:      "Total number of vocabulary operations",
			},
			[]string{"operation", "outcome"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "modeldb_common",
				Name:      "operation_duration_seconds",
				Help:      "Duration of vocabulary operations in seconds",
				Buckets:   []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
			},
			[]string{"operation"},
		),
		RejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "modeldb_common",
				Name:      "rejections_total",
				Help:      "Inputs rejected by validation, by reason",
			},
			[]string{"operation", "reason"},
		),
	}
}

// ObserveOperation implements ports.Recorder.
func (m *Metrics) ObserveOperation(op string, d time.Duration, err error) {
	outcome := Outcome(err)
	m.OperationsTotal.WithLabelValues(op, outcome).Inc()
	m.OperationDuration.WithLabelValues(op).Observe(d.Seconds())
	if outcome != OutcomeOK && outcome != OutcomeError {
		m.RejectionsTotal.WithLabelValues(op, outcome).Inc()
	}
}

// Outcome classifies err into a bounded label value.
func Outcome(err error) string {
	var (
		mismatch   *common.MismatchError
		constraint *common.ConstraintError
		partOrder  *common.PartOrderError
	)
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &mismatch), errors.Is(err, common.ErrValueTypeMismatch):
		return OutcomeMismatch
	case errors.As(err, &constraint), errors.Is(err, common.ErrIllegalOperator):
		return OutcomeConstraint
	case errors.As(err, &partOrder), errors.Is(err, common.ErrPartOrder):
		return OutcomePartOrder
	case errors.Is(err, common.ErrInvalidPagination):
		return OutcomePagination
	case errors.Is(err, common.ErrMalformed):
		return OutcomeMalformed
	case errors.Is(err, common.ErrMissingKey):
		return OutcomeMissingKey
	case errors.Is(err, common.ErrInvalidBlob):
		return OutcomeInvalidBlob
	default:
		return OutcomeError
	}
}

// WriteTextfile writes every collected metric to path in the text exposition format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
