package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	NameOperations = "operations_total"

	LabelEntity    = "entity"
	LabelOperation = "operation"
	LabelStatus    = "status"
)

const (
	EntityContact = "contact"
	EntityColour  = "colour"

	OperationList   = "list"
	OperationCreate = "create"
	OperationDelete = "delete"

	StatusSucceeded = "succeeded"
	StatusInvalid   = "invalid"
	StatusNotFound  = "not_found"
	StatusFailed    = "failed"
)

var Operations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name:      NameOperations,
		Help:      "Total record operations handled by the api",
		Namespace: Namespace,
	},
	[]string{LabelEntity, LabelOperation, LabelStatus},
)

// ObserveOperation increments the operations counter.
func ObserveOperation(entity, operation, status string) {
	Operations.With(prometheus.Labels{
		LabelEntity:    entity,
		LabelOperation: operation,
		LabelStatus:    status,
	}).Inc()
}
