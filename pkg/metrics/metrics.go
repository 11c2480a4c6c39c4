// Package metrics registra as métricas Prometheus das operações de sincronização
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cafe_report"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
	OutcomeStale   = "stale"
)

var (
	gatewayOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gateway_operations_total",
		Help:      "Operações enviadas ao gateway de persistência, por entidade, operação e resultado.",
	}, []string{"entity", "operation", "outcome"})

	gatewayDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "gateway_operation_duration_seconds",
		Help:      "Duração das operações no gateway de persistência.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"entity", "operation"})

	collectionSize = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "collection_size",
		Help:      "Quantidade de registros no cache de cada entidade.",
	}, []string{"entity"})
)

func ObserveGatewayOperation(entity, operation, outcome string, started time.Time) {
	gatewayOperations.WithLabelValues(entity, operation, outcome).Inc()
	gatewayDuration.WithLabelValues(entity, operation).Observe(time.Since(started).Seconds())
}

func SetCollectionSize(entity string, size int) {
	collectionSize.WithLabelValues(entity).Set(float64(size))
}
