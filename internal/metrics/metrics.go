package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// OrderMetrics counts checkout outcomes.
type OrderMetrics struct {
	OrdersConfirmed prometheus.Counter
	OrdersRejected  *prometheus.CounterVec
	StockRollbacks  prometheus.Counter
}

func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	factory := promauto.With(reg)
	return &OrderMetrics{
		OrdersConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ecommerce",
			Subsystem: "orders",
			Name:      "confirmed_total",
			Help:      "Total number of confirmed orders.",
		}),
		OrdersRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ecommerce",
			Subsystem: "orders",
			Name:      "rejected_total",
			Help:      "Total number of rejected checkout attempts.",
		}, []string{"reason"}),
		StockRollbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "ecommerce",
			Subsystem: "orders",
			Name:      "stock_rollbacks_total",
			Help:      "Total number of stock compensation runs after a mid-commit failure.",
		}),
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
