package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// CheckoutMetrics counts checkout outcomes by result and failure reason.
type CheckoutMetrics struct {
	Checkouts *prometheus.CounterVec
}

func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	checkouts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "checkout_service",
		Name:      "checkouts_total",
		Help:      "Total number of checkout attempts.",
	}, []string{"result", "reason"})

	reg.MustRegister(checkouts)
	return &CheckoutMetrics{Checkouts: checkouts}
}

func (m *CheckoutMetrics) Success() {
	m.Checkouts.WithLabelValues("success", "").Inc()
}

func (m *CheckoutMetrics) Failure(reason string) {
	m.Checkouts.WithLabelValues("failure", reason).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
