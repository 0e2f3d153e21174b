package payment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var PaymentsConfirmedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "payments_confirmed_total",
		Help: "Total number of processed payment confirmations",
	},
	[]string{"outcome"},
)
