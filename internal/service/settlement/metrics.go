package settlement

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var NegativeMarginsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "settlement_negative_margin_total",
		Help: "Total number of settlements where the courier payout exceeded the delivery fee",
	},
)

var GuaranteeAppliedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "settlement_guarantee_applied_total",
		Help: "Total number of settlements topped up to the minimum guarantee",
	},
)
