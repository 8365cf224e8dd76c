package assignment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var FallbackAssignmentsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "assignment_fallback_total",
		Help: "Total number of assignments that relaxed the cash-capacity filter",
	},
)

var UnassignedOrdersTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "assignment_unassigned_total",
		Help: "Total number of assignment requests that found no courier",
	},
)

var ExpiredOffersReleasedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "assignment_expired_offers_released_total",
		Help: "Total number of couriers freed because the offer window elapsed",
	},
)
