package application

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var AssignmentsResolvedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "assignments_resolved_total",
		Help: "Total number of tours assigned to a winning driver",
	},
)
