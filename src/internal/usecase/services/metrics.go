package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var transfersTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "wallet_backend",
		Name:      "transfers_total",
		Help:      "Transfer orchestrator outcomes: created, reused, rejected or failed.",
	},
	[]string{"outcome"},
)

const (
	outcomeCreated  = "created"
	outcomeReused   = "reused"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)
