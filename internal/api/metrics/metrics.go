// Package metrics defines and registers all custom Prometheus metrics
// for the ghost console. It is the single source of truth for metric
// names, labels, and help strings; collectors register with the default
// registry at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ghost"

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// WakePacketsTotal counts wake requests that passed authorization.
// Label:
//   - result: "sent", "send_error"
var WakePacketsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wake_packets_total",
		Help:      "Total number of magic packet dispatch attempts, by result.",
	},
	[]string{"result"},
)

// WakeForbiddenTotal counts wake requests rejected by the policy check.
var WakeForbiddenTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "wake_forbidden_total",
		Help:      "Total number of wake requests denied by authorization.",
	},
)

// ConfigSavesTotal counts rewrites of the persisted config document.
var ConfigSavesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "config_saves_total",
		Help:      "Total number of configuration document rewrites.",
	},
)
