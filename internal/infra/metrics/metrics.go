// File: internal/infra/metrics/metrics.go
package metrics

import (
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	reminderCycles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_cycles_total",
			Help: "Reminder scheduler cycles by result (ok/skipped/error).",
		},
		[]string{"result"},
	)

	remindersDue = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reminders_due_total",
			Help: "Newly-due (voucher, threshold) pairs computed by cycles.",
		},
	)

	reminderDispatch = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reminder_dispatch_total",
			Help: "Per-channel dispatch outcomes (sent/skipped/failed).",
		},
		[]string{"channel", "outcome"},
	)

	checkInQueries = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "checkin_queries_total",
			Help: "Check-in eligibility queries served.",
		},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(
			reminderCycles, remindersDue, reminderDispatch, checkInQueries,
		)
	})
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func IncCycle(result string) {
	reminderCycles.WithLabelValues(norm(result)).Inc()
}

func AddDuePairs(n int) {
	remindersDue.Add(float64(n))
}

func IncDispatch(channel, outcome string) {
	reminderDispatch.WithLabelValues(norm(channel), norm(outcome)).Inc()
}

func IncCheckIn() {
	checkInQueries.Inc()
}
