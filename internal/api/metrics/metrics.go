// Package metrics defines all custom Prometheus metrics for the job-board
// API. It is the single source of truth for metric names, labels, and help
// strings. Collectors register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobboard"

// RegistrationsTotal counts successful account registrations.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// SavedJobsTotal counts saved-jobs list mutations.
// Label:
//   - action: "save" or "unsave"
var SavedJobsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saved_jobs_total",
		Help:      "Total number of saved-jobs list mutations, by action.",
	},
	[]string{"action"},
)

// SubscriptionEventsTotal counts email-subscription ledger events.
// Label:
//   - action: "subscribe" or "unsubscribe"
var SubscriptionEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "subscription_events_total",
		Help:      "Total number of email subscription ledger events, by action.",
	},
	[]string{"action"},
)

// ResumeUploadsTotal counts accepted resume uploads.
var ResumeUploadsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resume_uploads_total",
		Help:      "Total number of resume files accepted and stored.",
	},
)

// JobsFeedRequestsTotal counts requests served by the jobs-feed proxy.
var JobsFeedRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "jobs_feed_requests_total",
		Help:      "Total number of jobs-feed proxy requests served.",
	},
)
