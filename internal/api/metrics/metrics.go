// Package metrics defines and registers the custom Prometheus metrics of the
// project collaboration API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry through promauto when the
// package is first imported. HTTP request metrics come from echoprometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "projects"

// ── Authorization ─────────────────────────────────────────────────────────────

// PolicyDecisionsTotal counts role-policy verdicts.
// Labels:
//   - action: the policy action (e.g. "add_members", "update_role")
//   - verdict: "allow" or "deny"
var PolicyDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "policy_decisions_total",
		Help:      "Total number of role-policy decisions, by action and verdict.",
	},
	[]string{"action", "verdict"},
)

// ── Membership ledger ─────────────────────────────────────────────────────────

// MembershipMutationsTotal counts ledger mutations that reached storage.
// Labels:
//   - operation: "add_members" or "update_role"
//   - result: "ok", "noop", "not_found", "conflict" or "error"
var MembershipMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "membership_mutations_total",
		Help:      "Total number of membership ledger mutations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// MembersAddedTotal counts ledger entries appended, by role.
var MembersAddedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "members_added_total",
		Help:      "Total number of members appended to project ledgers, by role.",
	},
	[]string{"role"},
)

// ── Projects and tasks ────────────────────────────────────────────────────────

// ProjectsCreatedTotal counts newly created projects.
// Label:
//   - status: initial project status (e.g. "Ongoing")
var ProjectsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_created_total",
		Help:      "Total number of projects created, by initial status.",
	},
	[]string{"status"},
)

// ProjectsDeletedTotal counts deleted projects.
var ProjectsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "projects_deleted_total",
		Help:      "Total number of projects deleted.",
	},
)

// CascadeDeletedTasksTotal counts tasks removed because their project was deleted.
var CascadeDeletedTasksTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cascade_deleted_tasks_total",
		Help:      "Total number of tasks deleted by project deletion cascades.",
	},
)

// TasksCreatedTotal counts newly created tasks.
// Label:
//   - status: initial task status
var TasksCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_created_total",
		Help:      "Total number of tasks created, by initial status.",
	},
	[]string{"status"},
)

// ── Reports ───────────────────────────────────────────────────────────────────

// ReportDuration measures how long building a report takes.
// Labels:
//   - report: "project" or "user_progress"
//   - result: "ok" or "error"
var ReportDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Duration of report computation including storage reads.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"report", "result"},
)

// ── Name resolution ───────────────────────────────────────────────────────────

// NameCacheLookupsTotal counts display-name cache lookups per id.
// Label:
//   - result: "hit", "miss" or "error"
var NameCacheLookupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "name_cache_lookups_total",
		Help:      "Total number of display-name cache lookups, by result.",
	},
	[]string{"result"},
)
