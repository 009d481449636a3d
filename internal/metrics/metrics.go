package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics - Prometheus-метрики приложения
type Metrics struct {
	IncidentsCreated       prometheus.Counter
	IncidentStatusUpdates  prometheus.Counter
	AlertsIssued           prometheus.Counter
	AlertBroadcastFailures prometheus.Counter
	ResourcesOffered       prometheus.Counter
	ResourcesModerated     *prometheus.CounterVec
	ReportsGenerated       prometheus.Counter
	ReportFailures         prometheus.Counter
	AuditEntriesWritten    prometheus.Counter
	AuditWriteFailures     prometheus.Counter
}

// New создает метрики и регистрирует их в reg.
// В тестах передается отдельный prometheus.NewRegistry().
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		IncidentsCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "resilink_incidents_created_total",
			Help: "Total number of incidents registered",
		}),
		IncidentStatusUpdates: factory.NewCounter(prometheus.CounterOpts{
			Name: "resilink_incident_status_updates_total",
			Help: "Total number of applied incident status changes",
		}),
		AlertsIssued: factory.NewCounter(prometheus.CounterOpts{
			Name: "resilink_alerts_issued_total",
			Help: "Total number of alerts issued",
		}),
		AlertBroadcastFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "resilink_alert_broadcast_failures_total",
			Help: "Alerts that were stored but could not be queued for broadcast",
		}),
		ResourcesOffered: factory.NewCounter(prometheus.CounterOpts{
			Name: "resilink_resources_offered_total",
			Help: "Total number of community resources offered",
		}),
		ResourcesModerated: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "resilink_resources_moderated_total",
			Help: "Moderation decisions by resulting status",
		}, []string{"status"}),
		ReportsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "resilink_status_reports_generated_total",
			Help: "Total number of status reports generated",
		}),
		ReportFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "resilink_status_report_failures_total",
			Help: "Total number of failed status report generations",
		}),
		AuditEntriesWritten: factory.NewCounter(prometheus.CounterOpts{
			Name: "resilink_audit_entries_written_total",
			Help: "Audit log entries persisted",
		}),
		AuditWriteFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "resilink_audit_write_failures_total",
			Help: "Audit log entries lost because the store write failed",
		}),
	}
}
