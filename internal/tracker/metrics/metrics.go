package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the tracker module.
// Tracks mutation counts per resource and read-path durations.
type Metrics struct {
	VendorsCreated     prometheus.Counter
	DocumentsUploaded  prometheus.Counter
	RemindersScheduled prometheus.Counter
	ExportsGenerated   prometheus.Counter
	LoginFailures      prometheus.Counter

	ListDocumentsDuration prometheus.Histogram
	ExportDuration        prometheus.Histogram
}

// New creates a new Metrics instance with all tracker module metrics registered.
func New() *Metrics {
	return &Metrics{
		VendorsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vendortrack_vendors_created_total",
			Help: "Total number of vendors created",
		}),
		DocumentsUploaded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vendortrack_documents_uploaded_total",
			Help: "Total number of documents uploaded",
		}),
		RemindersScheduled: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vendortrack_reminders_scheduled_total",
			Help: "Total number of reminders scheduled, automatic and manual",
		}),
		ExportsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vendortrack_exports_generated_total",
			Help: "Total number of CSV exports generated",
		}),
		LoginFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "vendortrack_login_failures_total",
			Help: "Total number of rejected login attempts",
		}),
		ListDocumentsDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vendortrack_list_documents_duration_seconds",
			Help:    "Duration of document listing with filters (dashboard hot path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		ExportDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "vendortrack_export_duration_seconds",
			Help:    "Duration of full CSV export generation",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementVendorsCreated records a successful vendor creation.
func (m *Metrics) IncrementVendorsCreated() {
	m.VendorsCreated.Inc()
}

// IncrementDocumentsUploaded records a successful document upload.
func (m *Metrics) IncrementDocumentsUploaded() {
	m.DocumentsUploaded.Inc()
}

// AddRemindersScheduled records n reminders persisted in one operation.
func (m *Metrics) AddRemindersScheduled(n int) {
	m.RemindersScheduled.Add(float64(n))
}

// IncrementExportsGenerated records a completed CSV export.
func (m *Metrics) IncrementExportsGenerated() {
	m.ExportsGenerated.Inc()
}

// IncrementLoginFailures records a rejected login attempt.
func (m *Metrics) IncrementLoginFailures() {
	m.LoginFailures.Inc()
}

// ObserveListDocuments records the duration of a filtered document listing.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveListDocuments(start time.Time) {
	m.ListDocumentsDuration.Observe(time.Since(start).Seconds())
}

// ObserveExport records the duration of a CSV export.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveExport(start time.Time) {
	m.ExportDuration.Observe(time.Since(start).Seconds())
}
