// Package service orchestrates vendor, document, and reminder management over
// the collection store. Every mutation reads the affected collection, applies
// the change in memory, persists the whole collection, and only then records
// the audit entry; a failed persist leaves nothing half-applied.
package service

import (
	"context"
	"log/slog"

	"vendortrack/internal/audit"
	"vendortrack/internal/tracker/metrics"
	"vendortrack/internal/tracker/models"
	"vendortrack/internal/tracker/store"
)

// Store is the persistence surface the service needs. *store.Collections
// satisfies it; tests may substitute a failing wrapper.
type Store interface {
	LoadAll(ctx context.Context) (*store.Snapshot, error)
	LoadOrganization(ctx context.Context) (*models.Organization, error)
	LoadVendors(ctx context.Context) ([]models.Vendor, error)
	SaveVendors(ctx context.Context, vendors []models.Vendor) error
	LoadDocuments(ctx context.Context) ([]models.Document, error)
	SaveDocuments(ctx context.Context, documents []models.Document) error
	LoadReminders(ctx context.Context) ([]models.Reminder, error)
	SaveReminders(ctx context.Context, reminders []models.Reminder) error
	LoadUsers(ctx context.Context) ([]models.User, error)
}

// AuditRecorder records one entry per completed user action. Recording is
// best-effort; implementations never fail the caller.
type AuditRecorder interface {
	Record(ctx context.Context, action audit.Action, resourceType, resourceID string, metadata map[string]string) audit.Entry
}

// TokenIssuer signs a session token for an authenticated user.
type TokenIssuer interface {
	Issue(user models.User) (string, error)
}

// Service orchestrates the tracker's collections.
type Service struct {
	store   Store
	logger  *slog.Logger
	audit   AuditRecorder
	metrics *metrics.Metrics
	tokens  TokenIssuer
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAudit(recorder AuditRecorder) Option {
	return func(s *Service) {
		s.audit = recorder
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTokenIssuer(issuer TokenIssuer) Option {
	return func(s *Service) {
		s.tokens = issuer
	}
}

// New constructs a Service.
func New(st Store, opts ...Option) *Service {
	s := &Service{store: st, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) recordAudit(ctx context.Context, action audit.Action, resourceType, resourceID string, metadata map[string]string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, action, resourceType, resourceID, metadata)
}
