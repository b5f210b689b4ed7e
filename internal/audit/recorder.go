// Package audit appends action records to the persisted audit log. Recording
// is best-effort: a failed write is logged and never fails or rolls back the
// operation that triggered it.
package audit

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"vendortrack/pkg/requestcontext"
)

// Store persists the audit collection. The collection repository implements
// it; tests can swap an in-memory sink.
type Store interface {
	LoadAuditLog(ctx context.Context) ([]Entry, error)
	SaveAuditLog(ctx context.Context, entries []Entry) error
}

// SystemActor is recorded when no session is attached to the context.
const SystemActor = "System"

// Recorder builds and appends audit entries.
type Recorder struct {
	store  Store
	logger *slog.Logger
}

func NewRecorder(store Store, logger *slog.Logger) *Recorder {
	return &Recorder{store: store, logger: logger}
}

// Record appends an entry for the given action. The actor and timestamp come
// from the request context. Failures are surfaced through the logger only.
func (r *Recorder) Record(ctx context.Context, action Action, resourceType, resourceID string, metadata map[string]string) Entry {
	if metadata == nil {
		metadata = map[string]string{}
	}
	user := SystemActor
	if actor := requestcontext.ActorFrom(ctx); actor.Name != "" {
		user = actor.Name
	}
	entry := Entry{
		ID:           uuid.NewString(),
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   resourceID,
		Metadata:     metadata,
		Timestamp:    requestcontext.Now(ctx),
		User:         user,
	}

	entries, err := r.store.LoadAuditLog(ctx)
	if err != nil {
		r.logger.WarnContext(ctx, "audit log load failed, entry dropped",
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
			"error", err,
		)
		return entry
	}
	if err := r.store.SaveAuditLog(ctx, append(entries, entry)); err != nil {
		r.logger.WarnContext(ctx, "audit log write failed, entry dropped",
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
			"error", err,
		)
	}
	return entry
}

// List returns all entries sorted descending by timestamp. Ordering is a
// read-time concern; storage keeps arrival order.
func (r *Recorder) List(ctx context.Context) ([]Entry, error) {
	entries, err := r.store.LoadAuditLog(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
	return entries, nil
}
