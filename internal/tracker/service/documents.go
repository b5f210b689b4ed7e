package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"vendortrack/internal/audit"
	"vendortrack/internal/tracker/models"
	"vendortrack/internal/tracker/schedule"
	"vendortrack/internal/tracker/views"
	dErrors "vendortrack/pkg/domainerrors"
	"vendortrack/pkg/requestcontext"
)

// ErrRemindersNotScheduled reports that a document was persisted but its
// reminder batch was not. The document exists; the caller must surface the
// missing reminders rather than treat the creation as fully successful.
var ErrRemindersNotScheduled = dErrors.New(dErrors.CodeInternal, "document saved but reminders were not scheduled")

// Stats returns the dashboard headline numbers.
func (s *Service) Stats(ctx context.Context) (views.Stats, error) {
	snap, err := s.store.LoadAll(ctx)
	if err != nil {
		return views.Stats{}, err
	}
	return views.ComputeStats(snap.Vendors, snap.Documents, requestcontext.Now(ctx)), nil
}

// ListDocuments returns the documents matching a free-text query and a status
// filter, in stored order.
func (s *Service) ListDocuments(ctx context.Context, query, statusFilter string) ([]models.Document, error) {
	start := time.Now()
	snap, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	docs := views.FilterDocuments(snap.Documents, snap.Vendors, query, statusFilter, requestcontext.Now(ctx))
	if s.metrics != nil {
		s.metrics.ObserveListDocuments(start)
	}
	return docs, nil
}

// CriticalDocuments returns the attention list: documents due within 30 days,
// most urgent first, capped at ten.
func (s *Service) CriticalDocuments(ctx context.Context) ([]views.CriticalDocument, error) {
	snap, err := s.store.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	return views.CriticalDocuments(snap.Documents, snap.Vendors, requestcontext.Now(ctx)), nil
}

// CreateDocument validates and persists a new document, then generates and
// persists its reminder batch from the organization's policy. The document
// write commits first; a failed reminder write returns the document together
// with ErrRemindersNotScheduled so the gap is never silent.
func (s *Service) CreateDocument(ctx context.Context, vendorID, title string, docType models.DocumentType, issuedAt *models.Date, expiresAt models.Date) (*models.Document, []models.Reminder, error) {
	actor := requestcontext.ActorFrom(ctx)
	uploadedBy := actor.Name
	if uploadedBy == "" {
		uploadedBy = audit.SystemActor
	}

	doc, err := models.NewDocument(uuid.NewString(), vendorID, title, docType, issuedAt, expiresAt, uploadedBy, requestcontext.Now(ctx))
	if err != nil {
		return nil, nil, err
	}

	vendors, err := s.store.LoadVendors(ctx)
	if err != nil {
		return nil, nil, err
	}
	if !vendorExists(vendors, vendorID) {
		return nil, nil, dErrors.New(dErrors.CodeValidation, "unknown vendor")
	}

	documents, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, nil, err
	}
	documents = append(documents, *doc)
	if err := s.store.SaveDocuments(ctx, documents); err != nil {
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist documents")
	}

	s.recordAudit(ctx, audit.ActionUpload, "document", doc.ID, map[string]string{"title": doc.Title})
	if s.metrics != nil {
		s.metrics.IncrementDocumentsUploaded()
	}

	org, err := s.store.LoadOrganization(ctx)
	if err != nil {
		return doc, nil, ErrRemindersNotScheduled
	}
	batch := schedule.Build(doc, org)
	reminders, err := s.store.LoadReminders(ctx)
	if err != nil {
		return doc, nil, ErrRemindersNotScheduled
	}
	reminders = append(reminders, batch...)
	if err := s.store.SaveReminders(ctx, reminders); err != nil {
		s.logger.ErrorContext(ctx, "reminder batch not persisted",
			"document_id", doc.ID, "count", len(batch), "error", err)
		return doc, nil, ErrRemindersNotScheduled
	}
	if s.metrics != nil {
		s.metrics.AddRemindersScheduled(len(batch))
	}
	return doc, batch, nil
}

// UpdateDocument replaces the document with the matching id, preserving its
// position. Reminders are never regenerated on update.
func (s *Service) UpdateDocument(ctx context.Context, doc models.Document) (*models.Document, error) {
	if _, err := models.NewDocument(doc.ID, doc.VendorID, doc.Title, doc.Type, doc.IssuedAt, doc.ExpiresAt, doc.UploadedBy, doc.UploadedAt); err != nil {
		return nil, err
	}

	vendors, err := s.store.LoadVendors(ctx)
	if err != nil {
		return nil, err
	}
	if !vendorExists(vendors, doc.VendorID) {
		return nil, dErrors.New(dErrors.CodeValidation, "unknown vendor")
	}

	documents, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range documents {
		if documents[i].ID == doc.ID {
			documents[i] = doc
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
	}
	if err := s.store.SaveDocuments(ctx, documents); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist documents")
	}

	s.recordAudit(ctx, audit.ActionUpdate, "document", doc.ID, map[string]string{"title": doc.Title})
	return &doc, nil
}

// DeleteDocument removes a document and its reminders; one audit entry covers
// the whole action.
func (s *Service) DeleteDocument(ctx context.Context, id string) error {
	documents, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return err
	}
	var removed *models.Document
	kept := make([]models.Document, 0, len(documents))
	for _, doc := range documents {
		if doc.ID == id {
			d := doc
			removed = &d
			continue
		}
		kept = append(kept, doc)
	}
	if removed == nil {
		return dErrors.New(dErrors.CodeNotFound, "document not found")
	}

	reminders, err := s.store.LoadReminders(ctx)
	if err != nil {
		return err
	}
	keptReminders := make([]models.Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		if reminder.DocumentID == id {
			continue
		}
		keptReminders = append(keptReminders, reminder)
	}

	if err := s.store.SaveDocuments(ctx, kept); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist documents")
	}
	if err := s.store.SaveReminders(ctx, keptReminders); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist reminders")
	}

	s.recordAudit(ctx, audit.ActionDelete, "document", id, map[string]string{"title": removed.Title})
	return nil
}

func vendorExists(vendors []models.Vendor, id string) bool {
	for _, vendor := range vendors {
		if vendor.ID == id {
			return true
		}
	}
	return false
}
