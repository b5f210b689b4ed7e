package service

import (
	"context"

	"github.com/google/uuid"

	"vendortrack/internal/audit"
	"vendortrack/internal/tracker/models"
	"vendortrack/internal/tracker/views"
	dErrors "vendortrack/pkg/domainerrors"
)

// ListVendors returns all vendors in stored order, each annotated with its
// document count.
func (s *Service) ListVendors(ctx context.Context) ([]views.VendorSummary, error) {
	vendors, err := s.store.LoadVendors(ctx)
	if err != nil {
		return nil, err
	}
	documents, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}
	return views.VendorSummaries(vendors, documents), nil
}

// CreateVendor validates, persists, and audits a new vendor.
func (s *Service) CreateVendor(ctx context.Context, name string, vendorType models.VendorType, contact, notes string) (*models.Vendor, error) {
	vendor, err := models.NewVendor(uuid.NewString(), name, vendorType, contact, notes)
	if err != nil {
		return nil, err
	}

	vendors, err := s.store.LoadVendors(ctx)
	if err != nil {
		return nil, err
	}
	vendors = append(vendors, *vendor)
	if err := s.store.SaveVendors(ctx, vendors); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist vendors")
	}

	s.recordAudit(ctx, audit.ActionCreate, "vendor", vendor.ID, map[string]string{"name": vendor.Name})
	if s.metrics != nil {
		s.metrics.IncrementVendorsCreated()
	}
	return vendor, nil
}

// UpdateVendor replaces the vendor with the matching id, preserving its
// position in the collection.
func (s *Service) UpdateVendor(ctx context.Context, vendor models.Vendor) (*models.Vendor, error) {
	if _, err := models.NewVendor(vendor.ID, vendor.Name, vendor.Type, vendor.Contact, vendor.Notes); err != nil {
		return nil, err
	}

	vendors, err := s.store.LoadVendors(ctx)
	if err != nil {
		return nil, err
	}
	replaced := false
	for i := range vendors {
		if vendors[i].ID == vendor.ID {
			vendors[i] = vendor
			replaced = true
			break
		}
	}
	if !replaced {
		return nil, dErrors.New(dErrors.CodeNotFound, "vendor not found")
	}
	if err := s.store.SaveVendors(ctx, vendors); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist vendors")
	}

	s.recordAudit(ctx, audit.ActionUpdate, "vendor", vendor.ID, map[string]string{"name": vendor.Name})
	return &vendor, nil
}

// DeleteVendor removes a vendor together with its documents and their
// reminders. The cascade is total; one audit entry covers the whole action.
func (s *Service) DeleteVendor(ctx context.Context, id string) error {
	vendors, err := s.store.LoadVendors(ctx)
	if err != nil {
		return err
	}
	var removed *models.Vendor
	kept := make([]models.Vendor, 0, len(vendors))
	for _, vendor := range vendors {
		if vendor.ID == id {
			v := vendor
			removed = &v
			continue
		}
		kept = append(kept, vendor)
	}
	if removed == nil {
		return dErrors.New(dErrors.CodeNotFound, "vendor not found")
	}

	documents, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return err
	}
	removedDocs := make(map[string]bool)
	keptDocs := make([]models.Document, 0, len(documents))
	for _, doc := range documents {
		if doc.VendorID == id {
			removedDocs[doc.ID] = true
			continue
		}
		keptDocs = append(keptDocs, doc)
	}

	reminders, err := s.store.LoadReminders(ctx)
	if err != nil {
		return err
	}
	keptReminders := make([]models.Reminder, 0, len(reminders))
	for _, reminder := range reminders {
		if removedDocs[reminder.DocumentID] {
			continue
		}
		keptReminders = append(keptReminders, reminder)
	}

	if err := s.store.SaveVendors(ctx, kept); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist vendors")
	}
	if err := s.store.SaveDocuments(ctx, keptDocs); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist documents")
	}
	if err := s.store.SaveReminders(ctx, keptReminders); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist reminders")
	}

	s.recordAudit(ctx, audit.ActionDelete, "vendor", id, map[string]string{"name": removed.Name})
	return nil
}
