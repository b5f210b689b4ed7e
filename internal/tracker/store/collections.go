// Package store is the persistence layer: whole collections serialized as
// JSON text under fixed keys through the key-value adapter. Every operation
// reads, rewrites, and persists a full collection snapshot; last write wins.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"vendortrack/internal/audit"
	"vendortrack/internal/kvstore"
	"vendortrack/internal/tracker/models"
	dErrors "vendortrack/pkg/domainerrors"
	"vendortrack/pkg/sentinel"
)

// Fixed logical keys. The initialization marker guards seeding.
const (
	KeyOrganization = "organization"
	KeyUsers        = "users"
	KeyVendors      = "vendors"
	KeyDocuments    = "documents"
	KeyReminders    = "reminders"
	KeyAuditLog     = "audit-logs"
	KeyInitialized  = "app-initialized"
)

// Collections wraps the key-value adapter with typed collection access.
type Collections struct {
	kv kvstore.Store
}

func New(kv kvstore.Store) *Collections {
	return &Collections{kv: kv}
}

// Snapshot is one consistent read of the live collections.
type Snapshot struct {
	Organization *models.Organization
	Vendors      []models.Vendor
	Documents    []models.Document
	Reminders    []models.Reminder
}

// LoadAll loads the organization and the three live collections in parallel.
func (c *Collections) LoadAll(ctx context.Context) (*Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		org, err := c.LoadOrganization(gctx)
		if err != nil {
			return err
		}
		snap.Organization = org
		return nil
	})
	g.Go(func() error {
		vendors, err := c.LoadVendors(gctx)
		if err != nil {
			return err
		}
		snap.Vendors = vendors
		return nil
	})
	g.Go(func() error {
		documents, err := c.LoadDocuments(gctx)
		if err != nil {
			return err
		}
		snap.Documents = documents
		return nil
	})
	g.Go(func() error {
		reminders, err := c.LoadReminders(gctx)
		if err != nil {
			return err
		}
		snap.Reminders = reminders
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// LoadOrganization returns the singleton organization. A missing key means
// storage was never initialized.
func (c *Collections) LoadOrganization(ctx context.Context) (*models.Organization, error) {
	var org models.Organization
	if err := c.loadJSON(ctx, KeyOrganization, &org); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "organization not initialized")
		}
		return nil, err
	}
	return &org, nil
}

func (c *Collections) SaveOrganization(ctx context.Context, org *models.Organization) error {
	return c.saveJSON(ctx, KeyOrganization, org)
}

func (c *Collections) LoadVendors(ctx context.Context) ([]models.Vendor, error) {
	return loadCollection[models.Vendor](ctx, c, KeyVendors)
}

func (c *Collections) SaveVendors(ctx context.Context, vendors []models.Vendor) error {
	return c.saveJSON(ctx, KeyVendors, vendors)
}

func (c *Collections) LoadDocuments(ctx context.Context) ([]models.Document, error) {
	return loadCollection[models.Document](ctx, c, KeyDocuments)
}

func (c *Collections) SaveDocuments(ctx context.Context, documents []models.Document) error {
	return c.saveJSON(ctx, KeyDocuments, documents)
}

func (c *Collections) LoadReminders(ctx context.Context) ([]models.Reminder, error) {
	return loadCollection[models.Reminder](ctx, c, KeyReminders)
}

func (c *Collections) SaveReminders(ctx context.Context, reminders []models.Reminder) error {
	return c.saveJSON(ctx, KeyReminders, reminders)
}

func (c *Collections) LoadUsers(ctx context.Context) ([]models.User, error) {
	return loadCollection[models.User](ctx, c, KeyUsers)
}

func (c *Collections) SaveUsers(ctx context.Context, users []models.User) error {
	return c.saveJSON(ctx, KeyUsers, users)
}

// LoadAuditLog implements audit.Store.
func (c *Collections) LoadAuditLog(ctx context.Context) ([]audit.Entry, error) {
	return loadCollection[audit.Entry](ctx, c, KeyAuditLog)
}

// SaveAuditLog implements audit.Store.
func (c *Collections) SaveAuditLog(ctx context.Context, entries []audit.Entry) error {
	return c.saveJSON(ctx, KeyAuditLog, entries)
}

// loadCollection reads a JSON array under key. A missing key reads as an
// empty collection; malformed JSON surfaces as an internal error and leaves
// the collection unset for this load cycle.
func loadCollection[T any](ctx context.Context, c *Collections, key string) ([]T, error) {
	var items []T
	if err := c.loadJSON(ctx, key, &items); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return []T{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (c *Collections) loadJSON(ctx context.Context, key string, out any) error {
	value, err := c.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return err
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("load %s", key))
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("decode %s", key))
	}
	return nil
}

func (c *Collections) saveJSON(ctx context.Context, key string, v any) error {
	encoded, err := json.Marshal(v)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("encode %s", key))
	}
	if err := c.kv.Set(ctx, key, string(encoded)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("persist %s", key))
	}
	return nil
}
