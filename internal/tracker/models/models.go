// Package models defines the core domain entities: the organization, its
// vendors, their compliance documents, scheduled reminders, and users. JSON
// tags match the persisted collection format.
package models

import (
	"strings"
	"time"

	dErrors "vendortrack/pkg/domainerrors"
)

// Settings holds the organization's reminder policy.
type Settings struct {
	// ReminderDays are offsets in days before expiry, in the order reminders
	// should be generated (e.g. [30, 14, 7, 1]).
	ReminderDays []int `json:"reminderDays"`
	// DefaultChannel is applied to auto-generated reminders.
	DefaultChannel Channel `json:"defaultChannel"`
}

// Organization is the singleton deployment owner.
type Organization struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Timezone string   `json:"timezone"`
	Settings Settings `json:"settings"`
}

// Vendor is an external party the organization tracks documents for.
type Vendor struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Type    VendorType   `json:"type"`
	Contact string       `json:"contact"`
	Status  VendorStatus `json:"status"`
	Notes   string       `json:"notes,omitempty"`
}

// NewVendor validates and builds a vendor. The id is assigned by the caller
// so stores and tests control identity.
func NewVendor(id, name string, vendorType VendorType, contact, notes string) (*Vendor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "vendor name is required")
	}
	return &Vendor{
		ID:      id,
		Name:    name,
		Type:    vendorType,
		Contact: strings.TrimSpace(contact),
		Status:  VendorActive,
		Notes:   notes,
	}, nil
}

// Document is a dated compliance artifact owned by a vendor. Status is
// informational only; the expiration state is always derived from ExpiresAt
// at read time, never stored.
type Document struct {
	ID         string       `json:"id"`
	VendorID   string       `json:"vendorId"`
	Title      string       `json:"title"`
	Type       DocumentType `json:"type"`
	IssuedAt   *Date        `json:"issuedAt,omitempty"`
	ExpiresAt  Date         `json:"expiresAt"`
	Status     string       `json:"status"`
	UploadedBy string       `json:"uploadedBy"`
	UploadedAt time.Time    `json:"uploadedAt"`
}

// NewDocument validates and builds a document.
func NewDocument(id, vendorID, title string, docType DocumentType, issuedAt *Date, expiresAt Date, uploadedBy string, now time.Time) (*Document, error) {
	title = strings.TrimSpace(title)
	if vendorID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "document vendor is required")
	}
	if title == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "document title is required")
	}
	if expiresAt.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "document expiration date is required")
	}
	return &Document{
		ID:         id,
		VendorID:   vendorID,
		Title:      title,
		Type:       docType,
		IssuedAt:   issuedAt,
		ExpiresAt:  expiresAt,
		Status:     "active",
		UploadedBy: uploadedBy,
		UploadedAt: now,
	}, nil
}

// Reminder is a scheduled notification intent tied to a document's expiry.
type Reminder struct {
	ID         string         `json:"id"`
	DocumentID string         `json:"documentId"`
	RemindAt   time.Time      `json:"remindAt"`
	Channel    Channel        `json:"channel"`
	Status     ReminderStatus `json:"status"`
	Message    string         `json:"message"`
}

// User is a stored credential record. Passwords are kept as stored; hardening
// authentication is explicitly out of scope for this service.
type User struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	Name             string `json:"name"`
	Role             Role   `json:"role"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}
