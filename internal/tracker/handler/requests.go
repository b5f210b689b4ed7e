package handler

import (
	"strings"
	"time"

	"vendortrack/internal/tracker/models"
	dErrors "vendortrack/pkg/domainerrors"
)

// LoginRequest is the HTTP request body for POST /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		return dErrors.New(dErrors.CodeValidation, "email is required")
	}
	if r.Password == "" {
		return dErrors.New(dErrors.CodeValidation, "password is required")
	}
	return nil
}

// VendorRequest is the HTTP request body for POST /vendors and
// PUT /vendors/{id}.
type VendorRequest struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Contact string `json:"contact"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`

	parsedType   models.VendorType
	parsedStatus models.VendorStatus
}

func (r *VendorRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return dErrors.New(dErrors.CodeValidation, "name is required")
	}
	if r.Type == "" {
		r.Type = string(models.VendorOther)
	}
	parsedType, err := models.ParseVendorType(r.Type)
	if err != nil {
		return err
	}
	r.parsedType = parsedType

	if r.Status == "" {
		r.Status = string(models.VendorActive)
	}
	parsedStatus, err := models.ParseVendorStatus(r.Status)
	if err != nil {
		return err
	}
	r.parsedStatus = parsedStatus
	return nil
}

// ParsedType returns the validated vendor type.
func (r *VendorRequest) ParsedType() models.VendorType { return r.parsedType }

// ParsedStatus returns the validated vendor status.
func (r *VendorRequest) ParsedStatus() models.VendorStatus { return r.parsedStatus }

// DocumentRequest is the HTTP request body for POST /documents and
// PUT /documents/{id}.
type DocumentRequest struct {
	VendorID  string `json:"vendorId"`
	Title     string `json:"title"`
	Type      string `json:"type"`
	IssuedAt  string `json:"issuedAt"`
	ExpiresAt string `json:"expiresAt"`

	parsedType      models.DocumentType
	parsedIssuedAt  *models.Date
	parsedExpiresAt models.Date
}

func (r *DocumentRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.VendorID = strings.TrimSpace(r.VendorID)
	if r.VendorID == "" {
		return dErrors.New(dErrors.CodeValidation, "vendorId is required")
	}
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return dErrors.New(dErrors.CodeValidation, "title is required")
	}
	if r.Type == "" {
		r.Type = string(models.DocOther)
	}
	parsedType, err := models.ParseDocumentType(r.Type)
	if err != nil {
		return err
	}
	r.parsedType = parsedType

	if r.IssuedAt != "" {
		issued, err := models.ParseDate(r.IssuedAt)
		if err != nil {
			return dErrors.New(dErrors.CodeValidation, "issuedAt must be a date in YYYY-MM-DD form")
		}
		r.parsedIssuedAt = &issued
	}
	if r.ExpiresAt == "" {
		return dErrors.New(dErrors.CodeValidation, "expiresAt is required")
	}
	expires, err := models.ParseDate(r.ExpiresAt)
	if err != nil {
		return dErrors.New(dErrors.CodeValidation, "expiresAt must be a date in YYYY-MM-DD form")
	}
	r.parsedExpiresAt = expires
	return nil
}

// ParsedType returns the validated document type.
func (r *DocumentRequest) ParsedType() models.DocumentType { return r.parsedType }

// ParsedIssuedAt returns the validated issue date, nil when absent.
func (r *DocumentRequest) ParsedIssuedAt() *models.Date { return r.parsedIssuedAt }

// ParsedExpiresAt returns the validated expiration date.
func (r *DocumentRequest) ParsedExpiresAt() models.Date { return r.parsedExpiresAt }

// ReminderRequest is the HTTP request body for POST /reminders.
type ReminderRequest struct {
	DocumentID string `json:"documentId"`
	RemindAt   string `json:"remindAt"`
	Channel    string `json:"channel"`
	Message    string `json:"message"`

	parsedRemindAt time.Time
	parsedChannel  models.Channel
}

func (r *ReminderRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request body is required")
	}
	r.DocumentID = strings.TrimSpace(r.DocumentID)
	if r.DocumentID == "" {
		return dErrors.New(dErrors.CodeValidation, "documentId is required")
	}
	if r.RemindAt == "" {
		return dErrors.New(dErrors.CodeValidation, "remindAt is required")
	}
	remindAt, err := time.Parse(time.RFC3339, r.RemindAt)
	if err != nil {
		// Accept a bare date too; reminders fire at midnight then.
		if d, dateErr := models.ParseDate(r.RemindAt); dateErr == nil {
			remindAt = d.Time()
		} else {
			return dErrors.New(dErrors.CodeValidation, "remindAt must be an RFC 3339 timestamp or a YYYY-MM-DD date")
		}
	}
	r.parsedRemindAt = remindAt

	if r.Channel == "" {
		r.Channel = string(models.ChannelEmail)
	}
	channel, err := models.ParseChannel(r.Channel)
	if err != nil {
		return err
	}
	r.parsedChannel = channel
	return nil
}

// ParsedRemindAt returns the validated reminder time.
func (r *ReminderRequest) ParsedRemindAt() time.Time { return r.parsedRemindAt }

// ParsedChannel returns the validated channel.
func (r *ReminderRequest) ParsedChannel() models.Channel { return r.parsedChannel }
