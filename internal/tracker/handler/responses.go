package handler

import (
	"vendortrack/internal/audit"
	"vendortrack/internal/tracker/models"
	"vendortrack/internal/tracker/views"
)

// UserResponse is a user with the stored password omitted.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserFromModel strips credentials from a user record.
func UserFromModel(user models.User) UserResponse {
	return UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}
}

// LoginResponse is the body returned by POST /login.
type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

// DocumentsResponse wraps the filtered document list.
type DocumentsResponse struct {
	Documents []models.Document `json:"documents"`
}

// CriticalDocumentsResponse wraps the attention list.
type CriticalDocumentsResponse struct {
	Documents []views.CriticalDocument `json:"documents"`
}

// DocumentCreatedResponse is the body returned by POST /documents. Warning is
// set when the document committed but its reminder batch did not.
type DocumentCreatedResponse struct {
	Document  models.Document   `json:"document"`
	Reminders []models.Reminder `json:"reminders,omitempty"`
	Warning   string            `json:"warning,omitempty"`
}

// VendorsResponse wraps the vendor list with document counts.
type VendorsResponse struct {
	Vendors []views.VendorSummary `json:"vendors"`
}

// RemindersResponse wraps the reminder list.
type RemindersResponse struct {
	Reminders []models.Reminder `json:"reminders"`
}

// AuditLogsResponse wraps the audit trail view.
type AuditLogsResponse struct {
	Entries []audit.Entry `json:"entries"`
}
