// Package expiry computes day-deltas and expiration classifications for
// documents. Functions are pure over an explicit now so one evaluation pass
// sees one consistent clock.
package expiry

import (
	"math"
	"time"

	"vendortrack/internal/tracker/models"
)

// Status is the derived expiration state of a document.
type Status string

const (
	StatusExpired  Status = "expired"
	StatusCritical Status = "critical"
	StatusWarning  Status = "warning"
	StatusActive   Status = "active"
)

// ParseStatus validates a status filter value.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusExpired, StatusCritical, StatusWarning, StatusActive:
		return Status(s), true
	}
	return "", false
}

// Classification pairs a status with its display label.
type Classification struct {
	Status Status `json:"status"`
	Label  string `json:"label"`
}

// DaysUntil returns the number of calendar days until the expiration date,
// negative once it has passed. The delta is the ceiling of the remaining
// duration in days, so a document expiring later today still counts as 0.
func DaysUntil(expiresAt models.Date, now time.Time) int {
	delta := expiresAt.Time().Sub(now)
	return int(math.Ceil(delta.Hours() / 24))
}

// Classify maps a document's expiration date to its status and label.
// Thresholds: past due is expired, within 7 days is critical, within 30 days
// is warning, beyond that active.
func Classify(expiresAt models.Date, now time.Time) Classification {
	days := DaysUntil(expiresAt, now)
	switch {
	case days < 0:
		return Classification{Status: StatusExpired, Label: "Expired"}
	case days <= 7:
		return Classification{Status: StatusCritical, Label: "Critical"}
	case days <= 30:
		return Classification{Status: StatusWarning, Label: "Expiring Soon"}
	default:
		return Classification{Status: StatusActive, Label: "Active"}
	}
}
