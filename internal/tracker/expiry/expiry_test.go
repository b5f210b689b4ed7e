package expiry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"vendortrack/internal/tracker/models"
)

// now is fixed at midnight so day boundaries land exactly on the thresholds.
var now = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func dateIn(days int) models.Date {
	return models.NewDate(2025, time.June, 1).AddDays(days)
}

func TestDaysUntil(t *testing.T) {
	tests := []struct {
		name string
		date models.Date
		want int
	}{
		{"same day", dateIn(0), 0},
		{"tomorrow", dateIn(1), 1},
		{"yesterday", dateIn(-1), -1},
		{"thirty days out", dateIn(30), 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysUntil(tt.date, now))
		})
	}
}

func TestDaysUntilRoundsUpPastMidnight(t *testing.T) {
	// Mid-day clock: a document expiring tomorrow is still 1 day out, one
	// expiring today is 0, one that expired this morning is 0 (the date is
	// midnight, so a later-in-the-day now yields a negative fraction).
	midday := now.Add(10 * time.Hour)
	assert.Equal(t, 1, DaysUntil(dateIn(1), midday))
	assert.Equal(t, 0, DaysUntil(dateIn(0), midday))
	assert.Equal(t, -1, DaysUntil(dateIn(-1), midday))
}

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		days   int
		status Status
		label  string
	}{
		{-10, StatusExpired, "Expired"},
		{-1, StatusExpired, "Expired"},
		{0, StatusCritical, "Critical"},
		{7, StatusCritical, "Critical"},
		{8, StatusWarning, "Expiring Soon"},
		{30, StatusWarning, "Expiring Soon"},
		{31, StatusActive, "Active"},
		{365, StatusActive, "Active"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got := Classify(dateIn(tt.days), now)
			assert.Equal(t, tt.status, got.Status, "days=%d", tt.days)
			assert.Equal(t, tt.label, got.Label, "days=%d", tt.days)
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"expired", "critical", "warning", "active"} {
		_, ok := ParseStatus(valid)
		assert.True(t, ok, valid)
	}
	_, ok := ParseStatus("all")
	assert.False(t, ok)
}
