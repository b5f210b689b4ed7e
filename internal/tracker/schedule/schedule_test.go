package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendortrack/internal/tracker/models"
)

func TestBuild(t *testing.T) {
	org := &models.Organization{
		ID:   "org-1",
		Name: "Acme Corporation",
		Settings: models.Settings{
			ReminderDays:   []int{30, 14, 7, 1},
			DefaultChannel: models.ChannelEmail,
		},
	}
	doc := &models.Document{
		ID:        "d1",
		VendorID:  "v1",
		Title:     "Software License",
		Type:      models.DocLicense,
		ExpiresAt: models.NewDate(2025, time.December, 15),
	}

	reminders := Build(doc, org)
	require.Len(t, reminders, 4)

	wantDates := []time.Time{
		time.Date(2025, time.November, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 8, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.December, 14, 0, 0, 0, 0, time.UTC),
	}
	wantMessages := []string{
		`Document "Software License" expires in 30 days`,
		`Document "Software License" expires in 14 days`,
		`Document "Software License" expires in 7 days`,
		`Document "Software License" expires in 1 days`,
	}

	seen := map[string]bool{}
	for i, r := range reminders {
		assert.Equal(t, "d1", r.DocumentID)
		assert.True(t, wantDates[i].Equal(r.RemindAt), "offset %d: got %v", i, r.RemindAt)
		assert.Equal(t, models.ChannelEmail, r.Channel)
		assert.Equal(t, models.ReminderScheduled, r.Status)
		assert.Equal(t, wantMessages[i], r.Message)
		assert.NotEmpty(t, r.ID)
		assert.False(t, seen[r.ID], "reminder ids must be unique")
		seen[r.ID] = true
	}
}

func TestBuildEmptyPolicy(t *testing.T) {
	org := &models.Organization{Settings: models.Settings{DefaultChannel: models.ChannelEmail}}
	doc := &models.Document{ID: "d1", ExpiresAt: models.NewDate(2026, time.January, 1)}

	assert.Empty(t, Build(doc, org))
}

func TestDefaultManualMessage(t *testing.T) {
	assert.Equal(t, `Custom reminder for document "W-9 Tax Form"`, DefaultManualMessage("W-9 Tax Form"))
}
