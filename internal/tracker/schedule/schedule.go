// Package schedule implements the reminder generation rule: one reminder per
// configured offset when a document is created, plus the defaults applied to
// manual reminders.
package schedule

import (
	"fmt"

	"github.com/google/uuid"

	"vendortrack/internal/tracker/models"
)

// Build produces the reminders for a newly created document, one per offset
// in the organization's reminder policy, in policy order. Each fires at the
// expiration date minus the offset, on the organization's default channel.
// Update operations never call this; reminders are generated on creation only.
func Build(doc *models.Document, org *models.Organization) []models.Reminder {
	reminders := make([]models.Reminder, 0, len(org.Settings.ReminderDays))
	for _, offset := range org.Settings.ReminderDays {
		reminders = append(reminders, models.Reminder{
			ID:         uuid.NewString(),
			DocumentID: doc.ID,
			RemindAt:   doc.ExpiresAt.AddDays(-offset).Time(),
			Channel:    org.Settings.DefaultChannel,
			Status:     models.ReminderScheduled,
			Message:    fmt.Sprintf("Document %q expires in %d days", doc.Title, offset),
		})
	}
	return reminders
}

// DefaultManualMessage is substituted when a manual reminder is created
// without a custom message.
func DefaultManualMessage(documentTitle string) string {
	return fmt.Sprintf("Custom reminder for document %q", documentTitle)
}
