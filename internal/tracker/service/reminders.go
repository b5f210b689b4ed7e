package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"vendortrack/internal/audit"
	"vendortrack/internal/tracker/models"
	"vendortrack/internal/tracker/schedule"
	dErrors "vendortrack/pkg/domainerrors"
)

// ListReminders returns all reminders ordered by remind-at time, soonest
// first.
func (s *Service) ListReminders(ctx context.Context) ([]models.Reminder, error) {
	reminders, err := s.store.LoadReminders(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(reminders, func(i, j int) bool {
		return reminders[i].RemindAt.Before(reminders[j].RemindAt)
	})
	return reminders, nil
}

// CreateReminder persists a manual reminder for an existing document. An
// empty message gets the default template naming the document.
func (s *Service) CreateReminder(ctx context.Context, documentID string, remindAt time.Time, channel models.Channel, message string) (*models.Reminder, error) {
	if documentID == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "reminder document is required")
	}
	if remindAt.IsZero() {
		return nil, dErrors.New(dErrors.CodeValidation, "reminder time is required")
	}

	documents, err := s.store.LoadDocuments(ctx)
	if err != nil {
		return nil, err
	}
	var doc *models.Document
	for i := range documents {
		if documents[i].ID == documentID {
			doc = &documents[i]
			break
		}
	}
	if doc == nil {
		return nil, dErrors.New(dErrors.CodeNotFound, "document not found")
	}

	message = strings.TrimSpace(message)
	if message == "" {
		message = schedule.DefaultManualMessage(doc.Title)
	}
	reminder := models.Reminder{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		RemindAt:   remindAt,
		Channel:    channel,
		Status:     models.ReminderScheduled,
		Message:    message,
	}

	reminders, err := s.store.LoadReminders(ctx)
	if err != nil {
		return nil, err
	}
	reminders = append(reminders, reminder)
	if err := s.store.SaveReminders(ctx, reminders); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist reminders")
	}

	s.recordAudit(ctx, audit.ActionCreate, "reminder", reminder.ID, map[string]string{"documentId": documentID})
	if s.metrics != nil {
		s.metrics.AddRemindersScheduled(1)
	}
	return &reminder, nil
}
