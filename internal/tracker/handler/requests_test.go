package handler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendortrack/internal/tracker/models"
	dErrors "vendortrack/pkg/domainerrors"
)

func TestVendorRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     VendorRequest
		wantErr bool
	}{
		{name: "valid", req: VendorRequest{Name: "Acme", Type: "software"}},
		{name: "defaults type and status", req: VendorRequest{Name: "Acme"}},
		{name: "missing name", req: VendorRequest{Type: "software"}, wantErr: true},
		{name: "whitespace name", req: VendorRequest{Name: "   "}, wantErr: true},
		{name: "unknown type", req: VendorRequest{Name: "Acme", Type: "charity"}, wantErr: true},
		{name: "unknown status", req: VendorRequest{Name: "Acme", Status: "dormant"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVendorRequestDefaults(t *testing.T) {
	req := VendorRequest{Name: "Acme"}
	require.NoError(t, req.Validate())
	assert.Equal(t, models.VendorOther, req.ParsedType())
	assert.Equal(t, models.VendorActive, req.ParsedStatus())
}

func TestDocumentRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     DocumentRequest
		wantErr bool
	}{
		{name: "valid", req: DocumentRequest{VendorID: "v1", Title: "License", Type: "license", ExpiresAt: "2026-01-01"}},
		{name: "optional issuedAt", req: DocumentRequest{VendorID: "v1", Title: "License", ExpiresAt: "2026-01-01", IssuedAt: "2025-01-01"}},
		{name: "missing vendor", req: DocumentRequest{Title: "License", ExpiresAt: "2026-01-01"}, wantErr: true},
		{name: "missing title", req: DocumentRequest{VendorID: "v1", ExpiresAt: "2026-01-01"}, wantErr: true},
		{name: "missing expiry", req: DocumentRequest{VendorID: "v1", Title: "License"}, wantErr: true},
		{name: "malformed expiry", req: DocumentRequest{VendorID: "v1", Title: "License", ExpiresAt: "soon"}, wantErr: true},
		{name: "malformed issuedAt", req: DocumentRequest{VendorID: "v1", Title: "License", ExpiresAt: "2026-01-01", IssuedAt: "01/02/2025"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "2026-01-01", tt.req.ParsedExpiresAt().String())
		})
	}
}

func TestReminderRequestAcceptsTimestampOrDate(t *testing.T) {
	req := ReminderRequest{DocumentID: "d1", RemindAt: "2025-12-01T09:30:00Z"}
	require.NoError(t, req.Validate())
	assert.Equal(t, time.Date(2025, time.December, 1, 9, 30, 0, 0, time.UTC), req.ParsedRemindAt())
	assert.Equal(t, models.ChannelEmail, req.ParsedChannel())

	req = ReminderRequest{DocumentID: "d1", RemindAt: "2025-12-01", Channel: "webhook"}
	require.NoError(t, req.Validate())
	assert.Equal(t, time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), req.ParsedRemindAt())
	assert.Equal(t, models.ChannelWebhook, req.ParsedChannel())

	req = ReminderRequest{DocumentID: "d1", RemindAt: "whenever"}
	require.Error(t, req.Validate())
}
