package store

import (
	"context"
	"errors"
	"time"

	"vendortrack/internal/audit"
	"vendortrack/internal/tracker/models"
	"vendortrack/pkg/sentinel"
)

func date(year int, month time.Month, day int) models.Date {
	return models.NewDate(year, month, day)
}

func datePtr(year int, month time.Month, day int) *models.Date {
	d := date(year, month, day)
	return &d
}

// SeedOrganization is the singleton created on first run.
var SeedOrganization = models.Organization{
	ID:       "org-1",
	Name:     "Acme Corporation",
	Timezone: "America/New_York",
	Settings: models.Settings{
		ReminderDays:   []int{30, 14, 7, 1},
		DefaultChannel: models.ChannelEmail,
	},
}

// SeedUsers are the demo credentials. Plaintext matches the stored-record
// comparison contract; credential hardening is out of scope.
var SeedUsers = []models.User{
	{ID: "u1", Email: "admin@acme.com", Password: "admin123", Name: "Admin User", Role: models.RoleAdmin},
	{ID: "u2", Email: "user@acme.com", Password: "user123", Name: "Regular User", Role: models.RoleUser},
}

// SeedVendors and SeedDocuments give a fresh deployment something to show.
var SeedVendors = []models.Vendor{
	{ID: "v1", Name: "TechSupply Inc", Type: models.VendorSoftware, Contact: "john@techsupply.com", Status: models.VendorActive},
	{ID: "v2", Name: "BuildCo Contractors", Type: models.VendorContractor, Contact: "mary@buildco.com", Status: models.VendorActive},
	{ID: "v3", Name: "Office Supplies Ltd", Type: models.VendorSupplier, Contact: "sales@officesup.com", Status: models.VendorActive},
}

var SeedDocuments = []models.Document{
	{ID: "d1", VendorID: "v1", Title: "Software License", Type: models.DocLicense, IssuedAt: datePtr(2024, time.January, 15), ExpiresAt: date(2025, time.December, 15), Status: "active", UploadedBy: "Admin"},
	{ID: "d2", VendorID: "v2", Title: "Liability Insurance", Type: models.DocInsurance, IssuedAt: datePtr(2024, time.June, 1), ExpiresAt: date(2025, time.November, 25), Status: "active", UploadedBy: "Admin"},
	{ID: "d3", VendorID: "v2", Title: "W-9 Tax Form", Type: models.DocW9, IssuedAt: datePtr(2024, time.January, 10), ExpiresAt: date(2025, time.November, 20), Status: "active", UploadedBy: "Admin"},
	{ID: "d4", VendorID: "v3", Title: "Certificate of Insurance", Type: models.DocInsurance, IssuedAt: datePtr(2024, time.March, 1), ExpiresAt: date(2025, time.November, 22), Status: "active", UploadedBy: "Admin"},
}

// EnsureInitialized seeds storage on first run. A present marker key makes
// this a no-op, so missing-key load errors elsewhere trigger lazy
// re-initialization rather than hard failures. Returns whether seeding ran.
func (c *Collections) EnsureInitialized(ctx context.Context) (bool, error) {
	if _, err := c.kv.Get(ctx, KeyInitialized); err == nil {
		return false, nil
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return false, err
	}

	if err := c.SaveOrganization(ctx, &SeedOrganization); err != nil {
		return false, err
	}
	if err := c.SaveUsers(ctx, SeedUsers); err != nil {
		return false, err
	}
	if err := c.SaveVendors(ctx, SeedVendors); err != nil {
		return false, err
	}
	if err := c.SaveDocuments(ctx, SeedDocuments); err != nil {
		return false, err
	}
	if err := c.SaveReminders(ctx, []models.Reminder{}); err != nil {
		return false, err
	}
	if err := c.SaveAuditLog(ctx, []audit.Entry{}); err != nil {
		return false, err
	}
	if err := c.kv.Set(ctx, KeyInitialized, "true"); err != nil {
		return false, err
	}
	return true, nil
}
