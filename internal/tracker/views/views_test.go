package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vendortrack/internal/tracker/models"
)

var now = time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

func docExpiring(id, vendorID, title string, days int) models.Document {
	return models.Document{
		ID:        id,
		VendorID:  vendorID,
		Title:     title,
		Type:      models.DocOther,
		ExpiresAt: models.NewDate(2025, time.June, 1).AddDays(days),
	}
}

var testVendors = []models.Vendor{
	{ID: "v1", Name: "TechSupply Inc", Type: models.VendorSoftware, Status: models.VendorActive},
	{ID: "v2", Name: "BuildCo Contractors", Type: models.VendorContractor, Status: models.VendorActive},
	{ID: "v3", Name: "Insurance Brokers Ltd", Type: models.VendorSupplier, Status: models.VendorActive},
}

func TestComputeStats(t *testing.T) {
	documents := []models.Document{
		docExpiring("d1", "v1", "License", -5),
		docExpiring("d2", "v1", "Contract", 0),
		docExpiring("d3", "v2", "Insurance", 30),
		docExpiring("d4", "v2", "W-9", 31),
		docExpiring("d5", "v3", "Certificate", 400),
	}

	stats := ComputeStats(testVendors, documents, now)

	assert.Equal(t, 3, stats.TotalVendors)
	assert.Equal(t, 5, stats.TotalDocuments)
	assert.Equal(t, 2, stats.ExpiringSoon, "0 and 30 days count as expiring soon")
	assert.Equal(t, 1, stats.Expired)
}

func TestFilterDocuments(t *testing.T) {
	documents := []models.Document{
		docExpiring("d1", "v1", "Software License", 60),
		docExpiring("d2", "v2", "Liability Insurance", 60),
		docExpiring("d3", "v3", "W-9 Tax Form", 60),
		docExpiring("d4", "v1", "Expired Contract", -10),
	}

	t.Run("query matches title case-insensitively", func(t *testing.T) {
		got := FilterDocuments(documents, testVendors, "INSURANCE", FilterAll, now)
		require.Len(t, got, 2)
		assert.Equal(t, "d2", got[0].ID, "matched by title")
		assert.Equal(t, "d3", got[1].ID, "matched by vendor name")
	})

	t.Run("query matches vendor name", func(t *testing.T) {
		got := FilterDocuments(documents, testVendors, "buildco", FilterAll, now)
		require.Len(t, got, 1)
		assert.Equal(t, "d2", got[0].ID)
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		got := FilterDocuments(documents, testVendors, "", FilterAll, now)
		assert.Len(t, got, 4)
	})

	t.Run("status filter narrows results", func(t *testing.T) {
		got := FilterDocuments(documents, testVendors, "", "expired", now)
		require.Len(t, got, 1)
		assert.Equal(t, "d4", got[0].ID)
	})

	t.Run("query and status combine", func(t *testing.T) {
		got := FilterDocuments(documents, testVendors, "contract", "active", now)
		assert.Empty(t, got, "the only contract match is expired")
	})

	t.Run("unresolved vendor does not match vendor-name queries", func(t *testing.T) {
		orphan := []models.Document{docExpiring("d9", "gone", "Orphan Doc", 60)}
		got := FilterDocuments(orphan, testVendors, "orphan", FilterAll, now)
		require.Len(t, got, 1)
		got = FilterDocuments(orphan, testVendors, "techsupply", FilterAll, now)
		assert.Empty(t, got)
	})
}

func TestCriticalDocuments(t *testing.T) {
	documents := []models.Document{
		docExpiring("d1", "v1", "A", -5),
		docExpiring("d2", "v1", "B", 2),
		docExpiring("d3", "v2", "C", 45),
		docExpiring("d4", "v2", "D", 0),
		docExpiring("d5", "v3", "E", 29),
	}

	got := CriticalDocuments(documents, testVendors, now)
	require.Len(t, got, 4, "45-day document is excluded")

	days := make([]int, len(got))
	for i, entry := range got {
		days[i] = entry.Days
	}
	assert.Equal(t, []int{-5, 0, 2, 29}, days, "sorted most urgent first")

	assert.Equal(t, "d1", got[0].ID)
	require.NotNil(t, got[0].Vendor)
	assert.Equal(t, "TechSupply Inc", got[0].Vendor.Name)
	assert.Equal(t, "Expired", got[0].Classification.Label)
}

func TestCriticalDocumentsCap(t *testing.T) {
	documents := make([]models.Document, 0, 15)
	for i := 0; i < 15; i++ {
		documents = append(documents, docExpiring("d", "v1", "Doc", i))
	}

	got := CriticalDocuments(documents, testVendors, now)
	assert.Len(t, got, 10, "attention list is capped at ten entries")
	assert.Equal(t, 0, got[0].Days)
	assert.Equal(t, 9, got[9].Days)
}
