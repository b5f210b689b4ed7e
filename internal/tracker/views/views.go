// Package views computes the derived projections shown on the dashboard:
// aggregate stats, the filtered document list, and the critical-documents
// ranking. Everything is recomputed from the live collections on every read
// so derived state can never go stale.
package views

import (
	"sort"
	"strings"
	"time"

	"vendortrack/internal/tracker/expiry"
	"vendortrack/internal/tracker/models"
)

// FilterAll matches every expiration status.
const FilterAll = "all"

// Stats are the dashboard headline numbers.
type Stats struct {
	TotalVendors   int `json:"totalVendors"`
	TotalDocuments int `json:"totalDocuments"`
	// ExpiringSoon counts documents due within 30 days but not yet expired.
	ExpiringSoon int `json:"expiringSoon"`
	Expired      int `json:"expired"`
}

// ComputeStats tallies the headline numbers for one evaluation pass.
func ComputeStats(vendors []models.Vendor, documents []models.Document, now time.Time) Stats {
	stats := Stats{
		TotalVendors:   len(vendors),
		TotalDocuments: len(documents),
	}
	for _, doc := range documents {
		days := expiry.DaysUntil(doc.ExpiresAt, now)
		switch {
		case days < 0:
			stats.Expired++
		case days <= 30:
			stats.ExpiringSoon++
		}
	}
	return stats
}

// FilterDocuments returns the documents matching a free-text query and a
// status filter. The query matches the document title or the resolved
// vendor's name, case-insensitively; an empty query matches everything.
// statusFilter is FilterAll or one of the expiration statuses.
func FilterDocuments(documents []models.Document, vendors []models.Vendor, query, statusFilter string, now time.Time) []models.Document {
	byID := vendorsByID(vendors)
	query = strings.ToLower(strings.TrimSpace(query))

	matched := make([]models.Document, 0, len(documents))
	for _, doc := range documents {
		if query != "" {
			vendorName := ""
			if vendor, ok := byID[doc.VendorID]; ok {
				vendorName = vendor.Name
			}
			if !strings.Contains(strings.ToLower(doc.Title), query) &&
				!strings.Contains(strings.ToLower(vendorName), query) {
				continue
			}
		}
		if statusFilter != "" && statusFilter != FilterAll {
			if string(expiry.Classify(doc.ExpiresAt, now).Status) != statusFilter {
				continue
			}
		}
		matched = append(matched, doc)
	}
	return matched
}

// CriticalDocument annotates a document with its resolved vendor and derived
// expiration state for the attention list.
type CriticalDocument struct {
	models.Document
	Vendor         *models.Vendor        `json:"vendor,omitempty"`
	Days           int                   `json:"days"`
	Classification expiry.Classification `json:"classification"`
}

// CriticalDocuments returns the documents due within 30 days (expired ones
// included), most urgent first, capped at ten entries.
func CriticalDocuments(documents []models.Document, vendors []models.Vendor, now time.Time) []CriticalDocument {
	byID := vendorsByID(vendors)

	critical := make([]CriticalDocument, 0, len(documents))
	for _, doc := range documents {
		days := expiry.DaysUntil(doc.ExpiresAt, now)
		if days > 30 {
			continue
		}
		entry := CriticalDocument{
			Document:       doc,
			Days:           days,
			Classification: expiry.Classify(doc.ExpiresAt, now),
		}
		if vendor, ok := byID[doc.VendorID]; ok {
			v := vendor
			entry.Vendor = &v
		}
		critical = append(critical, entry)
	}

	sort.SliceStable(critical, func(i, j int) bool {
		return critical[i].Days < critical[j].Days
	})
	if len(critical) > 10 {
		critical = critical[:10]
	}
	return critical
}

// VendorSummary is a vendor annotated with how many documents it owns.
type VendorSummary struct {
	models.Vendor
	DocumentCount int `json:"documentCount"`
}

// VendorSummaries annotates each vendor with its document count, preserving
// the stored vendor order.
func VendorSummaries(vendors []models.Vendor, documents []models.Document) []VendorSummary {
	counts := make(map[string]int, len(vendors))
	for _, doc := range documents {
		counts[doc.VendorID]++
	}
	summaries := make([]VendorSummary, 0, len(vendors))
	for _, vendor := range vendors {
		summaries = append(summaries, VendorSummary{Vendor: vendor, DocumentCount: counts[vendor.ID]})
	}
	return summaries
}

func vendorsByID(vendors []models.Vendor) map[string]models.Vendor {
	byID := make(map[string]models.Vendor, len(vendors))
	for _, vendor := range vendors {
		byID[vendor.ID] = vendor
	}
	return byID
}
