package service

import (
	"context"
	"strconv"
	"strings"
	"time"

	"vendortrack/internal/audit"
	"vendortrack/internal/tracker/expiry"
	"vendortrack/pkg/requestcontext"
)

var exportHeader = []string{"Vendor", "Document", "Type", "Issued Date", "Expiration Date", "Days Until Expiry", "Status"}

// ExportCSV renders every document as a CSV row with its vendor name and
// derived expiration state, all fields double-quoted. One audit entry records
// the export with its row count.
func (s *Service) ExportCSV(ctx context.Context) (string, error) {
	start := time.Now()
	snap, err := s.store.LoadAll(ctx)
	if err != nil {
		return "", err
	}
	now := requestcontext.Now(ctx)

	vendorNames := make(map[string]string, len(snap.Vendors))
	for _, vendor := range snap.Vendors {
		vendorNames[vendor.ID] = vendor.Name
	}

	var b strings.Builder
	writeCSVRow(&b, exportHeader)
	for _, doc := range snap.Documents {
		issued := ""
		if doc.IssuedAt != nil {
			issued = doc.IssuedAt.String()
		}
		vendorName, ok := vendorNames[doc.VendorID]
		if !ok {
			vendorName = "Unknown"
		}
		writeCSVRow(&b, []string{
			vendorName,
			doc.Title,
			string(doc.Type),
			issued,
			doc.ExpiresAt.String(),
			strconv.Itoa(expiry.DaysUntil(doc.ExpiresAt, now)),
			expiry.Classify(doc.ExpiresAt, now).Label,
		})
	}

	s.recordAudit(ctx, audit.ActionExport, "documents", "all", map[string]string{
		"format": "csv",
		"count":  strconv.Itoa(len(snap.Documents)),
	})
	if s.metrics != nil {
		s.metrics.IncrementExportsGenerated()
		s.metrics.ObserveExport(start)
	}
	return b.String(), nil
}

// writeCSVRow quotes every field unconditionally, doubling embedded quotes.
func writeCSVRow(b *strings.Builder, fields []string) {
	for i, field := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(field, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
