// Package handler — export.go implements GET /export.
// Returns every trip and itinerary item as a flat table.
// Supports content negotiation via ?format=csv (CSV) or default (JSON).
package handler

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/bhanukaonline/tripmate/internal/domain"
)

// csvHeaders defines the column names written as the first row of any CSV export.
var csvHeaders = []string{
	"trip_id", "trip_name", "trip_start_date", "trip_end_date", "trip_budget",
	"item_kind", "item_id", "item_name", "item_date", "item_end",
	"item_budget", "item_notes",
}

// getExport handles GET /export.
func (s *Server) getExport(w http.ResponseWriter, r *http.Request) {
	rows, err := s.export.Export(r.Context())
	if err != nil {
		respondError(w, err, "")
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		writeCSV(w, rows)
		return
	}
	writeJSON(w, http.StatusOK, rows)
}

// writeCSV encodes export rows as CSV.
func writeCSV(w http.ResponseWriter, rows []domain.ExportRow) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)

	// bytes.Buffer writes never fail; csv.Writer errors surface via Flush+Error.
	cw.Write(csvHeaders)
	for _, r := range rows {
		cw.Write(csvRecord(r))
	}
	cw.Flush()

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="tripmate-export.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// csvRecord encodes an ExportRow as a flat string slice.
// Nil time pointers are encoded as empty strings.
func csvRecord(r domain.ExportRow) []string {
	return []string{
		r.TripID,
		r.TripName,
		r.TripStartDate,
		r.TripEndDate,
		formatBudget(r.TripBudget),
		r.ItemKind,
		r.ItemID,
		r.ItemName,
		formatOptionalTime(r.ItemDate),
		formatOptionalTime(r.ItemEnd),
		formatBudget(r.ItemBudget),
		r.ItemNotes,
	}
}

// formatOptionalTime returns the RFC3339 representation of t, or "" if t is nil.
func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func formatBudget(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}
