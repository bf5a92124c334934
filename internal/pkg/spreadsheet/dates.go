package spreadsheet

import (
	"strconv"
	"strings"
	"time"
)

// excelEpoch is day 0 of the 1900 date system. The two-day offset from
// 1900-01-01 accounts for the inherited Lotus leap-year bug.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are the ISO-like string formats accepted from date cells.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"02-01-2006",
	"02/01/2006",
	"01/02/2006",
	"2 Jan 2006",
}

// parseDate converts a date cell to a YYYY-MM-DD string. It accepts ISO-like
// strings and spreadsheet numeric date serials (days since the spreadsheet
// epoch). Unparseable values become "" - never an error.
func parseDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02")
		}
	}

	// Numeric cell: an Excel date serial
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		return serialToDate(serial)
	}

	return ""
}

// serialToDate converts an Excel date serial to a YYYY-MM-DD string. Serials
// at or below zero are rejected; fractional day parts (time of day) are
// dropped.
func serialToDate(serial float64) string {
	if serial <= 0 {
		return ""
	}
	return excelEpoch.AddDate(0, 0, int(serial)).Format("2006-01-02")
}
