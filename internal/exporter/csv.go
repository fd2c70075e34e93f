// Package exporter serializes exported expenses.
package exporter

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pocketledger/backend/internal/models"
	"golang.org/x/text/language"
)

const (
	ContentType = "text/csv"

	// ISODate is used for all locales without a specific date layout.
	ISODate = "2006-01-02"
)

// Header is the first record of every CSV export.
var Header = []string{"Date", "Amount", "Category", "Description", "Person"}

// Supported locales and their date layouts. The first entry is the fallback.
var (
	locales = []language.Tag{
		language.Und,
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
		language.Japanese,
	}

	layouts = []string{
		ISODate,
		"1/2/2006",
		"02/01/2006",
		"2.1.2006",
		"02/01/2006",
		"2006/1/2",
	}

	matcher = language.NewMatcher(locales)
)

// Options control the rendering of an export.
type Options struct {
	Location *time.Location // Time zone the dates are rendered in. Defaults to UTC
	Locale   string         // BCP 47 language tag or Accept-Language value selecting the date layout
}

// DateLayout returns the date layout for the locale.
func DateLayout(locale string) string {
	if locale == "" {
		return ISODate
	}

	tags, _, err := language.ParseAcceptLanguage(locale)
	if err != nil || len(tags) == 0 {
		return ISODate
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return ISODate
	}

	return layouts[index]
}

// FileName returns the name of the export file for the download.
func FileName(custom bool) string {
	if custom {
		return "expenses-custom.csv"
	}
	return "expenses-last30days.csv"
}

// WriteCSV writes the expenses as CSV to w.
//
// The date is written as a day in the time zone of the options. Amounts are
// written as plain decimals. Description and person are always quoted, other
// fields only when needed.
func WriteCSV(w io.Writer, expenses []models.Expense, opts Options) error {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	layout := DateLayout(opts.Locale)

	bw := bufio.NewWriter(w)

	header := csv.NewWriter(bw)
	if err := header.Write(Header); err != nil {
		return fmt.Errorf("could not write CSV header: %w", err)
	}
	header.Flush()

	for _, e := range expenses {
		writeField(bw, e.Date.In(loc).Format(layout), false)
		bw.WriteByte(',')
		writeField(bw, e.Amount.String(), false)
		bw.WriteByte(',')
		writeField(bw, e.Category, false)
		bw.WriteByte(',')
		writeField(bw, e.Description, true)
		bw.WriteByte(',')
		writeField(bw, e.Person, true)
		bw.WriteByte('\n')
	}

	// bufio.Writer keeps the first error, Flush returns it
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("could not write CSV: %w", err)
	}

	return nil
}

// writeField writes a field with RFC 4180 quoting. With force, the field is
// quoted even if it does not contain special characters.
func writeField(w *bufio.Writer, field string, force bool) {
	if !force && !strings.ContainsAny(field, ",\"\r\n") && !strings.HasPrefix(field, " ") {
		w.WriteString(field)
		return
	}

	w.WriteByte('"')
	w.WriteString(strings.ReplaceAll(field, `"`, `""`))
	w.WriteByte('"')
}
