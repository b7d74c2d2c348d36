package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrymomot/clubledger/pkg/importer"
)

var errNoHeader = errors.New("csv file has no header row")

// csvColumns maps normalized header names to row setters. Headers match the
// client JSON field names case-insensitively; a few aliases are accepted.
var csvColumns = map[string]func(*importer.Row, string){
	"fullname":         func(r *importer.Row, v string) { r.FullName = v },
	"name":             func(r *importer.Row, v string) { r.FullName = v },
	"parentname":       func(r *importer.Row, v string) { r.ParentName = v },
	"phone":            func(r *importer.Row, v string) { r.Phone = v },
	"whatsapp":         func(r *importer.Row, v string) { r.WhatsApp = v },
	"telegram":         func(r *importer.Row, v string) { r.Telegram = v },
	"instagram":        func(r *importer.Row, v string) { r.Instagram = v },
	"area":             func(r *importer.Row, v string) { r.Area = v },
	"group":            func(r *importer.Row, v string) { r.Group = v },
	"subscriptionplan": func(r *importer.Row, v string) { r.SubscriptionPlan = v },
	"plan":             func(r *importer.Row, v string) { r.SubscriptionPlan = v },
	"payamount":        func(r *importer.Row, v string) { r.PayAmount = v },
	"paydate":          func(r *importer.Row, v string) { r.PayDate = v },
	"startdate":        func(r *importer.Row, v string) { r.StartDate = v },
	"remaininglessons": func(r *importer.Row, v string) { r.RemainingLessons = v },
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(h)
}

// readRows parses a CSV file with a header row into import rows. Unknown
// columns are ignored. Row.Line is the 1-based line of the record.
func readRows(r io.Reader, comma rune) ([]importer.Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errNoHeader
	}
	if err != nil {
		return nil, err
	}

	setters := make([]func(*importer.Row, string), len(header))
	for i, h := range header {
		setters[i] = csvColumns[normalizeHeader(h)]
	}

	var rows []importer.Row
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)

		row := importer.Row{Line: line}
		empty := true
		for i, v := range rec {
			v = strings.TrimSpace(v)
			if v != "" {
				empty = false
			}
			if i < len(setters) && setters[i] != nil {
				setters[i](&row, v)
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}
}

func parseComma(s string) (rune, error) {
	switch s {
	case ",", "":
		return ',', nil
	case ";":
		return ';', nil
	case "tab", `\t`:
		return '\t', nil
	}
	return 0, fmt.Errorf("unsupported -delimiter %q", s)
}
