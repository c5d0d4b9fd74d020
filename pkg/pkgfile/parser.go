// Package pkgfile parses vendor-exported package pin/delay tables.
//
// The export is comma-delimited text: any number of leading comment ("#") or
// blank rows, one header row naming the columns, then one data row per
// physical pin. Non-signal pins carry empty delay fields. The parser is
// deliberately tolerant of short or malformed data rows; only a missing
// header or a missing required column fails the whole file.
package pkgfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrNoHeader is returned when the stream ends before a header row is seen.
// The accompanying PackageTable is empty but usable.
var ErrNoHeader = errors.New("no header row found")

// Required header column names, exactly as the vendor writes them.
const (
	colPinNumber = "Pin Number"
	colIOBank    = "IO Bank"
	colSite      = "Site"
	colSiteType  = "Site Type"
	colMinDelay  = "Min Trace Delay (ps)"
	colMaxDelay  = "Max Trace Delay (ps)"
)

const commentMarker = "#"

// columns holds the resolved position of each required field in the header.
type columns struct {
	pin, bank, site, siteType, minDelay, maxDelay int
}

// ParseFile opens and parses a package file. The file handle is closed
// before the function returns.
func ParseFile(path string) (*PackageTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open package file: %w", err)
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		return table, fmt.Errorf("parse %s: %w", path, err)
	}
	return table, nil
}

// Parse reads a package export from r and builds the pin table. On
// ErrNoHeader the returned table is empty but non-nil, so a caller may
// choose to treat the condition as recoverable.
func Parse(r io.Reader) (*PackageTable, error) {
	table := newPackageTable()

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // rows are ragged; short rows are handled below
	cr.LazyQuotes = true

	cols, err := findHeader(cr)
	if err != nil {
		return table, err
	}

	// The rightmost required column decides whether a row is long enough
	// to be a data row at all.
	need := maxIndex(cols) + 1

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if isMalformedRow(err) {
			// A structurally broken row is a local problem, the
			// rest of the file is still good.
			continue
		}
		if err != nil {
			return table, fmt.Errorf("read package file: %w", err)
		}
		if len(record) < need {
			continue
		}
		table.add(pinFromRecord(record, cols))
	}

	return table, nil
}

// isMalformedRow reports whether a csv.Reader error is confined to one row.
// Anything else comes from the underlying reader and would repeat on every
// subsequent Read, so the caller must stop instead of skipping.
func isMalformedRow(err error) bool {
	var perr *csv.ParseError
	return errors.As(err, &perr)
}

// findHeader consumes rows until it sees the header (any row with a
// "Pin Number" field) and resolves the required column positions. Leading
// blank rows and comment rows are skipped.
func findHeader(cr *csv.Reader) (columns, error) {
	for {
		record, err := cr.Read()
		if err == io.EOF {
			return columns{}, ErrNoHeader
		}
		if isMalformedRow(err) {
			continue
		}
		if err != nil {
			return columns{}, fmt.Errorf("read package file: %w", err)
		}
		if len(record) == 0 || strings.HasPrefix(strings.TrimSpace(record[0]), commentMarker) {
			continue
		}
		if !containsField(record, colPinNumber) {
			continue
		}
		return resolveColumns(record)
	}
}

func containsField(record []string, name string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) == name {
			return true
		}
	}
	return false
}

func resolveColumns(header []string) (columns, error) {
	index := func(name string) (int, error) {
		for i, f := range header {
			if strings.TrimSpace(f) == name {
				return i, nil
			}
		}
		return 0, fmt.Errorf("header column %q not found", name)
	}

	var cols columns
	var err error
	if cols.pin, err = index(colPinNumber); err != nil {
		return cols, err
	}
	if cols.bank, err = index(colIOBank); err != nil {
		return cols, err
	}
	if cols.site, err = index(colSite); err != nil {
		return cols, err
	}
	if cols.siteType, err = index(colSiteType); err != nil {
		return cols, err
	}
	if cols.minDelay, err = index(colMinDelay); err != nil {
		return cols, err
	}
	if cols.maxDelay, err = index(colMaxDelay); err != nil {
		return cols, err
	}
	return cols, nil
}

func maxIndex(c columns) int {
	max := c.pin
	for _, i := range []int{c.bank, c.site, c.siteType, c.minDelay, c.maxDelay} {
		if i > max {
			max = i
		}
	}
	return max
}

func pinFromRecord(record []string, cols columns) *PinRecord {
	pin := &PinRecord{
		Number:   strings.TrimSpace(record[cols.pin]),
		Bank:     fieldOrNA(record[cols.bank]),
		Site:     fieldOrNA(record[cols.site]),
		SiteType: fieldOrNA(record[cols.siteType]),
	}

	minDelay, badMin := parseDelay(record[cols.minDelay])
	maxDelay, badMax := parseDelay(record[cols.maxDelay])

	// An unparseable delay value voids both delays for the pin: a half
	// garbled row is not trusted. Empty fields simply stay absent, which
	// is how non-signal pins (ground, power) arrive.
	if badMin || badMax {
		return pin
	}
	pin.MinDelay = minDelay
	pin.MaxDelay = maxDelay

	return pin
}

func fieldOrNA(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return NotApplicable
	}
	return s
}

// parseDelay returns the parsed value (nil for an empty field) and whether a
// non-empty field failed to parse.
func parseDelay(s string) (*float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, true
	}
	return &v, false
}
