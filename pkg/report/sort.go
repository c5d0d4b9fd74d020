package report

import (
	"sort"
	"strconv"

	"github.com/OpenTraceLab/pindelay/pkg/pkgfile"
)

// sortedPins orders pins the way a BGA ballout reads: row letters first,
// then the numeric column (A1, A2, ..., A10 rather than A1, A10, A2). Pin
// numbers that do not follow the letters-then-digits shape fall back to
// plain string order after the conforming ones.
func sortedPins(table *pkgfile.PackageTable) []*pkgfile.PinRecord {
	pins := make([]*pkgfile.PinRecord, 0, len(table.Pins))
	for _, p := range table.Pins {
		pins = append(pins, p)
	}
	sort.Slice(pins, func(i, j int) bool {
		return lessPin(pins[i].Number, pins[j].Number)
	})
	return pins
}

func lessPin(a, b string) bool {
	ra, ca, okA := splitPin(a)
	rb, cb, okB := splitPin(b)
	if okA && okB {
		// Ballout rows run A..Y before AA..AY, so shorter row names
		// sort first.
		if len(ra) != len(rb) {
			return len(ra) < len(rb)
		}
		if ra != rb {
			return ra < rb
		}
		return ca < cb
	}
	if okA != okB {
		return okA
	}
	return a < b
}

// splitPin splits a BGA-style designator into its row letters and column
// number, e.g. "AB12" into ("AB", 12).
func splitPin(s string) (row string, col int, ok bool) {
	i := 0
	for i < len(s) && s[i] >= 'A' && s[i] <= 'Z' {
		i++
	}
	if i == 0 || i == len(s) {
		return "", 0, false
	}
	col, err := strconv.Atoi(s[i:])
	if err != nil {
		return "", 0, false
	}
	return s[:i], col, true
}
