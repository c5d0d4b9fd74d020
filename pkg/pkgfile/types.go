package pkgfile

// NotApplicable is the display sentinel substituted for empty categorical
// fields (bank, site, site type). It marks an unassigned attribute on a real
// pin; it is unrelated to absent delay values, which are modeled as nil
// pointers on PinRecord.
const NotApplicable = "N/A"

// PinRecord is one physical pin from a vendor package export. MinDelay and
// MaxDelay are in picoseconds; nil means the field was empty or unparseable,
// which is how non-signal pins (ground, power) appear in the export. Absent
// delays must flow downstream as not-applicable, never as zero.
type PinRecord struct {
	Number   string // package pin designator, e.g. "A1" (unique per file)
	Bank     string // IO bank, NotApplicable when unassigned
	Site     string
	SiteType string
	MinDelay *float64
	MaxDelay *float64
}

// Average returns the arithmetic mean of the min and max delay. It is
// defined exactly when both delays are present.
func (p *PinRecord) Average() (float64, bool) {
	if p.MinDelay == nil || p.MaxDelay == nil {
		return 0, false
	}
	return (*p.MinDelay + *p.MaxDelay) / 2, true
}

// PackageTable holds every pin parsed from one package file, keyed by pin
// number. MaxPinWidth is the longest pin number string seen, floored at 10,
// and exists only so report columns line up; it carries no pin semantics.
type PackageTable struct {
	Pins        map[string]*PinRecord
	MaxPinWidth int
}

// minPinWidth keeps report columns readable for empty or short tables.
const minPinWidth = 10

func newPackageTable() *PackageTable {
	return &PackageTable{
		Pins:        make(map[string]*PinRecord),
		MaxPinWidth: minPinWidth,
	}
}

func (t *PackageTable) add(p *PinRecord) {
	// Duplicate pin numbers keep the last occurrence. Vendor exports are
	// not supposed to repeat pins, but when they do the later row is
	// taken as the correction.
	t.Pins[p.Number] = p
	if len(p.Number) > t.MaxPinWidth {
		t.MaxPinWidth = len(p.Number)
	}
}
