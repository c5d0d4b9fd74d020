// Package txline models PCB transmission-line geometries and converts package
// delays into equivalent trace lengths.
//
// Two closed-form approximations are provided: microstrip (outer-layer trace,
// one reference plane below, air above) and stripline (trace embedded between
// two reference planes). Each geometry yields an effective dielectric
// constant, from which the propagation delay per unit length follows as
// √εr_eff / c.
package txline

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/pindelay/pkg/units"
)

// SpeedOfLight is c in meters per second, exact by definition.
const SpeedOfLight = 299792458.0

// DomainError reports a geometry or delay value outside the physical domain
// of a calculation (zero trace width, negative dielectric, and so on).
type DomainError struct {
	Quantity string
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("txline: %s %s", e.Quantity, e.Reason)
}

// Microstrip is an outer-layer trace geometry. Height and Width must be in
// the same linear unit; only their ratio enters the calculation.
type Microstrip struct {
	Er     float64 // substrate relative dielectric constant
	Height float64 // dielectric height between trace and reference plane
	Width  float64 // trace width
}

// EffectiveEr returns the effective dielectric constant of the microstrip
// using the standard closed-form approximation
//
//	εr_eff = (εr+1)/2 + (εr-1)/2 · 1/√(1 + 12·h/w)
//
// which accounts for the field splitting between substrate and air.
func (m Microstrip) EffectiveEr() (float64, error) {
	if m.Width <= 0 {
		return 0, &DomainError{Quantity: "trace width", Reason: "must be positive"}
	}
	return (m.Er+1)/2 + (m.Er-1)/2/math.Sqrt(1+12*m.Height/m.Width), nil
}

// Stripline is a trace symmetrically embedded in a single dielectric. The
// field is fully contained, so the effective dielectric constant is the
// substrate's own.
type Stripline struct {
	Er float64
}

// EffectiveEr returns the substrate dielectric constant unchanged.
func (s Stripline) EffectiveEr() (float64, error) {
	return s.Er, nil
}

// AsymmetricStripline is a trace between two reference planes with a
// different dielectric above and below. The two (εr, h) pairs are
// interchangeable; swapping them does not change the result.
type AsymmetricStripline struct {
	Er1, H1 float64
	Er2, H2 float64
}

// EffectiveEr returns the thickness-weighted average of the two dielectrics.
func (s AsymmetricStripline) EffectiveEr() (float64, error) {
	total := s.H1 + s.H2
	if total <= 0 {
		return 0, &DomainError{Quantity: "combined dielectric height", Reason: "must be positive"}
	}
	return (s.Er1*s.H1 + s.Er2*s.H2) / total, nil
}

// Geometry is any transmission-line cross-section that can produce an
// effective dielectric constant.
type Geometry interface {
	EffectiveEr() (float64, error)
}

// PropagationDelay returns the signal propagation delay in seconds per meter
// for a line with the given effective dielectric constant.
func PropagationDelay(effEr float64) (float64, error) {
	if effEr < 0 {
		return 0, &DomainError{Quantity: "effective dielectric constant", Reason: "must not be negative"}
	}
	return math.Sqrt(effEr) / SpeedOfLight, nil
}

// TraceLength converts a package delay in picoseconds into the equivalent
// trace length in the requested output unit, given a propagation delay in
// seconds per meter.
func TraceLength(delayPS, tpd float64, out units.Unit) (float64, error) {
	if tpd <= 0 {
		return 0, &DomainError{Quantity: "propagation delay", Reason: "must be positive"}
	}
	meters := delayPS * 1e-12 / tpd
	return units.Convert(meters*1000, units.Millimeter, out), nil
}
