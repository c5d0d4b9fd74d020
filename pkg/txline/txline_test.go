package txline

import (
	"errors"
	"math"
	"testing"

	"github.com/OpenTraceLab/pindelay/pkg/units"
)

func TestStriplineIsIdentity(t *testing.T) {
	for _, er := range []float64{1, 2.2, 3.66, 4.16, 10.2} {
		got, err := Stripline{Er: er}.EffectiveEr()
		if err != nil {
			t.Fatalf("Stripline{%v}.EffectiveEr() error: %v", er, err)
		}
		if got != er {
			t.Errorf("Stripline{%v}.EffectiveEr() = %v, want identity", er, got)
		}
	}
}

func TestAsymmetricStriplineWeightedAverage(t *testing.T) {
	s := AsymmetricStripline{Er1: 4.2, H1: 5.0, Er2: 4.6, H2: 7.0}
	got, err := s.EffectiveEr()
	if err != nil {
		t.Fatalf("EffectiveEr() error: %v", err)
	}
	want := (4.2*5.0 + 4.6*7.0) / 12.0
	if math.Abs(got-want) > 1e-12 {
		t.Errorf("EffectiveEr() = %v, want %v", got, want)
	}
}

func TestAsymmetricStriplineCommutative(t *testing.T) {
	tests := []AsymmetricStripline{
		{Er1: 4.2, H1: 5.0, Er2: 4.6, H2: 7.0},
		{Er1: 3.0, H1: 1.0, Er2: 9.8, H2: 0.5},
		{Er1: 4.16, H1: 3.91, Er2: 4.16, H2: 3.91},
	}
	for _, s := range tests {
		swapped := AsymmetricStripline{Er1: s.Er2, H1: s.H2, Er2: s.Er1, H2: s.H1}
		a, err1 := s.EffectiveEr()
		b, err2 := swapped.EffectiveEr()
		if err1 != nil || err2 != nil {
			t.Fatalf("unexpected error: %v / %v", err1, err2)
		}
		if math.Abs(a-b) > 1e-12 {
			t.Errorf("swapping dielectric pairs changed result: %v vs %v", a, b)
		}
	}
}

func TestAsymmetricStriplineZeroHeight(t *testing.T) {
	_, err := AsymmetricStripline{Er1: 4.2, H1: 0, Er2: 4.6, H2: 0}.EffectiveEr()
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError for zero combined height, got %v", err)
	}
}

func TestMicrostripWorkedExample(t *testing.T) {
	// FR-4 outer layer: er=4.16, h=3.91, w=6.16 (same unit).
	m := Microstrip{Er: 4.16, Height: 3.91, Width: 6.16}
	eff, err := m.EffectiveEr()
	if err != nil {
		t.Fatalf("EffectiveEr() error: %v", err)
	}
	if math.Abs(eff-3.12) > 0.005 {
		t.Errorf("EffectiveEr() = %v, want ~3.12", eff)
	}

	tpd, err := PropagationDelay(eff)
	if err != nil {
		t.Fatalf("PropagationDelay() error: %v", err)
	}
	// ~5.89 ps/mm
	if psPerMM := tpd * 1e12 / 1000; math.Abs(psPerMM-5.89) > 0.01 {
		t.Errorf("propagation delay = %v ps/mm, want ~5.89", psPerMM)
	}
}

func TestMicrostripBounds(t *testing.T) {
	// For any h/w > 0 the effective constant sits strictly between
	// (er+1)/2 and er.
	tests := []Microstrip{
		{Er: 4.16, Height: 3.91, Width: 6.16},
		{Er: 2.2, Height: 10, Width: 5},
		{Er: 9.8, Height: 0.1, Width: 20},
	}
	for _, m := range tests {
		eff, err := m.EffectiveEr()
		if err != nil {
			t.Fatalf("EffectiveEr() error: %v", err)
		}
		lower, upper := (m.Er+1)/2, m.Er
		if eff <= lower || eff >= upper {
			t.Errorf("Microstrip%+v effective er %v outside (%v, %v)", m, eff, lower, upper)
		}
	}
}

func TestMicrostripZeroWidth(t *testing.T) {
	for _, w := range []float64{0, -1} {
		_, err := Microstrip{Er: 4.16, Height: 3.91, Width: w}.EffectiveEr()
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("width %v: expected DomainError, got %v", w, err)
		}
	}
}

func TestPropagationDelayFR4(t *testing.T) {
	tpd, err := PropagationDelay(4.16)
	if err != nil {
		t.Fatalf("PropagationDelay(4.16) error: %v", err)
	}
	if math.Abs(tpd-6.799e-9) > 0.005e-9 {
		t.Errorf("PropagationDelay(4.16) = %v s/m, want ~6.799e-9", tpd)
	}
}

func TestPropagationDelayNegative(t *testing.T) {
	_, err := PropagationDelay(-0.5)
	var de *DomainError
	if !errors.As(err, &de) {
		t.Fatalf("expected DomainError for negative effective er, got %v", err)
	}
}

func TestTraceLengthWorkedExample(t *testing.T) {
	// Pin A1 of the 484-pin example package: 128.17 ps over er=4.16
	// stripline comes out at ~741.7 mils (~18.84 mm).
	tpd, err := PropagationDelay(4.16)
	if err != nil {
		t.Fatalf("PropagationDelay error: %v", err)
	}

	mils, err := TraceLength(128.17, tpd, units.Mil)
	if err != nil {
		t.Fatalf("TraceLength error: %v", err)
	}
	if math.Abs(mils-741.7) > 0.5 {
		t.Errorf("TraceLength in mils = %v, want ~741.7", mils)
	}

	mm, err := TraceLength(128.17, tpd, units.Millimeter)
	if err != nil {
		t.Fatalf("TraceLength error: %v", err)
	}
	if math.Abs(mm-18.84) > 0.02 {
		t.Errorf("TraceLength in mm = %v, want ~18.84", mm)
	}
}

func TestTraceLengthNonPositiveDelay(t *testing.T) {
	for _, tpd := range []float64{0, -1e-9} {
		_, err := TraceLength(100, tpd, units.Mil)
		var de *DomainError
		if !errors.As(err, &de) {
			t.Errorf("tpd %v: expected DomainError, got %v", tpd, err)
		}
	}
}
