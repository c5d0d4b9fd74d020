package units

import (
	"math"
	"testing"
)

func TestConvertExact(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to Unit
		want     float64
	}{
		{"mils to mm", 1000, Mil, Millimeter, 25.4},
		{"mm to mils", 25.4, Millimeter, Mil, 1000},
		{"negative passes through", -10, Millimeter, Mil, -10 / 0.0254},
		{"zero", 0, Mil, Millimeter, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.value, tt.from, tt.to)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Convert(%v, %s, %s) = %v, want %v", tt.value, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestConvertIdentity(t *testing.T) {
	// Same-unit conversion must return the input bit-for-bit, not a
	// round-trip through the other unit.
	for _, u := range []Unit{Millimeter, Mil} {
		for _, v := range []float64{0, 1, -3.75, 1234.5678, 1e-9} {
			if got := Convert(v, u, u); got != v {
				t.Errorf("Convert(%v, %s, %s) = %v, want exact identity", v, u, u, got)
			}
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	for _, v := range []float64{0.001, 1, 18.839, 100, 74170.25, -42} {
		got := Convert(Convert(v, Millimeter, Mil), Mil, Millimeter)
		if math.Abs(got-v) > 1e-9*math.Max(1, math.Abs(v)) {
			t.Errorf("round trip of %v gave %v", v, got)
		}
	}
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		in      string
		want    Unit
		wantErr bool
	}{
		{"mm", Millimeter, false},
		{"millimeters", Millimeter, false},
		{"MILS", Mil, false},
		{"mil", Mil, false},
		{" mils ", Mil, false},
		{"inches", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseUnit(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseUnit(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseUnit(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
