// Package units converts lengths between the units used in package delay
// reports: millimeters and mils (thousandths of an inch).
package units

import (
	"fmt"
	"strings"
)

// Unit is a linear length unit.
type Unit string

const (
	Millimeter Unit = "mm"
	Mil        Unit = "mils"
)

// 1 mil is exactly 0.0254 mm.
const milsPerMillimeter = 1.0 / 0.0254

// ParseUnit resolves a unit selector from the command line.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "millimeter", "millimeters":
		return Millimeter, nil
	case "mil", "mils":
		return Mil, nil
	default:
		return "", fmt.Errorf("unknown length unit %q (use mm or mils)", s)
	}
}

// Convert converts value from one unit to another. Converting a unit to
// itself returns the value unchanged rather than round-tripping through the
// other unit, so no floating-point drift is introduced. Values are not
// domain-checked; negative lengths pass through.
func Convert(value float64, from, to Unit) float64 {
	if from == to {
		return value
	}
	if from == Millimeter && to == Mil {
		return value * milsPerMillimeter
	}
	return value * 0.0254
}
