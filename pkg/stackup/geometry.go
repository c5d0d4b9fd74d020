package stackup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/OpenTraceLab/pindelay/pkg/txline"
)

// Parameter groups per layer kind. A group is all-or-nothing: naming part of
// it is a file error, reported with the missing parameter names.
var (
	microstripParams          = []string{"er", "height", "width"}
	striplineSymmetricParams  = []string{"er"}
	striplineAsymmetricParams = []string{"er1", "h1", "er2", "h2"}
)

// Geometry resolves a layer's parameters into a transmission-line geometry,
// enforcing the parameter groups for its kind.
func (l *Layer) Geometry() (txline.Geometry, error) {
	params := l.paramMap()
	switch strings.ToLower(l.Kind) {
	case "microstrip":
		if err := checkGroup(l, params, microstripParams); err != nil {
			return nil, err
		}
		return txline.Microstrip{
			Er:     params["er"],
			Height: params["height"],
			Width:  params["width"],
		}, nil
	case "stripline":
		if anyPresent(params, striplineAsymmetricParams) {
			if err := checkGroup(l, params, striplineAsymmetricParams); err != nil {
				return nil, err
			}
			return txline.AsymmetricStripline{
				Er1: params["er1"], H1: params["h1"],
				Er2: params["er2"], H2: params["h2"],
			}, nil
		}
		if err := checkGroup(l, params, striplineSymmetricParams); err != nil {
			return nil, err
		}
		return txline.Stripline{Er: params["er"]}, nil
	default:
		return nil, fmt.Errorf("stackup: layer %s has unknown kind %q", l.Name, l.Kind)
	}
}

func anyPresent(params map[string]float64, names []string) bool {
	for _, n := range names {
		if _, ok := params[n]; ok {
			return true
		}
	}
	return false
}

// checkGroup verifies that exactly the named parameters are present.
func checkGroup(l *Layer, params map[string]float64, names []string) error {
	var missing []string
	for _, n := range names {
		if _, ok := params[n]; !ok {
			missing = append(missing, n)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("stackup: %s layer %s missing parameters: %s",
			strings.ToLower(l.Kind), l.Name, strings.Join(missing, ", "))
	}

	allowed := make(map[string]bool, len(names))
	for _, n := range names {
		allowed[n] = true
	}
	var unknown []string
	for n := range params {
		if !allowed[n] {
			unknown = append(unknown, n)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("stackup: %s layer %s has unknown parameters: %s",
			strings.ToLower(l.Kind), l.Name, strings.Join(unknown, ", "))
	}
	return nil
}
