// Package report renders the human-readable per-pin delay report. It is
// presentation only: sorting, column sizing, and the "N/A" rendering of
// absent values all live here, never in the data model.
package report

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/OpenTraceLab/pindelay/pkg/pkgfile"
	"github.com/OpenTraceLab/pindelay/pkg/txline"
	"github.com/OpenTraceLab/pindelay/pkg/units"
)

// Line is one resolved transmission-line geometry: its effective dielectric
// constant and propagation delay in seconds per meter.
type Line struct {
	Label       string
	EffectiveEr float64
	Delay       float64
}

// NewLine derives a Line from a geometry. A geometry whose propagation
// delay comes out non-positive (εr = 0) is rejected here, before any report
// output is written, rather than at the first signal pin.
func NewLine(label string, g txline.Geometry) (*Line, error) {
	eff, err := g.EffectiveEr()
	if err != nil {
		return nil, err
	}
	tpd, err := txline.PropagationDelay(eff)
	if err != nil {
		return nil, err
	}
	if tpd <= 0 {
		return nil, &txline.DomainError{Quantity: "propagation delay", Reason: "must be positive"}
	}
	return &Line{Label: label, EffectiveEr: eff, Delay: tpd}, nil
}

// Options selects the report contents. Microstrip and Stripline are
// optional; when present each adds a trace-length column in Unit.
type Options struct {
	Unit       units.Unit
	Microstrip *Line
	Stripline  *Line
	Stats      bool
}

// Write renders the stack-up summary (when geometry is supplied) followed by
// the per-pin table.
func Write(w io.Writer, table *pkgfile.PackageTable, opts Options) error {
	if opts.Unit == "" {
		opts.Unit = units.Mil
	}

	writeSummary(w, opts)

	pins := sortedPins(table)
	widths := columnWidths(table, pins)

	writeTableHeader(w, widths, opts)
	for _, pin := range pins {
		if err := writePinRow(w, pin, widths, opts); err != nil {
			return err
		}
	}

	if opts.Stats {
		writeStats(w, pins)
	}
	return nil
}

// psPerMM converts a propagation delay in s/m to ps/mm for display.
func psPerMM(tpd float64) float64 {
	return tpd * 1e12 / 1000
}

func writeSummary(w io.Writer, opts Options) {
	if opts.Microstrip == nil && opts.Stripline == nil {
		return
	}
	fmt.Fprintf(w, "Stack-up:\n")
	for _, line := range []*Line{opts.Microstrip, opts.Stripline} {
		if line == nil {
			continue
		}
		fmt.Fprintf(w, "  %-12s effective er %.3f, propagation delay %.3f ps/mm\n",
			line.Label, line.EffectiveEr, psPerMM(line.Delay))
	}
	fmt.Fprintln(w)
}

type widths struct {
	pin, bank, site, siteType int
}

func columnWidths(table *pkgfile.PackageTable, pins []*pkgfile.PinRecord) widths {
	ws := widths{
		pin:      table.MaxPinWidth,
		bank:     len("IO Bank"),
		site:     len("Site"),
		siteType: len("Site Type"),
	}
	for _, p := range pins {
		if len(p.Bank) > ws.bank {
			ws.bank = len(p.Bank)
		}
		if len(p.Site) > ws.site {
			ws.site = len(p.Site)
		}
		if len(p.SiteType) > ws.siteType {
			ws.siteType = len(p.SiteType)
		}
	}
	return ws
}

const delayColWidth = 12

func writeTableHeader(w io.Writer, ws widths, opts Options) {
	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s  %*s  %*s  %*s",
		ws.pin, "Pin",
		ws.bank, "IO Bank",
		ws.site, "Site",
		ws.siteType, "Site Type",
		delayColWidth, "Min (ps)",
		delayColWidth, "Max (ps)",
		delayColWidth, "Avg (ps)")
	for _, line := range []*Line{opts.Microstrip, opts.Stripline} {
		if line != nil {
			fmt.Fprintf(w, "  %*s", delayColWidth+6, fmt.Sprintf("%s (%s)", line.Label, opts.Unit))
		}
	}
	fmt.Fprintln(w)
}

func writePinRow(w io.Writer, pin *pkgfile.PinRecord, ws widths, opts Options) error {
	fmt.Fprintf(w, "%-*s  %-*s  %-*s  %-*s  %*s  %*s",
		ws.pin, pin.Number,
		ws.bank, pin.Bank,
		ws.site, pin.Site,
		ws.siteType, pin.SiteType,
		delayColWidth, formatDelay(pin.MinDelay),
		delayColWidth, formatDelay(pin.MaxDelay))

	avg, ok := pin.Average()
	if ok {
		fmt.Fprintf(w, "  %*.2f", delayColWidth, avg)
	} else {
		fmt.Fprintf(w, "  %*s", delayColWidth, pkgfile.NotApplicable)
	}

	for _, line := range []*Line{opts.Microstrip, opts.Stripline} {
		if line == nil {
			continue
		}
		if !ok {
			// A pin without a delay has no equivalent length either.
			fmt.Fprintf(w, "  %*s", delayColWidth+6, pkgfile.NotApplicable)
			continue
		}
		length, err := txline.TraceLength(avg, line.Delay, opts.Unit)
		if err != nil {
			return fmt.Errorf("pin %s: %w", pin.Number, err)
		}
		fmt.Fprintf(w, "  %*.2f", delayColWidth+6, length)
	}
	fmt.Fprintln(w)
	return nil
}

func formatDelay(d *float64) string {
	if d == nil {
		return pkgfile.NotApplicable
	}
	return fmt.Sprintf("%.2f", *d)
}

// writeStats appends min/max/mean of the defined average delays.
func writeStats(w io.Writer, pins []*pkgfile.PinRecord) {
	var avgs []float64
	for _, p := range pins {
		if avg, ok := p.Average(); ok {
			avgs = append(avgs, avg)
		}
	}
	fmt.Fprintf(w, "\nSignal pins: %d of %d\n", len(avgs), len(pins))
	if len(avgs) == 0 {
		return
	}
	fmt.Fprintf(w, "Average delay: min %.2f ps, max %.2f ps, mean %.2f ps\n",
		floats.Min(avgs), floats.Max(avgs), stat.Mean(avgs, nil))
}
