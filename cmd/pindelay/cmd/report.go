package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/pindelay/pkg/pkgfile"
	"github.com/OpenTraceLab/pindelay/pkg/report"
	"github.com/OpenTraceLab/pindelay/pkg/stackup"
	"github.com/OpenTraceLab/pindelay/pkg/txline"
	"github.com/OpenTraceLab/pindelay/pkg/units"
)

var (
	// Microstrip geometry group
	msEr     float64
	msHeight float64
	msWidth  float64

	// Stripline geometry: either the symmetric constant or the full
	// asymmetric group
	slEr  float64
	slEr1 float64
	slH1  float64
	slEr2 float64
	slH2  float64

	// Geometry from a stackup file instead of flags
	stackupPath string
	stackupName string

	unitFlag  string
	showStats bool
)

var reportCmd = &cobra.Command{
	Use:   "report <package-file>",
	Short: "Report per-pin package delays and equivalent trace lengths",
	Long: `Parse a vendor package pin/delay export and print a per-pin report.

Without geometry flags only the delays are reported. Supplying a microstrip
group (--er, --height, --width) or a stripline group (--sl-er, or the four
--sl-er1/--sl-h1/--sl-er2/--sl-h2 values) adds a trace-length column per
geometry. Heights and widths must share one linear unit; only their ratio
matters.

Examples:
  pindelay report xc7a35t_csg324.csv
  pindelay report --sl-er 4.16 --unit mils xc7a35t_csg324.csv
  pindelay report --er 4.16 --height 3.91 --width 6.16 xc7a35t_csg324.csv
  pindelay report --stackup board.stk --name MAIN xc7a35t_csg324.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().Float64Var(&msEr, "er", 0,
		"microstrip: substrate dielectric constant")
	reportCmd.Flags().Float64Var(&msHeight, "height", 0,
		"microstrip: dielectric height between trace and plane")
	reportCmd.Flags().Float64Var(&msWidth, "width", 0,
		"microstrip: trace width")

	reportCmd.Flags().Float64Var(&slEr, "sl-er", 0,
		"stripline: dielectric constant (symmetric)")
	reportCmd.Flags().Float64Var(&slEr1, "sl-er1", 0,
		"stripline: first dielectric constant (asymmetric)")
	reportCmd.Flags().Float64Var(&slH1, "sl-h1", 0,
		"stripline: first dielectric height (asymmetric)")
	reportCmd.Flags().Float64Var(&slEr2, "sl-er2", 0,
		"stripline: second dielectric constant (asymmetric)")
	reportCmd.Flags().Float64Var(&slH2, "sl-h2", 0,
		"stripline: second dielectric height (asymmetric)")

	reportCmd.Flags().StringVar(&stackupPath, "stackup", "",
		"stackup description file supplying the geometry")
	reportCmd.Flags().StringVar(&stackupName, "name", "",
		"stackup to use when the file defines several")

	reportCmd.Flags().StringVarP(&unitFlag, "unit", "u", "mils",
		"output length unit (mm or mils)")
	reportCmd.Flags().BoolVar(&showStats, "stats", false,
		"append delay statistics over all signal pins")
}

func runReport(cmd *cobra.Command, args []string) error {
	unit, err := units.ParseUnit(unitFlag)
	if err != nil {
		return err
	}

	opts := report.Options{Unit: unit, Stats: showStats}
	if stackupPath != "" {
		if anyGeometryFlagSet(cmd) {
			return fmt.Errorf("--stackup cannot be combined with geometry flags")
		}
		opts.Microstrip, opts.Stripline, err = linesFromStackup(stackupPath, stackupName)
	} else {
		opts.Microstrip, opts.Stripline, err = linesFromFlags(cmd)
	}
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Parsing package file: %s\n\n", args[0])
	}

	table, err := pkgfile.ParseFile(args[0])
	if err != nil {
		return err
	}

	if verbose {
		fmt.Printf("Parsed %d pin(s)\n\n", len(table.Pins))
	}

	return report.Write(os.Stdout, table, opts)
}

// Flag names per geometry group, used both for validation diagnostics and
// for detecting partially supplied groups.
var (
	microstripFlags          = []string{"er", "height", "width"}
	striplineAsymmetricFlags = []string{"sl-er1", "sl-h1", "sl-er2", "sl-h2"}
)

func anyGeometryFlagSet(cmd *cobra.Command) bool {
	if cmd.Flags().Changed("sl-er") {
		return true
	}
	for _, name := range append(microstripFlags, striplineAsymmetricFlags...) {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// linesFromFlags resolves the microstrip and stripline geometry groups from
// command-line flags. Each group is all-or-nothing; a partial group fails
// with the missing flag names.
func linesFromFlags(cmd *cobra.Command) (ms, sl *report.Line, err error) {
	if missing := missingFromGroup(cmd, microstripFlags); missing != nil {
		if len(missing) < len(microstripFlags) {
			return nil, nil, fmt.Errorf("incomplete microstrip parameters: missing %s",
				flagList(missing))
		}
	} else {
		ms, err = report.NewLine("Microstrip",
			txline.Microstrip{Er: msEr, Height: msHeight, Width: msWidth})
		if err != nil {
			return nil, nil, err
		}
	}

	symmetric := cmd.Flags().Changed("sl-er")
	missing := missingFromGroup(cmd, striplineAsymmetricFlags)
	anyAsymmetric := missing == nil || len(missing) < len(striplineAsymmetricFlags)
	switch {
	case symmetric && anyAsymmetric:
		return nil, nil, fmt.Errorf("--sl-er cannot be combined with the asymmetric stripline flags")
	case symmetric:
		sl, err = report.NewLine("Stripline", txline.Stripline{Er: slEr})
	case missing == nil:
		sl, err = report.NewLine("Stripline",
			txline.AsymmetricStripline{Er1: slEr1, H1: slH1, Er2: slEr2, H2: slH2})
	case anyAsymmetric:
		return nil, nil, fmt.Errorf("incomplete stripline parameters: missing %s",
			flagList(missing))
	}
	if err != nil {
		return nil, nil, err
	}
	return ms, sl, nil
}

// missingFromGroup returns the unset flags of a group, or nil when the group
// is complete. A fully unset group returns every name.
func missingFromGroup(cmd *cobra.Command, names []string) []string {
	var missing []string
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func flagList(names []string) string {
	flags := make([]string, len(names))
	for i, n := range names {
		flags[i] = "--" + n
	}
	return strings.Join(flags, ", ")
}

// linesFromStackup reads the geometry from a stackup file, taking the first
// microstrip and first stripline layer of the selected stackup.
func linesFromStackup(path, name string) (ms, sl *report.Line, err error) {
	parser, err := stackup.NewParser()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create stackup parser: %w", err)
	}
	file, err := parser.ParseFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse stackup file: %w", err)
	}

	var s *stackup.Stackup
	if name != "" {
		if s = file.Find(name); s == nil {
			return nil, nil, fmt.Errorf("stackup %q not found in %s", name, path)
		}
	} else {
		if len(file.Stackups) > 1 {
			return nil, nil, fmt.Errorf("%s defines %d stackups, select one with --name",
				path, len(file.Stackups))
		}
		s = file.Stackups[0]
	}

	if layer := s.FirstLayer("microstrip"); layer != nil {
		g, err := layer.Geometry()
		if err != nil {
			return nil, nil, err
		}
		if ms, err = report.NewLine("Microstrip", g); err != nil {
			return nil, nil, fmt.Errorf("layer %s: %w", layer.Name, err)
		}
	}
	if layer := s.FirstLayer("stripline"); layer != nil {
		g, err := layer.Geometry()
		if err != nil {
			return nil, nil, err
		}
		if sl, err = report.NewLine("Stripline", g); err != nil {
			return nil, nil, fmt.Errorf("layer %s: %w", layer.Name, err)
		}
	}
	return ms, sl, nil
}
