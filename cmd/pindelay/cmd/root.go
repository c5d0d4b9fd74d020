package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pindelay",
	Short: "Package pin delay and trace length reporter",
	Long: `pindelay computes per-pin package signal delays from a vendor-exported
pin/delay table and optionally converts each delay into an equivalent PCB
trace length for microstrip and stripline geometries.

Examples:
  pindelay report xc7a35t_csg324.csv                     # Delays only
  pindelay report --er 4.16 --height 3.91 --width 6.16 \
                  --sl-er 4.16 --unit mils pkg.csv        # With trace lengths
  pindelay report --stackup board.stk pkg.csv            # Geometry from a file
  pindelay stackup board.stk                             # Inspect a stackup file`,
	Version: "0.9.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
