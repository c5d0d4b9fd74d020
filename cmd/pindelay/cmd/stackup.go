package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/pindelay/pkg/stackup"
	"github.com/OpenTraceLab/pindelay/pkg/txline"
)

var stackupCmd = &cobra.Command{
	Use:   "stackup <stackup-file>",
	Short: "Inspect a stackup description file",
	Long: `Parse a stackup description file and list each stackup's layers with
their derived effective dielectric constant and propagation delay.

Examples:
  pindelay stackup board.stk
  pindelay stackup -v board.stk`,
	Args: cobra.ExactArgs(1),
	RunE: runStackup,
}

func init() {
	rootCmd.AddCommand(stackupCmd)
}

func runStackup(cmd *cobra.Command, args []string) error {
	if verbose {
		fmt.Printf("Parsing stackup file: %s\n\n", args[0])
	}

	parser, err := stackup.NewParser()
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	file, err := parser.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse file: %w", err)
	}

	for _, s := range file.Stackups {
		fmt.Printf("Stackup %s: %d layer(s)\n", s.Name, len(s.Layers))
		for _, layer := range s.Layers {
			fmt.Printf("  %-10s %-12s", layer.Kind, layer.Name)

			g, err := layer.Geometry()
			if err != nil {
				fmt.Printf(" (invalid: %v)\n", err)
				continue
			}
			eff, err := g.EffectiveEr()
			if err != nil {
				fmt.Printf(" (invalid: %v)\n", err)
				continue
			}
			tpd, err := txline.PropagationDelay(eff)
			if err != nil {
				fmt.Printf(" (invalid: %v)\n", err)
				continue
			}
			fmt.Printf(" effective er %.3f, propagation delay %.3f ps/mm\n",
				eff, tpd*1e12/1000)
		}
		fmt.Println()
	}

	return nil
}
