package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goflo/internal/section"
)

var (
	circularOpts     channelOptions
	circularDiameter float64
)

var circularCmd = &cobra.Command{
	Use:     "circular",
	Aliases: []string{"pipe"},
	Short:   "Uniform flow in a pipe flowing part full",
	Long: `Solve a circular conduit flowing part full for one unknown.

The unknown may be the discharge, bed slope, water depth or diameter.
The water depth must stay below the crown. Near the crown the discharge
of a pipe decreases with depth, so a depth search returns the lowest
depth that carries the discharge.

Examples:
  goflo circular -S 0.001 -d 1.2 -y 0.7 -n 0.015
  goflo circular -u diameter -Q 0.55 -S 0.001 -y 0.7 -n 0.015
  goflo circular -u depth -Q 0.4 -S 0.001 -d 1.0 -n 0.013 --diagram`,
	Run: func(cmd *cobra.Command, args []string) {
		sec := circularOpts.definition(section.Circular)
		sec.Diameter = circularDiameter
		runChannel(sec, &circularOpts)
	},
}

func init() {
	rootCmd.AddCommand(circularCmd)

	circularOpts.bind(circularCmd)
	circularCmd.Flags().Float64VarP(&circularDiameter, "diameter", "d", 0, "Pipe internal diameter (m or ft)")
}
