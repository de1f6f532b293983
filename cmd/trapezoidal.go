package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goflo/internal/section"
)

var (
	trapezoidalOpts      channelOptions
	trapezoidalWidth     float64
	trapezoidalSideSlope float64
)

var trapezoidalCmd = &cobra.Command{
	Use:     "trapezoidal",
	Aliases: []string{"trap"},
	Short:   "Uniform flow in a trapezoidal channel",
	Long: `Solve a trapezoidal channel for one unknown using Manning's equation.

The unknown may be the discharge, bed slope, water depth or base width.
The side slope z is horizontal run per unit rise and applies to both
banks; z = 0 is a rectangular channel.

Examples:
  goflo trapezoidal -S 0.001 -b 1.0 -z 1.0 -y 0.989 -n 0.015
  goflo trapezoidal -u depth -Q 2.5 -S 0.0005 -b 1.5 -z 1.5 -n 0.022 --diagram`,
	Run: func(cmd *cobra.Command, args []string) {
		sec := trapezoidalOpts.definition(section.Trapezoidal)
		sec.BaseWidth = trapezoidalWidth
		sec.SideSlope = trapezoidalSideSlope
		runChannel(sec, &trapezoidalOpts)
	},
}

func init() {
	rootCmd.AddCommand(trapezoidalCmd)

	trapezoidalOpts.bind(trapezoidalCmd)
	trapezoidalCmd.Flags().Float64VarP(&trapezoidalWidth, "width", "b", 0, "Base width (m or ft)")
	trapezoidalCmd.Flags().Float64VarP(&trapezoidalSideSlope, "side-slope", "z", 0, "Side slope, horizontal per vertical")
}
