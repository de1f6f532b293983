package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goflo/internal/section"
)

var (
	rectangularOpts  channelOptions
	rectangularWidth float64
)

var rectangularCmd = &cobra.Command{
	Use:     "rectangular",
	Aliases: []string{"rect"},
	Short:   "Uniform flow in a rectangular channel",
	Long: `Solve a rectangular channel for one unknown using Manning's equation.

The unknown may be the discharge, bed slope, water depth or base width.
All other quantities must be given. Critical depth uses the closed form
yc = (q²/g)^(1/3) with q the discharge per unit width.

Examples:
  goflo rectangular -S 0.001 -b 1.0 -y 0.989 -n 0.015
  goflo rectangular -u depth -Q 1.2 -S 0.001 -b 2.0 -n 0.015 --diagram
  goflo rectangular -u width -Q 1.2 -S 0.001 -y 0.6 -n 0.015 -o rect.png`,
	Run: func(cmd *cobra.Command, args []string) {
		sec := rectangularOpts.definition(section.Rectangular)
		sec.BaseWidth = rectangularWidth
		runChannel(sec, &rectangularOpts)
	},
}

func init() {
	rootCmd.AddCommand(rectangularCmd)

	rectangularOpts.bind(rectangularCmd)
	rectangularCmd.Flags().Float64VarP(&rectangularWidth, "width", "b", 0, "Base width (m or ft)")
}
