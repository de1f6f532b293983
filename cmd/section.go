package cmd

import (
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Channel analysis from definition files",
	Long: `Analyze channels defined in JSON or TOML files.

Any shape can be defined in a file; irregular natural sections are
only available this way since they need the surveyed ground points.
Numbers are in the file's unit system (metric unless "unit" says
imperial).

Subcommands:
  analyze  - Solve the channel for its unknown quantity
  rating   - Tabulate and plot the stage-discharge rating curve

Example JSON file structure:
{
  "name": "Creek at station 2+300",
  "shape": "irregular",
  "unknown": "discharge",
  "bed_slope": 0.002,
  "manning": 0.03,
  "water_elevation": 99.5,
  "points": [
    {"x": 0, "y": 100},
    {"x": 5, "y": 99},
    {"x": 10, "y": 96},
    {"x": 15, "y": 95.5},
    {"x": 20, "y": 98},
    {"x": 25, "y": 100}
  ]
}

The same definition in TOML:
  name = "Lateral A"
  shape = "trapezoidal"
  unknown = "water_depth"
  discharge = 2.5
  bed_slope = 0.0005
  base_width = 1.5
  side_slope = 1.5
  manning = 0.022

  [rating]
  from = 0.1
  to = 2.0
  steps = 19`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}
