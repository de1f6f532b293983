package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goflo/internal/section"
)

// channelOptions are the flags shared by the prismatic channel commands
type channelOptions struct {
	name      string
	unknown   string
	discharge float64
	slope     float64
	depth     float64
	manning   float64
	imperial  bool

	showDiagram bool
	exportFile  string
}

func (o *channelOptions) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&o.name, "name", "", "Channel name for the report")
	f.StringVarP(&o.unknown, "unknown", "u", "discharge", "Quantity to solve for")
	f.Float64VarP(&o.discharge, "discharge", "Q", 0, "Discharge (m³/s or ft³/s)")
	f.Float64VarP(&o.slope, "slope", "S", 0, "Bed slope (m/m)")
	f.Float64VarP(&o.depth, "depth", "y", 0, "Water depth (m or ft)")
	f.Float64VarP(&o.manning, "manning", "n", 0, "Manning's roughness coefficient [required]")
	f.BoolVar(&o.imperial, "imperial", false, "Use feet and seconds instead of meters")
	cmd.MarkFlagRequired("manning")

	// Diagram options
	f.BoolVar(&o.showDiagram, "diagram", false, "Show ASCII section diagram")
	f.StringVarP(&o.exportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

// definition turns the flags into a channel definition of the given shape
func (o *channelOptions) definition(shape section.Shape) *section.Section {
	unit := "metric"
	if o.imperial {
		unit = "imperial"
	}
	return &section.Section{
		Name:       o.name,
		Shape:      string(shape),
		Unit:       unit,
		Unknown:    o.unknown,
		Discharge:  o.discharge,
		BedSlope:   o.slope,
		WaterDepth: o.depth,
		Manning:    o.manning,
	}
}

// runChannel analyzes a definition built from flags and prints the report
func runChannel(sec *section.Section, o *channelOptions) {
	report, err := sec.Analyze()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printReport(report)
	renderDiagrams(report, o.showDiagram, o.exportFile)
}
