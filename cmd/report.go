package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alexiusacademia/goflo/internal/diagram"
	"github.com/alexiusacademia/goflo/internal/hydraulics"
	"github.com/alexiusacademia/goflo/internal/section"
)

const rule = "───────────────────────────────────────────────────────────────"

// printReport prints the results of an analyzed channel
func printReport(r *section.Report) {
	ch := r.Channel
	u := ch.Unit()
	solved := func(q hydraulics.Unknown) string {
		if q == r.Unknown {
			return "  (solved)"
		}
		return ""
	}

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s CHANNEL ANALYSIS - MANNING'S EQUATION\n", strings.ToUpper(string(r.Shape)))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if r.Section.Name != "" {
		fmt.Printf("  Channel: %s\n", r.Section.Name)
	}
	if r.Section.Description != "" {
		fmt.Printf("  Description: %s\n", r.Section.Description)
	}
	fmt.Printf("  Units: %s\n", u)
	fmt.Println()

	// Geometry
	fmt.Println("SECTION GEOMETRY:")
	fmt.Println(rule)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	switch c := ch.(type) {
	case *hydraulics.RectangularChannel:
		fmt.Fprintf(w, "  Base width (b):\t%.4f %s%s\n", c.BaseWidth(), u.Length(), solved(hydraulics.BaseWidth))
	case *hydraulics.TrapezoidalChannel:
		fmt.Fprintf(w, "  Base width (b):\t%.4f %s%s\n", c.BaseWidth(), u.Length(), solved(hydraulics.BaseWidth))
		fmt.Fprintf(w, "  Side slope (z):\t%.3f H : 1 V\n", c.SideSlope())
	case *hydraulics.CircularChannel:
		fmt.Fprintf(w, "  Diameter (d):\t%.4f %s%s\n", c.Diameter(), u.Length(), solved(hydraulics.Diameter))
		fmt.Fprintf(w, "  Percent full:\t%.2f %%\n", c.PercentFull())
		half := "less than half full"
		if c.AlmostFull() {
			half = "half full or more"
		}
		fmt.Fprintf(w, "  Flowing:\t%s\n", half)
	case *hydraulics.IrregularChannel:
		fmt.Fprintf(w, "  Surveyed points:\t%d\n", len(c.Points()))
		fmt.Fprintf(w, "  Lowest ground:\t%.3f %s\n", c.LowestElevation(), u.Length())
		fmt.Fprintf(w, "  Lowest bank:\t%.3f %s\n", c.MaxWaterElevation(), u.Length())
		fmt.Fprintf(w, "  Water elevation:\t%.3f %s\n", c.WaterElevation(), u.Length())
		if p := r.Properties; p != nil {
			fmt.Fprintf(w, "  Bankfull area:\t%.4f %s\n", p.BankfullArea, u.Area())
			fmt.Fprintf(w, "  Bankfull top width:\t%.4f %s\n", p.BankfullTopWidth, u.Length())
		}
	}
	w.Flush()
	fmt.Println()

	// Inputs and solved quantity
	fmt.Println("FLOW PARAMETERS:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Manning's roughness (n):\t%.4f\n", ch.ManningRoughness())
	fmt.Fprintf(w, "  Bed slope (S):\t%.8f%s\n", ch.BedSlope(), solved(hydraulics.BedSlope))
	fmt.Fprintf(w, "  Discharge (Q):\t%.4f %s%s\n", ch.Discharge(), u.Discharge(), solved(hydraulics.Discharge))
	fmt.Fprintf(w, "  Water depth (y):\t%.4f %s%s\n", ch.WaterDepth(), u.Length(), solved(hydraulics.WaterDepth))
	w.Flush()
	fmt.Println()

	fmt.Println("FLOW PROPERTIES:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Wetted area (A):\t%.4f %s\n", ch.WettedArea(), u.Area())
	fmt.Fprintf(w, "  Wetted perimeter (P):\t%.4f %s\n", ch.WettedPerimeter(), u.Length())
	fmt.Fprintf(w, "  Hydraulic radius (R):\t%.4f %s\n", ch.HydraulicRadius(), u.Length())
	fmt.Fprintf(w, "  Average velocity (V):\t%.4f %s\n", ch.AverageVelocity(), u.Velocity())
	fmt.Fprintf(w, "  Top width (T):\t%.4f %s\n", ch.TopWidth(), u.Length())
	fmt.Fprintf(w, "  Hydraulic depth (D):\t%.4f %s\n", ch.HydraulicDepth(), u.Length())
	w.Flush()
	fmt.Println()

	fmt.Println("CRITICAL FLOW:")
	fmt.Println(rule)
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Froude number (F):\t%.4f\n", ch.FroudeNumber())
	fmt.Fprintf(w, "  Flow type:\t%s\n", ch.FlowType())
	if r.Shape == section.Rectangular || r.Shape == section.Trapezoidal {
		fmt.Fprintf(w, "  Discharge intensity (q):\t%.4f %s/s\n", ch.DischargeIntensity(), u.Area())
	}
	fmt.Fprintf(w, "  Critical depth (yc):\t%.4f %s\n", ch.CriticalDepth(), u.Length())
	if c, ok := ch.(*hydraulics.IrregularChannel); ok {
		fmt.Fprintf(w, "  Critical water elevation:\t%.4f %s\n", c.CriticalWaterElevation(), u.Length())
	}
	fmt.Fprintf(w, "  Critical slope (Sc):\t%.8f\n", ch.CriticalSlope())
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox(
		fmt.Sprintf("SOLVED %s", strings.ToUpper(r.Unknown.String())),
		[]string{solvedValue(ch, r.Unknown), fmt.Sprintf("Trial iterations: %d", iterations(ch))},
	))
	fmt.Println()

	fmt.Println("STATUS:")
	fmt.Println(rule)
	fmt.Printf("  %s\n", r.Message)
	fmt.Println()
}

func solvedValue(ch hydraulics.Channel, unknown hydraulics.Unknown) string {
	u := ch.Unit()
	switch unknown {
	case hydraulics.BedSlope:
		return fmt.Sprintf("S = %.8f", ch.BedSlope())
	case hydraulics.WaterDepth:
		return fmt.Sprintf("y = %.4f %s", ch.WaterDepth(), u.Length())
	case hydraulics.BaseWidth:
		if c, ok := ch.(interface{ BaseWidth() float64 }); ok {
			return fmt.Sprintf("b = %.4f %s", c.BaseWidth(), u.Length())
		}
	case hydraulics.Diameter:
		if c, ok := ch.(*hydraulics.CircularChannel); ok {
			return fmt.Sprintf("d = %.4f %s", c.Diameter(), u.Length())
		}
	}
	return fmt.Sprintf("Q = %.4f %s", ch.Discharge(), u.Discharge())
}

func iterations(ch hydraulics.Channel) int {
	if c, ok := ch.(interface{ Result() hydraulics.Result }); ok {
		return c.Result().Iterations
	}
	return 0
}

// renderDiagrams prints the ASCII section and exports the image when
// requested
func renderDiagrams(r *section.Report, show bool, exportFile string) {
	if !show && exportFile == "" {
		return
	}
	prof, err := r.Channel.Profile()
	if err != nil {
		fmt.Printf("Error building section profile: %v\n", err)
		return
	}

	if show {
		fmt.Println(diagram.DrawASCIISectionDiagram(prof))
	}

	if exportFile != "" {
		title := r.Section.Name
		if title == "" {
			shape := string(r.Shape)
			title = strings.ToUpper(shape[:1]) + shape[1:] + " channel"
		}
		if err := diagram.ExportSectionDiagram(prof, title, exportFile); err != nil {
			fmt.Printf("Error exporting diagram: %v\n", err)
		} else {
			fmt.Printf("Diagram exported to: %s\n", exportFile)
		}
	}
}
