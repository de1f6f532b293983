package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goflo/internal/section"
)

var (
	sectionAnalyzeFile        string
	sectionAnalyzeShowDiagram bool
	sectionAnalyzeExportFile  string
)

var sectionAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Solve a channel defined in a file",
	Long: `Solve the channel defined in a JSON or TOML file for its unknown
quantity and print the flow and critical flow properties.

Irregular sections may be solved for the discharge or the bed slope.

Examples:
  goflo section analyze --file creek.json
  goflo section analyze -f lateral.toml --diagram -o lateral.svg`,
	Run: runSectionAnalyze,
}

func init() {
	sectionCmd.AddCommand(sectionAnalyzeCmd)

	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeFile, "file", "f", "", "Path to channel definition file [required]")
	sectionAnalyzeCmd.MarkFlagRequired("file")

	// Diagram options
	sectionAnalyzeCmd.Flags().BoolVar(&sectionAnalyzeShowDiagram, "diagram", false, "Show ASCII section diagram")
	sectionAnalyzeCmd.Flags().StringVarP(&sectionAnalyzeExportFile, "output", "o", "", "Export section diagram to file (png, svg, pdf)")
}

func runSectionAnalyze(cmd *cobra.Command, args []string) {
	sec, err := section.LoadFromFile(sectionAnalyzeFile)
	if err != nil {
		fmt.Printf("Error loading section: %v\n", err)
		return
	}

	report, err := sec.Analyze()
	if err != nil {
		fmt.Printf("Error analyzing section: %v\n", err)
		return
	}

	printReport(report)
	renderDiagrams(report, sectionAnalyzeShowDiagram, sectionAnalyzeExportFile)
}
