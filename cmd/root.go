package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goflo/internal/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "goflo",
	Short: "Open Channel Flow Calculator",
	Long: `goflo - Go Open Channel Flow Calculator

A CLI tool for the hydraulic analysis of open channels and pipes
flowing part full, using Manning's equation for uniform flow.

This tool helps irrigation and drainage engineers compute:
  - Discharge, bed slope, water depth, base width or pipe diameter
  - Flow area, wetted perimeter, hydraulic radius and velocity
  - Froude number, flow regime, critical depth and critical slope
  - Rating curves of channels and surveyed natural sections

Supported sections: rectangular, trapezoidal, circular and
irregular (surveyed points).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logrus.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
			DisableSorting:   true,
		})
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goflo v%-49s║\n", version.Version)
		fmt.Println("  ║   Go Open Channel Flow Calculator                         ║")
		fmt.Printf("  ║   %s ©  %-36s║\n", version.Author, version.Year)
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for uniform flow in open channels and pipes")
		fmt.Println("  using Manning's equation.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Rectangular, trapezoidal and part-full circular sections")
		fmt.Println("    • Irregular sections from surveyed points (JSON or TOML)")
		fmt.Println("    • Critical depth, critical slope and flow regime")
		fmt.Println("    • Rating curves and section diagrams (png, svg, pdf)")
		fmt.Println()
		fmt.Println("  Use 'goflo --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log solver details")
}
