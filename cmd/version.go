package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goflo/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goflo",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goflo v%s\n", version.Version)
		fmt.Println("Open Channel Flow Calculator (Manning's equation)")
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
