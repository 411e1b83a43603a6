package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "meshpath",
	Short: "synthesise Z-height toolpaths from STL meshes",
	Long: `meshpath converts a terrain mesh and a tool mesh, both triangulated
STL, into a raster Z-height toolpath: sample both meshes into point
clouds, build height maps, sparsify the tool, then scan the tool over
the terrain for the minimum clearance at every sample.`,
}

// Execute adds all child commands to the root command and parses flags.
// Called by main.main(); only needs to run once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
