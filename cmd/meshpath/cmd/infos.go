package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stewartoallen/mesh-to-points/geom"
	"github.com/stewartoallen/mesh-to-points/internal/stlio"
)

// infosCmd represents the infos command
var infosCmd = &cobra.Command{
	Use:   "infos MESH.stl",
	Short: "show infos about an STL mesh",
	Long: `Read a binary STL mesh and print its triangle count and XYZ
bounding box to standard output.`,
	Run: doInfos,
}

func init() {
	RootCmd.AddCommand(infosCmd)
}

func doInfos(cmd *cobra.Command, args []string) {
	if len(args) != 1 {
		fmt.Println("error, expected exactly one MESH.stl argument")
		exitFailure()
		return
	}

	flat, count, err := stlio.ReadBinary(args[0])
	check(err)

	if count == 0 {
		fmt.Printf("%s: 0 triangles\n", args[0])
		return
	}

	bbox := geom.BoundsOfVerts(flat, count*3)
	fmt.Printf("%s: %d triangles\n", args[0], count)
	fmt.Printf("bounds: min=(%.4f, %.4f, %.4f) max=(%.4f, %.4f, %.4f)\n",
		bbox.Min.X(), bbox.Min.Y(), bbox.Min.Z(),
		bbox.Max.X(), bbox.Max.Y(), bbox.Max.Z())
}
