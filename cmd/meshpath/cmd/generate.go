package cmd

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/stewartoallen/mesh-to-points/geom"
	"github.com/stewartoallen/mesh-to-points/internal/stlio"
	"github.com/stewartoallen/mesh-to-points/session"
)

var (
	outFile    string
	workersVal int
	clampOOB   bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate TERRAIN.stl TOOL.stl [step] [x_step] [y_step]",
	Short: "synthesise a toolpath from a terrain mesh and a tool mesh",
	Long: `Sample TERRAIN.stl and TOOL.stl, build their height maps, sparsify
the tool, then scan it over the terrain to produce a raster Z-height
toolpath.

step defaults to 1.0, x_step and y_step default to 1. Output is CSV to
stdout (one row per toolpath row) unless --out is given, in which case
it is written as raw little-endian float32, row-major.`,
	Run: runGenerate,
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVar(&outFile, "out", "", "write raw float32 binary to FILE instead of CSV to stdout")
	generateCmd.Flags().IntVar(&workersVal, "workers", 0, "split toolpath generation across this many goroutines (0 = serial)")
	generateCmd.Flags().BoolVar(&clampOOB, "clamp-oob", false, "use the legacy clamp-to-oob_z out-of-bounds policy instead of skip")
}

func runGenerate(cmd *cobra.Command, args []string) {
	if len(args) < 2 {
		fmt.Println("error, expected TERRAIN.stl and TOOL.stl arguments")
		exitFailure()
		return
	}

	settings := session.NewSettings()
	if len(args) >= 3 {
		settings.Step = parseFloat(args[2], settings.Step)
	}
	if len(args) >= 4 {
		settings.XStep = parseInt(args[3], settings.XStep)
	}
	if len(args) >= 5 {
		settings.YStep = parseInt(args[4], settings.YStep)
	}
	settings.OOBPolicyClamp = clampOOB

	terrainFlat, terrainCount, err := stlio.ReadBinary(args[0])
	check(err)
	toolFlat, toolCount, err := stlio.ReadBinary(args[1])
	check(err)

	if terrainCount == 0 || toolCount == 0 {
		fmt.Println("error, empty terrain or tool mesh")
		exitFailure()
		return
	}

	sess := session.New(settings)
	defer sess.Close()

	sess.SampleTerrain(geom.TrianglesFromFlatBuffer(terrainFlat, terrainCount))
	sess.SampleTool(geom.TrianglesFromFlatBuffer(toolFlat, toolCount))
	sess.BuildTerrainMap()
	sess.BuildToolMap()
	sess.BuildSparseTool()

	path := sess.GenerateConcurrent(workersVal)

	if outFile != "" {
		check(writeRawBinary(outFile, path.Data))
		fmt.Printf("wrote %d floats to '%s'\n", len(path.Data), outFile)
		return
	}

	s, p := path.Dims()
	writeCSV(os.Stdout, path.Data, s, p)
}

func writeRawBinary(path string, data []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return binary.Write(f, binary.LittleEndian, data)
}

func writeCSV(f *os.File, data []float32, s, p int32) {
	w := bufio.NewWriter(f)
	defer w.Flush()
	for row := int32(0); row < s; row++ {
		for col := int32(0); col < p; col++ {
			if col > 0 {
				w.WriteByte(',')
			}
			fmt.Fprintf(w, "%g", data[row*p+col])
		}
		w.WriteByte('\n')
	}
}

func parseFloat(s string, fallback float32) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return fallback
	}
	return float32(v)
}

func parseInt(s string, fallback int32) int32 {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return fallback
	}
	return int32(v)
}
