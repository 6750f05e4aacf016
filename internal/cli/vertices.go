package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/ngon/internal/geometry"
)

var (
	// Vertices command flags.
	verticesFormat string
	verticesOffset float64
)

// newVerticesCmd builds the vertices command, which prints the computed
// vertex table without rendering anything.
func newVerticesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vertices <number_of_sides> <size>",
		Short: "Print the vertex coordinates of a regular polygon",
		Long: `Compute the vertices of a regular polygon and print them without
rendering an image. Coordinates are relative to the polygon centre with the
Y axis pointing up; angles are in degrees.

Examples:
  # Vertex table of a point-up pentagon
  ngon vertices 5 100

  # Square aligned with the axes, as JSON
  ngon vertices 4 50 --offset 45 --format json`,
		Args: cobra.ExactArgs(2),
		RunE: runVertices,
	}

	cmd.Flags().StringVarP(&verticesFormat, "format", "f", "text", "output format (text, json)")
	cmd.Flags().Float64Var(&verticesOffset, "offset", defaultOffsetDeg, "rotation offset in degrees")

	return cmd
}

// runVertices executes the vertices command.
func runVertices(cmd *cobra.Command, args []string) error {
	sides, err := parseSides(args[0])
	if err != nil {
		return err
	}
	size, err := parseSize(args[1])
	if err != nil {
		return err
	}

	polygon, err := geometry.Generate(sides, size, verticesOffset)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch verticesFormat {
	case "text":
		for i, v := range polygon.Vertices {
			fmt.Fprintf(out, "%3d  %10.3f  %10.3f  %7.1f\n", i, v.X, v.Y, v.Angle)
		}
	case "json":
		data, err := json.MarshalIndent(polygon, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal vertices: %w", err)
		}
		fmt.Fprintln(out, string(data))
	default:
		return fmt.Errorf("invalid format %q (supported: text, json)", verticesFormat)
	}
	return nil
}
