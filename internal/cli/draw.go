package cli

import (
	"fmt"
	"math"
	"strconv"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/ngon/internal/colour"
	"github.com/jmylchreest/ngon/internal/geometry"
	"github.com/jmylchreest/ngon/internal/raster"
)

const (
	// defaultOffsetDeg orients the polygon point-up: vertex 0 sits at
	// world angle 90, which the Y-flipping projection puts at the top of
	// the canvas.
	defaultOffsetDeg = 90

	// canvasMargin is the total padding added around the polygon when the
	// canvas is sized dynamically.
	canvasMargin = 200

	// minCanvas is the smallest dynamically chosen canvas edge.
	minCanvas = 512
)

var (
	// Render flags, shared by the root (draw) command.
	drawOutput      string
	drawCanvas      int
	drawBackground  string
	drawOffset      float64
	drawStrokeWidth int
	drawFill        bool
	drawCircle      bool
	drawMarkers     bool
	drawLabels      bool
)

// Fixed annotation colours, as used by the original plotter.
var (
	circleColour = colour.RGB{R: 0, G: 0, B: 255}
	markerColour = colour.RGB{R: 255, G: 0, B: 0}
	labelColour  = colour.RGB{R: 0, G: 0, B: 0}
)

// registerRenderFlags registers the rendering flags on a flag set.
func registerRenderFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&drawOutput, "output", "o", "polygon.png", "output file path (format from extension: png, jpg, gif)")
	fs.IntVar(&drawCanvas, "canvas", 0, "square canvas edge in pixels (0 = sized to fit the polygon)")
	fs.StringVar(&drawBackground, "background", "#dcdcdc", "background colour name or #rrggbb")
	fs.Float64Var(&drawOffset, "offset", defaultOffsetDeg, "rotation offset in degrees")
	fs.IntVar(&drawStrokeWidth, "stroke-width", 1, "stroke width in pixels")
	fs.BoolVar(&drawFill, "fill", false, "fill the polygon interior instead of outlining")
	fs.BoolVar(&drawCircle, "circle", false, "also draw the circumscribed circle")
	fs.BoolVar(&drawMarkers, "markers", false, "draw a disc at every vertex")
	fs.BoolVar(&drawLabels, "labels", false, "label every vertex with its coordinates and angle")
}

// parseSides parses and validates the number_of_sides argument.
func parseSides(arg string) (int, error) {
	sides, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid number_of_sides %q: not an integer", arg)
	}
	if sides < 3 {
		return 0, fmt.Errorf("invalid number_of_sides %d: a polygon needs at least 3 sides", sides)
	}
	return sides, nil
}

// parseSize parses and validates the size argument.
func parseSize(arg string) (float64, error) {
	size, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: not a number", arg)
	}
	if size <= 0 || math.IsInf(size, 0) || math.IsNaN(size) {
		return 0, fmt.Errorf("invalid size %v: must be a positive number", size)
	}
	return size, nil
}

// canvasSize picks the canvas edge length: the explicit --canvas value if
// given, otherwise large enough for the polygon plus a margin.
func canvasSize(radius float64) int {
	if drawCanvas > 0 {
		return drawCanvas
	}
	size := int(math.Ceil(2*radius)) + canvasMargin
	if size < minCanvas {
		size = minCanvas
	}
	return size
}

// runDraw validates the arguments, generates the polygon and renders it to
// the output file. All validation happens before any drawing work.
func runDraw(cmd *cobra.Command, args []string, logger hclog.Logger) error {
	sides, err := parseSides(args[0])
	if err != nil {
		return err
	}
	size, err := parseSize(args[1])
	if err != nil {
		return err
	}
	stroke, err := colour.Parse(args[2])
	if err != nil {
		return fmt.Errorf("invalid colour: %w", err)
	}
	background, err := colour.Parse(drawBackground)
	if err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	if drawStrokeWidth < 1 {
		return fmt.Errorf("invalid stroke-width %d: must be at least 1", drawStrokeWidth)
	}
	if drawCanvas < 0 {
		return fmt.Errorf("invalid canvas %d: must not be negative", drawCanvas)
	}
	// Reject an unsupported extension before any drawing work.
	if _, err := raster.FormatForPath(drawOutput); err != nil {
		return err
	}

	logger.Debug("validated input", "sides", sides, "size", size,
		"colour", stroke.Hex(), "background", background.Hex(), "offset", drawOffset)

	polygon, err := geometry.Generate(sides, size, drawOffset)
	if err != nil {
		return err
	}
	logger.Debug("generated polygon", "vertices", len(polygon.Vertices),
		"side_length", polygon.SideLength())

	canvas := raster.New(canvasSize(size), background)
	logger.Debug("created canvas", "size", canvas.Size())

	if drawCircle {
		canvas.Circumcircle(polygon, circleColour)
	}
	if drawFill {
		canvas.FillPolygon(polygon, stroke)
	} else {
		canvas.Polygon(polygon, stroke, drawStrokeWidth)
	}
	if drawMarkers {
		canvas.Markers(polygon, markerColour)
	}
	if drawLabels {
		canvas.Labels(polygon, labelColour)
	}

	if err := canvas.Save(drawOutput); err != nil {
		return err
	}
	logger.Debug("wrote image", "path", drawOutput)

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d-gon to %s\n", sides, drawOutput)
	return nil
}
