// Package cli_test drives the commands end to end through the root command.
package cli_test

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmylchreest/ngon/internal/cli"
)

// run executes the root command with the given args, returning stdout and
// the execution error.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return outBuf.String(), err
}

func TestDrawCommand(t *testing.T) {
	t.Run("PentagonEndToEnd", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "out.png")
		stdout, err := run(t, "5", "100", "red", "-o", outPath)
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if !strings.Contains(stdout, outPath) {
			t.Errorf("Stdout %q does not mention the output path", stdout)
		}

		f, err := os.Open(outPath)
		if err != nil {
			t.Fatalf("Output file missing: %v", err)
		}
		defer f.Close()
		img, err := png.Decode(f)
		if err != nil {
			t.Fatalf("Output is not valid PNG: %v", err)
		}

		// The image contains red stroke pixels and background pixels.
		var strokePixels, backgroundPixels int
		bounds := img.Bounds()
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				r, g, b, _ := img.At(x, y).RGBA()
				switch {
				case r>>8 == 255 && g>>8 == 0 && b>>8 == 0:
					strokePixels++
				case r>>8 == 220 && g>>8 == 220 && b>>8 == 220:
					backgroundPixels++
				}
			}
		}
		if strokePixels == 0 {
			t.Error("No red stroke pixels in output")
		}
		if backgroundPixels == 0 {
			t.Error("No background pixels in output")
		}
	})

	t.Run("AllDecorations", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "octagon.png")
		_, err := run(t, "8", "350", "black", "-o", outPath,
			"--offset", "22.5", "--circle", "--markers", "--labels", "--stroke-width", "2")
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if _, err := os.Stat(outPath); err != nil {
			t.Fatalf("Output file missing: %v", err)
		}
	})

	t.Run("Filled", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "tri.png")
		if _, err := run(t, "3", "80", "teal", "-o", outPath, "--fill"); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
	})

	t.Run("HexColourAndJPEG", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "hex.jpg")
		if _, err := run(t, "6", "90", "#336699", "-o", outPath, "--background", "white"); err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if _, err := os.Stat(outPath); err != nil {
			t.Fatalf("Output file missing: %v", err)
		}
	})
}

func TestDrawCommandValidation(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "TwoSides", args: []string{"2", "100", "red"}, wantMsg: "at least 3 sides"},
		{name: "NonNumericSides", args: []string{"five", "100", "red"}, wantMsg: "number_of_sides"},
		{name: "ZeroSize", args: []string{"5", "0", "red"}, wantMsg: "positive"},
		{name: "NegativeSize", args: []string{"5", "-10", "red"}, wantMsg: "positive"},
		{name: "NonNumericSize", args: []string{"5", "big", "red"}, wantMsg: "size"},
		{name: "UnknownColour", args: []string{"5", "100", "ultraviolet"}, wantMsg: "colour"},
		{name: "UnknownBackground", args: []string{"5", "100", "red", "--background", "void"}, wantMsg: "background"},
		{name: "ZeroStrokeWidth", args: []string{"5", "100", "red", "--stroke-width", "0"}, wantMsg: "stroke-width"},
		{name: "MissingArgs", args: []string{"5", "100"}, wantMsg: "arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outDir := t.TempDir()
			outPath := filepath.Join(outDir, "out.png")
			args := append(tt.args, "-o", outPath)

			_, err := run(t, args...)
			if err == nil {
				t.Fatalf("Execute(%v) succeeded, expected error", tt.args)
			}
			if !strings.Contains(strings.ToLower(err.Error()), strings.ToLower(tt.wantMsg)) {
				t.Errorf("Error %q does not mention %q", err.Error(), tt.wantMsg)
			}
			// Validation failures must not leave a file behind.
			if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
				t.Error("Validation failure wrote an output file")
			}
		})
	}
}

func TestDrawCommandIOError(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "missing", "dir", "out.png")
	_, err := run(t, "5", "100", "red", "-o", outPath)
	if err == nil {
		t.Fatal("Execute succeeded writing into a missing directory, expected error")
	}
}

func TestDrawCommandUnsupportedExtension(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.bmp")
	_, err := run(t, "5", "100", "red", "-o", outPath)
	if err == nil {
		t.Fatal("Execute succeeded for unsupported extension, expected error")
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Error("Unsupported extension still wrote a file")
	}
}

func TestVerticesCommand(t *testing.T) {
	t.Run("Text", func(t *testing.T) {
		stdout, err := run(t, "vertices", "5", "100")
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		if len(lines) != 5 {
			t.Errorf("Expected 5 vertex lines, got %d:\n%s", len(lines), stdout)
		}
	})

	t.Run("JSON", func(t *testing.T) {
		stdout, err := run(t, "vertices", "4", "50", "--offset", "45", "--format", "json")
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}

		var doc struct {
			Sides    int     `json:"sides"`
			Radius   float64 `json:"radius"`
			Vertices []struct {
				X, Y, Angle float64
			} `json:"vertices"`
		}
		if err := json.Unmarshal([]byte(stdout), &doc); err != nil {
			t.Fatalf("Output is not valid JSON: %v", err)
		}
		if doc.Sides != 4 || len(doc.Vertices) != 4 {
			t.Errorf("JSON reports %d sides and %d vertices, want 4 and 4", doc.Sides, len(doc.Vertices))
		}
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		if _, err := run(t, "vertices", "4", "50", "--format", "xml"); err == nil {
			t.Fatal("Execute succeeded with invalid format, expected error")
		}
	})

	t.Run("InvalidSides", func(t *testing.T) {
		if _, err := run(t, "vertices", "2", "50"); err == nil {
			t.Fatal("Execute succeeded with 2 sides, expected error")
		}
	})
}

func TestVersionCommand(t *testing.T) {
	stdout, err := run(t, "version")
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}
	if !strings.Contains(stdout, "ngon version") {
		t.Errorf("Version output %q missing program name", stdout)
	}
}
