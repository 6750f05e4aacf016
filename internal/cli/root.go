// Package cli provides the command-line interface for Ngon.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/ngon/internal/version"
)

// NewRootCmd builds the root command and its subcommands. A fresh command
// tree is returned on every call so tests can run commands independently.
func NewRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "ngon <number_of_sides> <size> <colour>",
		Short: "Render a regular polygon to an image file",
		Long: `Ngon computes the vertices of a regular polygon with the given number of
sides, inscribed in a circle of the given size (radius, in pixels), and
rasterizes its outline in the requested colour to an image file.

The colour is a well-known name (run with an unknown name to see the full
vocabulary) or a "#rrggbb" hex literal.

Examples:
  # A red pentagon with a 100px radius, written to polygon.png
  ngon 5 100 red

  # A thick blue hexagon on a white background, written to hex.png
  ngon 6 150 blue --stroke-width 3 --background white -o hex.png

  # The original plotter's octagon: rotated, with the circumscribed
  # circle, vertex markers and coordinate labels
  ngon 8 350 black --offset 22.5 --circle --markers --labels

  # A filled polygon
  ngon 3 80 teal --fill`,
		Args:         cobra.ExactArgs(3),
		Version:      version.Short(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDraw(cmd, args, newLogger(verbose))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.SetVersionTemplate(version.String() + "\n")

	registerRenderFlags(rootCmd.Flags())

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newVerticesCmd())

	return rootCmd
}

// newLogger builds the debug logger. Verbose runs log at Debug level to
// stderr, with colour when stderr is a terminal; otherwise logging is off
// entirely so the only failure output is the final error message.
func newLogger(verbose bool) hclog.Logger {
	if !verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "ngon",
			Output: io.Discard,
			Level:  hclog.Off,
		})
	}

	colorMode := hclog.ColorOff
	if term.IsTerminal(int(os.Stderr.Fd())) {
		colorMode = hclog.AutoColor
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "ngon",
		Output: os.Stderr,
		Level:  hclog.Debug,
		Color:  colorMode,
	})
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
