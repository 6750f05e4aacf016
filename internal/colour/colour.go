// Package colour provides the fixed colour vocabulary used for rendering.
//
// Colours are specified on the command line either as one of a finite set
// of well-known names (with aliases) or as a "#rrggbb" hex literal. The
// vocabulary is resolved once at startup and an unrecognised name fails
// fast before any drawing work begins.
package colour

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// RGB represents a colour in 8-bit RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// RGBA converts the colour to a fully opaque color.RGBA pixel value.
func (rgb RGB) RGBA() color.RGBA {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// namedColour is an entry in the colour vocabulary.
type namedColour struct {
	Name    string
	R, G, B uint8
	Aliases []string
}

// The colour vocabulary. Values follow the common CSS/X11 definitions.
var namedColours = []namedColour{
	{Name: "black", R: 0, G: 0, B: 0},
	{Name: "white", R: 255, G: 255, B: 255},
	{Name: "red", R: 255, G: 0, B: 0},
	{Name: "green", R: 0, G: 128, B: 0},
	{Name: "blue", R: 0, G: 0, B: 255},
	{Name: "yellow", R: 255, G: 255, B: 0},
	{Name: "magenta", R: 255, G: 0, B: 255, Aliases: []string{"fuchsia"}},
	{Name: "cyan", R: 0, G: 255, B: 255, Aliases: []string{"aqua"}},
	{Name: "gray", R: 128, G: 128, B: 128, Aliases: []string{"grey"}},
	{Name: "silver", R: 192, G: 192, B: 192, Aliases: []string{"lightgray", "lightgrey"}},
	{Name: "orange", R: 255, G: 165, B: 0},
	{Name: "pink", R: 255, G: 192, B: 203},
	{Name: "brown", R: 165, G: 42, B: 42},
	{Name: "purple", R: 128, G: 0, B: 128},
	{Name: "lime", R: 0, G: 255, B: 0},
	{Name: "navy", R: 0, G: 0, B: 128, Aliases: []string{"darkblue"}},
	{Name: "teal", R: 0, G: 128, B: 128, Aliases: []string{"darkcyan"}},
	{Name: "maroon", R: 128, G: 0, B: 0, Aliases: []string{"darkred"}},
	{Name: "olive", R: 128, G: 128, B: 0, Aliases: []string{"darkyellow"}},
	{Name: "violet", R: 238, G: 130, B: 238},
	{Name: "indigo", R: 75, G: 0, B: 130},
}

// normalise lowercases a colour name and strips spaces and dashes, so
// "Dark-Blue" and "dark blue" both resolve to "darkblue".
func normalise(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.ReplaceAll(name, " ", ""), "-", ""))
}

// Lookup resolves a colour name (or alias) from the vocabulary.
// Name matching is case-insensitive and ignores spaces and dashes.
func Lookup(name string) (RGB, bool) {
	normalised := normalise(name)
	for i := range namedColours {
		if namedColours[i].Name == normalised {
			return RGB{R: namedColours[i].R, G: namedColours[i].G, B: namedColours[i].B}, true
		}
		for _, alias := range namedColours[i].Aliases {
			if alias == normalised {
				return RGB{R: namedColours[i].R, G: namedColours[i].G, B: namedColours[i].B}, true
			}
		}
	}
	return RGB{}, false
}

// Parse resolves a colour specification: a vocabulary name first, then a
// "#rrggbb" hex literal. Anything else is an error naming the input.
func Parse(s string) (RGB, error) {
	if s == "" {
		return RGB{}, fmt.Errorf("empty colour")
	}
	if rgb, ok := Lookup(s); ok {
		return rgb, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	return RGB{}, fmt.Errorf("unrecognised colour %q (known colours: %s)", s, strings.Join(Names(), ", "))
}

// parseHex converts a "#rrggbb" string to RGB.
func parseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid colour %q: expected 6-char hex", s)
	}
	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Names returns the sorted primary names of the colour vocabulary.
// Aliases are not included.
func Names() []string {
	names := make([]string, len(namedColours))
	for i := range namedColours {
		names[i] = namedColours[i].Name
	}
	sort.Strings(names)
	return names
}
