package raster

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/jmylchreest/ngon/internal/colour"
)

// Label draws a single line of text with its baseline at (x, y).
// Face7x13 only covers printable ASCII; anything else renders as the
// replacement glyph.
func (c *Canvas) Label(x, y int, text string, col colour.RGB) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col.RGBA()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
