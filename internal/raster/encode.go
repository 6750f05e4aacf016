package raster

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies an output image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatGIF  Format = "gif"
)

// FormatForPath derives the output format from a file extension.
// An empty extension defaults to PNG.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", "":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".gif":
		return FormatGIF, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (supported: .png, .jpg, .jpeg, .gif)", filepath.Ext(path))
	}
}

// Encode serialises the canvas to the writer in the given format.
func (c *Canvas) Encode(w io.Writer, format Format) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, c.img)
	case FormatJPEG:
		return jpeg.Encode(w, c.img, &jpeg.Options{Quality: 95})
	case FormatGIF:
		return gif.Encode(w, c.img, nil)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Save writes the canvas to the given path. The format is derived from the
// extension and validated before the file is created, so an unsupported
// extension never leaves a partial file behind. The file handle is closed
// on every path.
func (c *Canvas) Save(path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := c.Encode(f, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
