// Package imageio writes rendered images to files and streams.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image encoding.
type Format int

const (
	PNG Format = iota
	BMP
	TIFF
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ErrUnknownFormat is returned for file extensions and format names with no encoder.
var ErrUnknownFormat = errors.New("unknown image format")

// ParseFormat returns the Format named s, such as "png" or "tif".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks the Format matching the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, f Format, img image.Image) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// Save writes img to path, encoded according to the path's extension.
// Errors from creating, writing or closing the file are returned as is.
func Save(path string, img image.Image) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	err = Encode(f, format, img)
	if err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
