package export

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/Faultbox/fractalgen/pkg/ifs"
	"github.com/Faultbox/fractalgen/pkg/math"
	"github.com/Faultbox/fractalgen/pkg/terrain"
)

// ErrUnsupportedFormat is returned for an image format with no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format is an image file format.
type Format string

const (
	PNG  Format = "png"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// ParseFormat resolves a format name or file extension.
func ParseFormat(name string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(name), ".") {
	case "png", "":
		return PNG, nil
	case "bmp":
		return BMP, nil
	case "tiff", "tif":
		return TIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// Ext returns the file extension for f, with the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case PNG:
		return png.Encode(w, img)
	case BMP:
		return bmp.Encode(w, img)
	case TIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

// SaveImage encodes img to path.
func SaveImage(path string, img image.Image, f Format) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := Encode(file, img, f); err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	return file.Close()
}

// HeightImage renders a height field sampled on a width x height grid
// (x varying fastest) as grayscale, Target.Min black and Target.Max
// white. The image is flipped vertically so +y points up.
func HeightImage(field *terrain.HeightField, width, height int) (*image.Gray, error) {
	if field.Len() != width*height {
		return nil, fmt.Errorf("height data size mismatch: expected %d, got %d", width*height, field.Len())
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	span := field.Target.Max - field.Target.Min
	for y := range height {
		srcY := height - 1 - y // Flip Y
		for x := range width {
			t := (field.Heights[srcY*width+x] - field.Target.Min) / span
			img.Pix[y*img.Stride+x] = gray(t)
		}
	}
	return img, nil
}

// PointsImage plots points into a width x height image, scaled to fill
// it with a one pixel margin and flipped so +y points up.
func PointsImage(points []math.Vec2, width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	if len(points) == 0 || width < 3 || height < 3 {
		return img
	}

	lo, hi := ifs.Bounds(points)
	sx := float64(width-3) / max(hi.X-lo.X, 1e-12)
	sy := float64(height-3) / max(hi.Y-lo.Y, 1e-12)
	for _, p := range points {
		px := 1 + int((p.X-lo.X)*sx+0.5)
		py := height - 2 - int((p.Y-lo.Y)*sy+0.5)
		img.SetGray(px, py, color.Gray{Y: 255})
	}
	return img
}

func gray(t float64) uint8 {
	t = max(0, min(1, t))
	return uint8(t*255 + 0.5)
}
