package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts region from img. The result is an *image.NRGBA whose origin is
// (0,0) and whose size equals region.Dx() x region.Dy().
func Crop(img image.Image, region image.Rectangle) (*image.NRGBA, error) {
	bounds := img.Bounds()

	// Validate coordinates
	if !region.In(bounds) {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			region.Min.X, region.Min.Y, region.Max.X, region.Max.Y,
			bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if region.Empty() {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, region), nil
}
