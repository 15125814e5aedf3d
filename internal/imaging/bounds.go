package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
)

// HasAlpha reports whether img is stored in a pixel format with an alpha
// channel.
//
// Paletted images are reported as lacking one even when the palette holds
// transparent entries; normalizing them expands the palette into RGBA, which
// keeps that transparency.
func HasAlpha(img image.Image) bool {
	switch img.(type) {
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA:
		return true
	}
	return false
}

// WithAlpha returns img unchanged if it already carries an alpha channel,
// otherwise a copy converted to RGBA.
//
// Images converted this way come out fully opaque unless the source color model
// encodes transparency itself (paletted GIF/PNG).
func WithAlpha(img image.Image) image.Image {
	if HasAlpha(img) {
		return img
	}
	return clone.AsRGBA(img)
}

// ContentBounds returns the smallest rectangle containing every pixel whose
// alpha is non-zero.
//
// The rectangle is expressed in img's coordinate space, Min inclusive and Max
// exclusive. An image with no such pixel yields the empty rectangle.
func ContentBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	if b.Empty() {
		return image.Rectangle{}
	}

	opaque := alphaFunc(img)

	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		rowHit := false
		for x := b.Min.X; x < b.Max.X; x++ {
			if !opaque(x, y) {
				continue
			}
			rowHit = true
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
		}
		if rowHit {
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < minX || maxY < minY {
		return image.Rectangle{}
	}
	return image.Rect(minX, minY, maxX+1, maxY+1)
}

// alphaFunc returns a predicate reporting whether the pixel at (x, y) has a
// non-zero alpha. The common 8-bit buffers are read straight from Pix.
func alphaFunc(img image.Image) func(x, y int) bool {
	switch m := img.(type) {
	case *image.NRGBA:
		return func(x, y int) bool {
			return m.Pix[m.PixOffset(x, y)+3] != 0
		}
	case *image.RGBA:
		return func(x, y int) bool {
			return m.Pix[m.PixOffset(x, y)+3] != 0
		}
	}
	return func(x, y int) bool {
		_, _, _, a := img.At(x, y).RGBA()
		return a != 0
	}
}
