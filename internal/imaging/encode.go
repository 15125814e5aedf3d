package imaging

import (
	"fmt"
	"image"
	"io"

	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// DefaultWebPQuality is the lossy quality used for trimmed output.
const DefaultWebPQuality = 95

// WebPEncoder encodes images as lossy WebP.
type WebPEncoder struct {
	// Quality is the lossy quality in the range 0-100.
	Quality float32
}

// NewWebPEncoder returns an encoder using DefaultWebPQuality.
func NewWebPEncoder() *WebPEncoder {
	return &WebPEncoder{Quality: DefaultWebPQuality}
}

// Encode writes img to w.
//
// Alpha is kept: libwebp compresses the alpha plane losslessly even in lossy
// mode, so fully transparent and opaque pixels survive a round trip.
func (e *WebPEncoder) Encode(w io.Writer, img image.Image) error {
	if e.Quality < 0 || e.Quality > 100 {
		return fmt.Errorf("invalid webp quality %v: must be within 0-100", e.Quality)
	}

	options, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, e.Quality)
	if err != nil {
		return fmt.Errorf("failed to create webp encoder options: %w", err)
	}

	if err := webp.Encode(w, img, options); err != nil {
		return fmt.Errorf("failed to encode webp: %w", err)
	}
	return nil
}
