package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// ImageInfo contains metadata about a loaded image file.
//
// It is gathered once at load time so callers can log or report on the source
// without re-reading it.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the name of the decoder that accepted the file: "png",
	// "jpeg", "gif", "webp", "bmp" or "tiff". Detection is based on file
	// contents, not on the extension.
	Format string `json:"format"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the decoded buffer carries an alpha channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Load opens and decodes the image at path.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, WebP, BMP and TIFF.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image format
//     and color model (e.g., *image.NRGBA, *image.YCbCr, *image.Paletted).
//   - *ImageInfo: Metadata about the decoded image and the file it came from.
//   - error: Non-nil if the file cannot be opened, stat'd or decoded.
//
// # Errors
//
// Open failures are wrapped so that errors.Is(err, fs.ErrNotExist) still holds.
// Decode failures wrap the codec error (image.ErrFormat for unknown formats).
func Load(path string) (image.Image, *ImageInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to stat file: %w", err)
	}

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	return img, &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		ColorDepth:    colorDepth(img),
		HasAlpha:      HasAlpha(img),
		FileSizeBytes: stat.Size(),
	}, nil
}

func colorDepth(img image.Image) string {
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16:
		return "16-bit"
	}
	return "8-bit"
}
