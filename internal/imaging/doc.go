// Package imaging provides the image primitives used by the trimmer.
//
// It loads and decodes source files, normalizes buffers so they carry an
// alpha channel, locates the bounding box of non-transparent content, crops,
// and encodes the result as lossy WebP. All operations work with standard Go
// image.Image types and use a coordinate system where (0,0) is at the top-left
// corner, X increases rightward, and Y increases downward.
//
// # Coordinate System
//
// Regions are image.Rectangle values in the source image's own coordinate
// space:
//   - Min (x1,y1) is inclusive (top-left)
//   - Max (x2,y2) is exclusive (bottom-right)
//   - An empty rectangle means "no content"
//
// Cropped buffers are re-based so their origin is (0,0).
//
// # Supported Formats
//
// Decoding: PNG, JPEG, GIF (standard library) and WebP, BMP, TIFF
// (golang.org/x/image). Encoding: WebP only, through libwebp.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Files that cannot be opened or decoded
//   - Crop regions outside image bounds or with zero area
//   - Encoder failures
package imaging
