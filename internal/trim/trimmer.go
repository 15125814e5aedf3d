//go:generate mockgen -package mock_trim -source trimmer.go -destination mock_trim/mock_encoder.go Encoder

package trim

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/ironsheep/image-trim/internal/imaging"
)

// Encoder serializes the trimmed buffer.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

// Result describes a completed trim.
type Result struct {
	InputPath  string
	OutputPath string

	// Original is the size of the source image.
	Original image.Point
	// Trimmed is the size of the written image.
	Trimmed image.Point
	// Content is the cropped region in source coordinates.
	Content image.Rectangle

	BytesWritten int
}

// Trimmer crops transparent margins off an image and writes the result.
type Trimmer struct {
	encoder Encoder
	logger  *zap.Logger
}

// New returns a Trimmer using enc for output. A nil logger disables logging.
func New(enc Encoder, logger *zap.Logger) *Trimmer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Trimmer{encoder: enc, logger: logger}
}

// Trim crops the image at inputPath to the bounding box of its non-transparent
// pixels and writes it to outputPath, replacing any existing file.
//
// Errors wrap one of ErrNotFound, ErrDecode, ErrEmptyContent or ErrWrite. A
// source that exists but cannot be opened counts as not found. The output is
// only opened once the encoded image is complete in memory.
func (t *Trimmer) Trim(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	log := t.logger.With(zap.String("input", inputPath), zap.String("output", outputPath))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stat, err := os.Stat(inputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, inputPath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrNotFound, inputPath)
	}

	src, info, err := imaging.Load(inputPath)
	if errors.Is(err, fs.ErrPermission) || errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, inputPath, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, inputPath, err)
	}
	log.Debug("Loaded source image",
		zap.String("format", info.Format),
		zap.Int("width", info.Width),
		zap.Int("height", info.Height),
		zap.String("color_depth", info.ColorDepth),
		zap.Bool("has_alpha", info.HasAlpha),
		zap.Int64("file_size_bytes", info.FileSizeBytes))

	if !info.HasAlpha {
		log.Debug("Converting source to RGBA", zap.String("decoded_type", fmt.Sprintf("%T", src)))
	}
	src = imaging.WithAlpha(src)

	box := imaging.ContentBounds(src)
	if box.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrEmptyContent, inputPath)
	}
	log.Debug("Found content bounds", zap.Stringer("box", box))

	cropped, err := imaging.Crop(src, box)
	if err != nil {
		return nil, fmt.Errorf("crop %s: %w", inputPath, err)
	}

	var buf bytes.Buffer
	if err := t.encoder.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Plain open-for-write: symlinks are followed and an existing file keeps
	// its mode and owner.
	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWrite, err)
	}

	res := &Result{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		Original:     src.Bounds().Size(),
		Trimmed:      cropped.Bounds().Size(),
		Content:      box,
		BytesWritten: buf.Len(),
	}

	log.Info("Trimmed image",
		zap.Stringer("original", res.Original),
		zap.Stringer("trimmed", res.Trimmed),
		zap.Int("bytes", res.BytesWritten))

	return res, nil
}
