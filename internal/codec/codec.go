// Package codec wraps the external compression tools the optimizer
// delegates pixel work to: pngquant, jpegoptim, and cwebp.
package codec

import "context"

// Tuning constants for the lossy recompression passes.
const (
	PngQualityMin = 65
	PngQualityMax = 80
	// PngSpeed selects pngquant's slowest, most thorough trade-off.
	PngSpeed = 1

	JpegMaxQuality = 80
	WebpQuality    = 80
)

// PngOptimizer recompresses a PNG in place with metadata stripped.
type PngOptimizer interface {
	OptimizePNG(ctx context.Context, path string) error
}

// JpegOptimizer recompresses a JPEG in place with metadata stripped.
type JpegOptimizer interface {
	OptimizeJPEG(ctx context.Context, path string) error
}

// WebpEncoder encodes a readable image file to a WebP at dest. Passing the
// source path as dest re-encodes in place; dest is only ever replaced by a
// complete encoding.
type WebpEncoder interface {
	EncodeWebP(ctx context.Context, src, dest string) error
}
