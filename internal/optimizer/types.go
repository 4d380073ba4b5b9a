package optimizer

import (
	"optimize-img/internal/codec"
	"optimize-img/pkg/imgutil"
)

// Options is the run-scoped configuration handed to the processor. It is
// built once from the command line and never mutated.
type Options struct {
	NoBackup    bool
	ConvertWebp bool
}

// Codecs bundles the external compression capabilities the processor
// dispatches to. Tests substitute fakes here.
type Codecs struct {
	Png  codec.PngOptimizer
	Jpeg codec.JpegOptimizer
	Webp codec.WebpEncoder
}

// Task is one image file queued for processing.
type Task struct {
	Path string
	// Base is Path up to (not including) the last dot; Ext is everything
	// after it with casing preserved. A dotless path has an empty Ext,
	// which lands in the unsupported-format branch.
	Base string
	Ext  string
}

// NewTask derives Base and Ext from path.
func NewTask(path string) Task {
	base, ext := imgutil.SplitExt(path)
	return Task{Path: path, Base: base, Ext: ext}
}

// Summary aggregates the outcomes of one run.
type Summary struct {
	Processed    int
	Optimized    int
	Converted    int
	Backups      int
	Skipped      int
	Errors       int
	TagsStripped int
	BytesSaved   int64
}
