// Package optimizer implements the per-file pipeline: resolve inputs, back
// files up, and hand pixel work to the external codecs.
package optimizer

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"optimize-img/pkg/imgutil"
)

// Processor walks the task list strictly in order. One file is fully
// handled before the next begins; a single file's failure never aborts
// the batch.
type Processor struct {
	codecs Codecs
	opts   Options
	out    io.Writer
}

func New(codecs Codecs, opts Options, out io.Writer) *Processor {
	return &Processor{codecs: codecs, opts: opts, out: out}
}

func (p *Processor) Process(ctx context.Context, tasks []Task) Summary {
	var sum Summary
	for _, task := range tasks {
		p.processOne(ctx, task, &sum)
	}
	return sum
}

func (p *Processor) processOne(ctx context.Context, task Task, sum *Summary) {
	info, err := os.Stat(task.Path)
	if err != nil || !info.Mode().IsRegular() {
		fmt.Fprintf(p.out, "File not found: %s\n", task.Path)
		return
	}
	sum.Processed++

	kind := imgutil.KindForExt(strings.ToLower(task.Ext))

	// --webp creates a derivative next to the original and leaves the
	// original alone, with no backup. WebP and SVG sources fall through
	// to the normal path instead.
	if p.opts.ConvertWebp && kind != imgutil.KindWebP && kind != imgutil.KindSVG {
		p.convert(ctx, task, info.Size(), sum)
		return
	}

	// The backup happens before dispatch, so SVG and unsupported files
	// get one too.
	if !p.opts.NoBackup {
		backupPath := task.Base + "-old." + task.Ext
		if err := copyFile(task.Path, backupPath); err != nil {
			fmt.Fprintf(p.out, "Backup failed for %s: %v\n", task.Path, err)
			sum.Errors++
			return
		}
		fmt.Fprintf(p.out, "Created backup: %s\n", backupPath)
		sum.Backups++
	}

	p.optimize(ctx, task, kind, info.Size(), sum)
}

func (p *Processor) convert(ctx context.Context, task Task, srcSize int64, sum *Summary) {
	fmt.Fprintf(p.out, "Converting to WebP: %s\n", task.Path)

	dest := task.Base + ".webp"
	if err := p.codecs.Webp.EncodeWebP(ctx, task.Path, dest); err != nil {
		fmt.Fprintf(p.out, "WebP conversion failed for %s: %v\n", task.Path, err)
		sum.Errors++
		return
	}

	fmt.Fprintf(p.out, "Created WebP version: %s\n", dest)
	sum.Converted++
	if destInfo, err := os.Stat(dest); err == nil {
		p.reportSavings(srcSize, destInfo.Size(), sum)
	}
}

func (p *Processor) optimize(ctx context.Context, task Task, kind imgutil.Kind, srcSize int64, sum *Summary) {
	var err error
	switch kind {
	case imgutil.KindPNG:
		fmt.Fprintf(p.out, "Optimizing PNG: %s\n", task.Path)
		err = p.codecs.Png.OptimizePNG(ctx, task.Path)
	case imgutil.KindJPEG:
		fmt.Fprintf(p.out, "Optimizing JPEG: %s\n", task.Path)
		sum.TagsStripped += countJpegMetadataTags(task.Path)
		err = p.codecs.Jpeg.OptimizeJPEG(ctx, task.Path)
	case imgutil.KindWebP:
		fmt.Fprintf(p.out, "Optimizing WebP: %s\n", task.Path)
		err = p.codecs.Webp.EncodeWebP(ctx, task.Path, task.Path)
	case imgutil.KindSVG:
		fmt.Fprintf(p.out, "SVG file detected: %s (no optimization performed)\n", task.Path)
		return
	default:
		fmt.Fprintf(p.out, "Unsupported format for %s, skipping...\n", task.Path)
		sum.Skipped++
		return
	}

	if err != nil {
		fmt.Fprintf(p.out, "Optimization failed for %s: %v\n", task.Path, err)
		sum.Errors++
		return
	}
	sum.Optimized++

	if info, err := os.Stat(task.Path); err == nil {
		p.reportSavings(srcSize, info.Size(), sum)
	}
}

// reportSavings prints an indented per-file reduction note. Growth is not
// counted against the total; pngquant can produce a larger file when the
// quality floor forces it.
func (p *Processor) reportSavings(before, after int64, sum *Summary) {
	saved := before - after
	if saved <= 0 || before == 0 {
		return
	}
	sum.BytesSaved += saved
	pct := float64(saved) / float64(before) * 100
	fmt.Fprintf(p.out, "  %s -> %s (%.1f%% reduction)\n",
		humanize.Bytes(uint64(before)), humanize.Bytes(uint64(after)), pct)
}

// copyFile writes a byte-for-byte copy of src at dest, carrying over the
// source permission bits.
func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
