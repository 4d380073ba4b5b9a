package codec

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Toolchain holds the resolved paths of the external codec binaries and
// implements the three optimizer capabilities by shelling out to them.
type Toolchain struct {
	Pngquant  string
	Jpegoptim string
	Cwebp     string
}

// Missing describes one absent external tool.
type Missing struct {
	Tool    string // binary name looked up on PATH
	Package string // Homebrew package that provides it
	Purpose string // what the optimizer needs it for
}

// Locate resolves the codec binaries on PATH, checking in PNG, JPEG, WebP
// order. Every absent tool is collected so the caller can report the full
// list at once instead of failing on the first one.
func Locate() (*Toolchain, []Missing) {
	tc := &Toolchain{}
	var missing []Missing

	lookups := []struct {
		tool, pkg, purpose string
		dest               *string
	}{
		{"pngquant", "pngquant", "PNG optimization", &tc.Pngquant},
		{"jpegoptim", "jpegoptim", "JPEG optimization", &tc.Jpegoptim},
		{"cwebp", "webp", "WebP encoding", &tc.Cwebp},
	}
	for _, l := range lookups {
		path, err := exec.LookPath(l.tool)
		if err != nil {
			missing = append(missing, Missing{Tool: l.tool, Package: l.pkg, Purpose: l.purpose})
			continue
		}
		*l.dest = path
	}

	if len(missing) > 0 {
		return nil, missing
	}
	return tc, nil
}

func (tc *Toolchain) OptimizePNG(ctx context.Context, path string) error {
	return runTool(ctx, tc.Pngquant, pngquantArgs(path))
}

func (tc *Toolchain) OptimizeJPEG(ctx context.Context, path string) error {
	return runTool(ctx, tc.Jpegoptim, jpegoptimArgs(path))
}

// EncodeWebP encodes src into a sibling temp file and renames it over dest
// only after cwebp succeeds, so an in-place re-encode (src == dest) never
// clobbers the original with a partial file.
func (tc *Toolchain) EncodeWebP(ctx context.Context, src, dest string) error {
	tmp, err := os.CreateTemp(filepath.Dir(dest), ".optimize-img-*.webp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	defer os.Remove(tmpPath)

	if err := runTool(ctx, tc.Cwebp, cwebpArgs(src, tmpPath)); err != nil {
		return err
	}
	return replaceFile(tmpPath, dest)
}

func pngquantArgs(path string) []string {
	return []string{
		"--quality", fmt.Sprintf("%d-%d", PngQualityMin, PngQualityMax),
		"--speed", strconv.Itoa(PngSpeed),
		"--strip",
		"--force",
		"--ext", ".png",
		"--", path,
	}
}

func jpegoptimArgs(path string) []string {
	return []string{
		fmt.Sprintf("--max=%d", JpegMaxQuality),
		"--strip-all",
		"--quiet",
		"--", path,
	}
}

func cwebpArgs(src, dest string) []string {
	return []string{
		"-quiet",
		"-q", strconv.Itoa(WebpQuality),
		src,
		"-o", dest,
	}
}

func runTool(ctx context.Context, bin string, args []string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("%s failed: %w (%s)", filepath.Base(bin), err, msg)
		}
		return fmt.Errorf("%s failed: %w", filepath.Base(bin), err)
	}
	return nil
}

// replaceFile renames tmpPath over destPath, removing a stale destination
// first when the rename cannot clobber it.
func replaceFile(tmpPath, destPath string) error {
	if err := os.Rename(tmpPath, destPath); err == nil {
		return nil
	}
	if err := os.Remove(destPath); err != nil && !os.IsNotExist(err) {
		return err
	}
	return os.Rename(tmpPath, destPath)
}
