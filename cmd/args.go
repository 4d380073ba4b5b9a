package cmd

import (
	"fmt"
	"io"
	"strings"
)

// RunConfig is the immutable result of scanning the argument vector.
type RunConfig struct {
	ShowHelp    bool
	NoBackup    bool
	ConvertWebp bool
	Files       []string
}

type unknownOptionError struct {
	opt string
}

func (e *unknownOptionError) Error() string {
	return fmt.Sprintf("unknown option %s", e.opt)
}

// parseArgs scans the argument vector left to right. File order is
// preserved and duplicates are allowed; existence checks belong to the
// processor, not here.
func parseArgs(args []string) (RunConfig, error) {
	cfg := RunConfig{}
	for _, arg := range args {
		switch {
		case arg == "-h" || arg == "--help":
			cfg.ShowHelp = true
			return cfg, nil
		case arg == "--no-backup":
			cfg.NoBackup = true
		case arg == "--webp":
			cfg.ConvertWebp = true
		case strings.HasPrefix(arg, "-"):
			return cfg, &unknownOptionError{opt: arg}
		default:
			cfg.Files = append(cfg.Files, arg)
		}
	}
	return cfg, nil
}

const usageText = `Usage: optimize-img [options] [image_files...]

Optimize PNG, JPEG, and WebP images in place using pngquant, jpegoptim,
and cwebp. SVG files are detected but left untouched.

Options:
  --no-backup   Do not create <name>-old.<ext> backup copies
  --webp        Create WebP versions alongside the originals instead of
                optimizing in place
  -h, --help    Show this help message

With no image files given, every supported image in the current
directory is processed.
`

func printUsage(w io.Writer) {
	fmt.Fprint(w, usageText)
}
