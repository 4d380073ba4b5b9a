// Package imgutil provides the file-type plumbing shared by the optimizer.
package imgutil

import "strings"

// Kind identifies a supported image type.
type Kind int

const (
	KindUnknown Kind = iota
	KindPNG
	KindJPEG
	KindWebP
	KindSVG
)

func (k Kind) String() string {
	switch k {
	case KindPNG:
		return "png"
	case KindJPEG:
		return "jpeg"
	case KindWebP:
		return "webp"
	case KindSVG:
		return "svg"
	default:
		return "unknown"
	}
}

// KindForExt maps a lowercased extension (without the dot) to a Kind.
func KindForExt(ext string) Kind {
	switch ext {
	case "png":
		return KindPNG
	case "jpg", "jpeg":
		return KindJPEG
	case "webp":
		return KindWebP
	case "svg":
		return KindSVG
	default:
		return KindUnknown
	}
}

// SplitExt splits a path at the last dot in the whole string. The returned
// extension keeps its original casing and excludes the dot. A path without
// a dot yields the path itself and an empty extension.
func SplitExt(path string) (base, ext string) {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return path, ""
	}
	return path[:idx], path[idx+1:]
}

// SupportedName reports whether name carries one of the extensions the
// optimizer handles, compared case-insensitively.
func SupportedName(name string) bool {
	_, ext := SplitExt(name)
	return KindForExt(strings.ToLower(ext)) != KindUnknown
}
