package optimizer

import (
	"os"

	exif "github.com/dsoprea/go-exif/v3"
)

// countJpegMetadataTags reports how many flat EXIF tags the strip-all pass
// is about to discard. The count is informational only; a file with no
// EXIF block, or any read problem, yields zero and never blocks the
// optimization itself.
func countJpegMetadataTags(path string) int {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	tags, _, err := exif.GetFlatExifDataUniversalSearchWithReadSeeker(f, nil, true)
	if err != nil {
		return 0
	}
	return len(tags)
}
