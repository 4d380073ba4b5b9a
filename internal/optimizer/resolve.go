package optimizer

import (
	"os"
	"strings"

	"optimize-img/pkg/imgutil"
)

// Resolve produces the ordered task list. Explicit paths are used verbatim
// with no existence filtering; with none given, the current directory is
// enumerated non-recursively. fromListing reports which of the two
// happened so the caller can tell "nothing on the command line" apart from
// "nothing in the directory".
func Resolve(explicit []string) (tasks []Task, fromListing bool, err error) {
	if len(explicit) > 0 {
		for _, path := range explicit {
			tasks = append(tasks, NewTask(path))
		}
		return tasks, false, nil
	}

	entries, err := os.ReadDir(".")
	if err != nil {
		return nil, true, err
	}

	// os.ReadDir sorts by name, so enumeration order is reproducible
	// run to run on an unchanged directory.
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !imgutil.SupportedName(name) {
			continue
		}
		// Stat follows symlinks, so a linked image is enumerated the
		// same way the processor's own existence check sees it.
		info, err := os.Stat(name)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		tasks = append(tasks, NewTask(name))
	}
	return tasks, true, nil
}
