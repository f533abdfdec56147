package fontio

import (
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fontwork/fontdup"
)

// Discover resolves the set of font files to compare: the files named
// explicitly plus, when googleFonts points at a checkout of the
// google/fonts repository, one exemplar per family directory. The result
// is deduplicated and sorted.
func Discover(files []string, googleFonts string) ([]string, error) {
	seen := make(map[string]bool)
	for _, f := range files {
		info, err := os.Stat(f)
		if err != nil {
			return nil, err
		}
		if !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%s is not a file", f)
		}
		seen[f] = true
	}

	if googleFonts != "" {
		err := filepath.WalkDir(googleFonts, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || d.Name() != "METADATA.pb" {
				return nil
			}
			if exemplar, ok := pickExemplar(filepath.Dir(path)); ok {
				seen[exemplar] = true
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return slices.Sorted(maps.Keys(seen)), nil
}

// pickExemplar chooses one representative font from a family directory.
// Italics are skipped, and among several remaining files -Regular wins.
// Most variable-font families reduce to a single file this way: at most
// two files, and -Italic was eliminated.
func pickExemplar(dir string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.[ot]tf"))
	if err != nil {
		return "", false
	}
	candidates := matches[:0]
	for _, m := range matches {
		if strings.Contains(filepath.Base(m), "-Italic") {
			continue
		}
		candidates = append(candidates, m)
	}

	switch {
	case len(candidates) == 1:
		fontdup.Logger().Debug("picked exemplar", "font", candidates[0])
		return candidates[0], true
	case len(candidates) > 1:
		for _, c := range candidates {
			if strings.Contains(filepath.Base(c), "-Regular") {
				fontdup.Logger().Debug("picked exemplar", "font", c)
				return c, true
			}
		}
	}
	fontdup.Logger().Warn("unable to identify an exemplar", "dir", dir)
	return "", false
}
