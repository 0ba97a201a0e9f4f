// Package batch loads many source files and analyzes them concurrently.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Ext is the source file extension picked up when a directory is given.
const Ext = ".lx"

// File is one loaded source.
type File struct {
	Path string // as given, or joined under the given directory
	Src  string
}

// Load reads every path. Directories expand to their *.lx files (not
// recursive, sorted by name). Duplicates are loaded once. All read errors are
// collected; files that did load are still returned.
func Load(paths []string) ([]File, error) {
	var (
		errs  []string
		seen  = map[string]bool{} // absolute path → true
		files []File
	)
	add := func(p string) {
		abs := mustAbs(p)
		if seen[abs] {
			return
		}
		seen[abs] = true
		data, err := os.ReadFile(p)
		if err != nil {
			errs = append(errs, fmt.Sprintf("read %s: %v", p, err))
			return
		}
		files = append(files, File{Path: p, Src: string(data)})
	}

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			errs = append(errs, fmt.Sprintf("stat %s: %v", p, err))
			continue
		}
		if !info.IsDir() {
			add(p)
			continue
		}
		entries, err := os.ReadDir(p)
		if err != nil {
			errs = append(errs, fmt.Sprintf("read dir %s: %v", p, err))
			continue
		}
		var names []string
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), Ext) {
				names = append(names, e.Name())
			}
		}
		sort.Strings(names)
		for _, n := range names {
			add(filepath.Join(p, n))
		}
	}

	if len(errs) > 0 {
		return files, fmt.Errorf("load sources: %s", strings.Join(errs, "; "))
	}
	return files, nil
}

func mustAbs(p string) string {
	a, err := filepath.Abs(p)
	if err != nil {
		return p
	}
	if r, err := filepath.EvalSymlinks(a); err == nil {
		return r
	}
	return a
}
