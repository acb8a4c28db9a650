// Package fswalk finds the files and directories below a root directory that match a pattern.
package fswalk

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/lyraproj/locator/matcher"
	"github.com/scylladb/go-set/strset"
)

// Walker descends directory trees, pruning every directory that cannot contain a match.
type Walker struct {
	matcher *matcher.Matcher
	logger  hclog.Logger
}

// New creates a Walker that uses the given matcher and logger. Nil arguments mean
// matcher.Default and hclog.Default() respectively.
func New(m *matcher.Matcher, logger hclog.Logger) *Walker {
	if m == nil {
		m = matcher.Default
	}
	if logger == nil {
		logger = hclog.Default()
	}
	return &Walker{matcher: m, logger: logger.Named(`fswalk`)}
}

// Walk returns the absolute paths of all files and directories below rootDir that match the
// given sub pattern. A root that does not exist, is not a directory or cannot be read yields
// an empty result.
func (w *Walker) Walk(rootDir, subPattern string) []string {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		w.logger.Warn(`unable to make directory absolute`, `path`, rootDir, `error`, err)
		return nil
	}

	fi, err := os.Stat(root)
	switch {
	case os.IsNotExist(err):
		w.logger.Trace(`skipping search since directory does not exist`, `path`, root)
		return nil
	case err != nil:
		w.logger.Warn(`skipping search since directory cannot be accessed`, `path`, root, `error`, err)
		return nil
	case !fi.IsDir():
		w.logger.Warn(`skipping search since path does not denote a directory`, `path`, root)
		return nil
	}
	if _, err = os.ReadDir(root); err != nil {
		w.logger.Warn(`skipping search since directory cannot be read`, `path`, root, `error`, err)
		return nil
	}

	fullPattern := filepath.ToSlash(root)
	subPattern = filepath.ToSlash(subPattern)
	if !strings.HasPrefix(subPattern, `/`) && !strings.HasSuffix(fullPattern, `/`) {
		fullPattern += `/`
	}
	fullPattern += subPattern

	w.logger.Trace(`searching directory for files matching pattern`, `path`, root, `pattern`, fullPattern)
	wk := &walk{Walker: w, fullPattern: fullPattern, visited: strset.New()}
	wk.enter(root)
	wk.descend(root)
	return wk.result
}

type walk struct {
	*Walker
	fullPattern string
	visited     *strset.Set
	result      []string
}

// enter records the real path of the given directory and returns false if it was already
// visited during this walk.
func (wk *walk) enter(dir string) bool {
	rp, err := filepath.EvalSymlinks(dir)
	if err != nil {
		rp = dir
	}
	if wk.visited.Has(rp) {
		wk.logger.Debug(`skipping directory that was already visited`, `path`, dir, `real`, rp)
		return false
	}
	wk.visited.Add(rp)
	return true
}

func (wk *walk) descend(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		wk.logger.Warn(`skipping directory that cannot be read`, `path`, dir, `error`, err)
		return
	}

	// os.ReadDir returns the entries sorted by name
	for _, e := range entries {
		childPath := filepath.Join(dir, e.Name())
		slashPath := filepath.ToSlash(childPath)
		if wk.isDir(childPath, e) && wk.matcher.MatchStart(wk.fullPattern, slashPath+`/`) {
			if wk.enter(childPath) {
				wk.descend(childPath)
			}
		}
		if wk.matcher.Match(wk.fullPattern, slashPath) {
			wk.result = append(wk.result, childPath)
		}
	}
}

// isDir returns true for directories and for symbolic links that point to directories
func (wk *walk) isDir(path string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
