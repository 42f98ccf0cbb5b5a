// Package snapshot resolves the monitored target and enumerates the
// files in scope.
package snapshot

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fimon-project/fimon/pkg/errclass"
	"github.com/fimon-project/fimon/pkg/pathutil"
)

// Target is the resolved monitoring scope: a single file or a whole
// directory subtree, plus the base names excluded from enumeration.
type Target struct {
	// Root is the directory owning the baseline, key, and log files.
	// For single-file targets it is the file's parent directory.
	Root string
	// Path is the resolved absolute target (equal to Root for
	// directory targets).
	Path string
	// SingleFile marks a target that denotes one file, not a subtree.
	SingleFile bool

	ignore map[string]struct{}
}

// Resolve builds a Target from a user-supplied path. The path must
// exist at resolution time; whether it is a file or a directory is
// detected here.
func Resolve(path string, ignoreNames []string) (*Target, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errclass.ErrTargetInvalid.WithMessagef("resolve %s: %v", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, errclass.ErrTargetInvalid.WithMessagef("stat %s: %v", abs, err)
	}

	t := &Target{
		Path:   abs,
		ignore: make(map[string]struct{}, len(ignoreNames)),
	}
	if info.IsDir() {
		t.Root = abs
	} else {
		t.Root = filepath.Dir(abs)
		t.SingleFile = true
	}
	for _, name := range ignoreNames {
		t.ignore[name] = struct{}{}
	}
	return t, nil
}

// Ignored reports whether a base name is excluded from enumeration.
func (t *Target) Ignored(base string) bool {
	_, ok := t.ignore[base]
	return ok
}

// Enumerate returns the absolute paths of every regular file in scope.
//
// Single-file targets are re-checked at call time; a vanished file
// yields an empty set. Directory targets are traversed recursively,
// skipping ignored base names. Subtrees that cannot be read are
// skipped rather than aborting the enumeration. Order is unspecified;
// downstream comparison is set-based.
func (t *Target) Enumerate() []string {
	if t.SingleFile {
		if info, err := os.Stat(t.Path); err == nil && info.Mode().IsRegular() {
			return []string{t.Path}
		}
		return nil
	}

	var files []string
	// The walk callback never returns a real error, only fs.SkipDir.
	_ = filepath.WalkDir(t.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if t.Ignored(d.Name()) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.Type().IsRegular() {
			files = append(files, path)
		}
		return nil
	})
	return files
}

// Identifier converts an absolute path inside the target into its
// fingerprint-map key.
func (t *Target) Identifier(abs string) (string, error) {
	return pathutil.Identifier(t.Root, abs)
}
