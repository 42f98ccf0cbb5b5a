// Package pathutil provides path identifier normalization for fimon.
//
// Fingerprint maps key files by their path relative to the monitored
// root, with forward-slash separators and NFC-normalized Unicode, so a
// baseline is portable across machines with different absolute mount
// points and filename encodings.
package pathutil

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Identifier converts an absolute file path into its map key: the path
// relative to root, slash-separated and NFC-normalized.
func Identifier(root, abs string) (string, error) {
	rel, err := filepath.Rel(root, abs)
	if err != nil {
		return "", fmt.Errorf("relativize %s: %w", abs, err)
	}
	return norm.NFC.String(filepath.ToSlash(rel)), nil
}

// Normalize applies the identifier normalization to an already-relative
// path, as read back from a persisted baseline.
func Normalize(rel string) string {
	return norm.NFC.String(filepath.ToSlash(rel))
}

// Join resolves an identifier back to an absolute path under root.
func Join(root, identifier string) string {
	return filepath.Join(root, filepath.FromSlash(identifier))
}

// ValidFileName reports whether name is usable as a baseline, key, or
// log file name: a bare name without separators or parent references.
func ValidFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
