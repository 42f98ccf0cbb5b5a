// Package model defines the core data types for fimon.
package model

import "sort"

// Digest is a SHA-256 digest stored as a lowercase hex string.
// The empty string is the sentinel for a file that was present but
// could not be read; it is never a valid digest.
type Digest string

// DigestUnknown marks a file that enumerated but failed to hash.
const DigestUnknown Digest = ""

// Known reports whether d is a real digest rather than the sentinel.
func (d Digest) Known() bool {
	return d != DigestUnknown
}

// FingerprintMap maps a path identifier (relative to the monitored root,
// forward-slash separators) to its content digest. It is the sole
// persistent state of the engine besides the files themselves.
type FingerprintMap map[string]Digest

// Clone returns a deep copy of the map.
func (m FingerprintMap) Clone() FingerprintMap {
	out := make(FingerprintMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Equal reports whether both maps contain exactly the same entries.
func (m FingerprintMap) Equal(other FingerprintMap) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		if ov, ok := other[k]; !ok || ov != v {
			return false
		}
	}
	return true
}

// Paths returns the identifiers in lexicographic order.
func (m FingerprintMap) Paths() []string {
	paths := make([]string, 0, len(m))
	for k := range m {
		paths = append(paths, k)
	}
	sort.Strings(paths)
	return paths
}
