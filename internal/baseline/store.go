// Package baseline persists the fingerprint map as an encrypted record.
package baseline

import (
	"fmt"
	"os"
	"strings"

	"github.com/fimon-project/fimon/internal/keystore"
	"github.com/fimon-project/fimon/pkg/errclass"
	"github.com/fimon-project/fimon/pkg/fsutil"
	"github.com/fimon-project/fimon/pkg/model"
	"github.com/fimon-project/fimon/pkg/pathutil"
)

// Store reads and writes the baseline record for one monitored root.
type Store struct {
	path    string
	keyPath string
}

// NewStore creates a store persisting to path, encrypted under the key
// at keyPath.
func NewStore(path, keyPath string) *Store {
	return &Store{path: path, keyPath: keyPath}
}

// Path returns the baseline file location.
func (s *Store) Path() string { return s.path }

// Exists reports whether a baseline record is present on disk.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Load reads, decrypts, and parses the persisted baseline.
//
// A missing baseline file is not an error: it signals "no prior
// baseline" and yields an empty map. Every other failure (unreadable
// key, decryption failure, malformed record) returns an empty map
// together with the error, so the caller can report it and proceed in
// degraded mode.
func (s *Store) Load() (model.FingerprintMap, error) {
	raw, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return model.FingerprintMap{}, nil
	}
	if err != nil {
		return model.FingerprintMap{}, errclass.ErrBaselineCorrupt.WithMessagef("read baseline %s: %v", s.path, err)
	}

	key, err := keystore.ResolveOrCreateKey(s.keyPath)
	if err != nil {
		return model.FingerprintMap{}, fmt.Errorf("resolve key: %w", err)
	}

	plaintext, err := keystore.Open(key, raw)
	if err != nil {
		return model.FingerprintMap{}, fmt.Errorf("decrypt baseline %s: %w", s.path, err)
	}

	m, err := decode(plaintext)
	if err != nil {
		return model.FingerprintMap{}, err
	}
	return m, nil
}

// Save encodes the map, encrypts it, and atomically replaces the
// baseline file. A crash mid-write never leaves a truncated or
// half-encrypted record visible to a subsequent Load.
func (s *Store) Save(m model.FingerprintMap) error {
	key, err := keystore.ResolveOrCreateKey(s.keyPath)
	if err != nil {
		return fmt.Errorf("resolve key: %w", err)
	}

	sealed, err := keystore.Seal(key, encode(m))
	if err != nil {
		return fmt.Errorf("encrypt baseline: %w", err)
	}

	if err := fsutil.AtomicWrite(s.path, sealed, 0644); err != nil {
		return errclass.ErrSaveFailed.WithMessagef("write baseline %s: %v", s.path, err)
	}
	return nil
}

// encode renders the map as newline-joined "identifier|digest" records,
// in lexicographic identifier order.
func encode(m model.FingerprintMap) []byte {
	var sb strings.Builder
	for _, path := range m.Paths() {
		sb.WriteString(path)
		sb.WriteByte('|')
		sb.WriteString(string(m[path]))
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

// decode parses "identifier|digest" lines, splitting on the first '|'.
func decode(data []byte) (model.FingerprintMap, error) {
	m := model.FingerprintMap{}
	for i, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		id, digest, found := strings.Cut(line, "|")
		if !found || id == "" {
			return nil, errclass.ErrBaselineCorrupt.WithMessagef("malformed record on line %d", i+1)
		}
		m[pathutil.Normalize(id)] = model.Digest(digest)
	}
	return m, nil
}
