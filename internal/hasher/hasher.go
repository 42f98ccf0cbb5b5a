// Package hasher computes content digests for monitored files.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/fimon-project/fimon/pkg/model"
)

// ChunkSize is the read granularity. Memory use is independent of file size.
const ChunkSize = 4096

// HashFile computes the SHA-256 digest of the file's full byte content,
// streaming in ChunkSize reads, and returns it as lowercase hex.
//
// Callers that must not abort on unreadable files (the engine) map the
// error to model.DigestUnknown and report it through their event sink.
func HashFile(path string) (model.Digest, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.DigestUnknown, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, ChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return model.DigestUnknown, fmt.Errorf("read %s: %w", path, err)
	}

	return model.Digest(hex.EncodeToString(h.Sum(nil))), nil
}

// HashBytes computes the digest of in-memory content. Used by tests to
// derive expected values without touching the filesystem.
func HashBytes(data []byte) model.Digest {
	sum := sha256.Sum256(data)
	return model.Digest(hex.EncodeToString(sum[:]))
}
