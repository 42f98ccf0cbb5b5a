// Package keystore manages the directory-scoped symmetric key and the
// sealing of baseline records at rest.
//
// The key is generated once on first use and persisted next to the
// monitored root. Losing it makes every baseline encrypted under it
// permanently undecryptable; there is no cross-key recovery.
package keystore

import (
	"crypto/rand"
	"fmt"
	"os"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/fimon-project/fimon/pkg/errclass"
	"github.com/fimon-project/fimon/pkg/fsutil"
)

// KeySize is the raw key length persisted in the key file.
const KeySize = chacha20poly1305.KeySize

// ResolveOrCreateKey loads the raw key bytes at path, generating and
// persisting a fresh key if no key file exists yet. No process-wide
// cache is kept; isolated directories stay independent.
func ResolveOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != KeySize {
			return nil, errclass.ErrKeyUnreadable.WithMessagef("key file %s has %d bytes, want %d", path, len(key), KeySize)
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, errclass.ErrKeyUnreadable.WithMessagef("read key file %s: %v", path, err)
	}

	key = make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	if err := fsutil.AtomicWrite(path, key, 0600); err != nil {
		return nil, fmt.Errorf("persist key %s: %w", path, err)
	}
	return key, nil
}

// Seal encrypts the whole record with XChaCha20-Poly1305. The random
// nonce is prepended to the ciphertext.
func Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open decrypts a record produced by Seal.
func Open(key, sealed []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("init cipher: %w", err)
	}
	if len(sealed) < aead.NonceSize() {
		return nil, errclass.ErrDecryptFailed.WithMessage("record shorter than nonce")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errclass.ErrDecryptFailed.WithMessagef("open record: %v", err)
	}
	return plaintext, nil
}
