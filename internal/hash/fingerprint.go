package hash

import (
	"crypto/md5"
	"encoding/hex"
	"hash"
)

// Fingerprint is a streaming 128-bit content fingerprint.
// It wraps MD5 for backward compatibility with existing dictionary
// checksums; it is not used for anything security-sensitive.
type Fingerprint struct {
	h hash.Hash
}

// NewFingerprint returns an empty fingerprint accumulator.
func NewFingerprint() *Fingerprint {
	return &Fingerprint{h: md5.New()}
}

// Write feeds raw bytes into the fingerprint.
func (f *Fingerprint) Write(p []byte) {
	// hash.Hash.Write never returns an error.
	f.h.Write(p)
}

// WriteString feeds the bytes of s into the fingerprint.
func (f *Fingerprint) WriteString(s string) {
	f.h.Write([]byte(s))
}

// HexSum returns the digest as a fixed 32-character lowercase hex string.
func (f *Fingerprint) HexSum() string {
	return hex.EncodeToString(f.h.Sum(nil))
}
