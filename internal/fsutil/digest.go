package fsutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the SHA-256 checksum of data as a hex string. The walker
// and the job runner compare digests to detect no-op conversions.
func Digest(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
