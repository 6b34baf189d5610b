package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Digest returns the hex sha256 of data, used to correlate uploads in logs without logging content.
func Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
