package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashToken returns the hex SHA-256 digest of an opaque token. Refresh and
// password-reset tokens are stored hashed; the raw value only ever travels to
// the client.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// CompareTokenHash reports whether the raw token matches the stored digest.
func CompareTokenHash(token, storedHash string) bool {
	return HashToken(token) == storedHash
}
