package cryptox

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/dmitrijs2005/studentsapi/internal/common"
)

// TokenBytes is the number of random bytes in a session token.
const TokenBytes = 32

// NewToken returns a fresh opaque session token (hex encoded, 64 chars).
func NewToken() (string, error) {
	return common.MakeRandHexString(TokenBytes)
}

// HashToken returns the hex SHA-256 digest of token. Only the digest is
// persisted, so a leaked sessions table cannot be replayed.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
