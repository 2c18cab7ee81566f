package pkg

import (
	"crypto/rand"
	"encoding/hex"
)

// GenerateSessionID returns a random 32-character hex identifier.
func GenerateSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}

	return hex.EncodeToString(buf)
}
