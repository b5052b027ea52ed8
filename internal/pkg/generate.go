package pkg

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const idBytes = 12

// GenerateID - returns a random hex identifier for stored reports.
func GenerateID() (string, error) {
	b := make([]byte, idBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return hex.EncodeToString(b), nil
}
