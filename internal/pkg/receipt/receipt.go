package receipt

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// New generates a cryptographically random 32-character hex receipt
// identifier, unique per order-creation attempt.
func New() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate receipt id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
