package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateGuestName produces a display name for anonymous accounts,
// e.g. "Dreamer-4f3a2c".
func GenerateGuestName() (string, error) {
	bytes := make([]byte, 3)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return fmt.Sprintf("Dreamer-%s", hex.EncodeToString(bytes)), nil
}
