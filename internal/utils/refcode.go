package utils

import (
	"crypto/rand"
	"fmt"
	"strings"
	"time"
)

const refCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateReferenceCode produces a transaction reference code of the form
// TXN-20260901-X7K2QF. The random suffix avoids ambiguous characters.
func GenerateReferenceCode(date time.Time) (string, error) {
	b := make([]byte, 6)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes for reference code: %w", err)
	}
	var sb strings.Builder
	for _, v := range b {
		sb.WriteByte(refCodeAlphabet[int(v)%len(refCodeAlphabet)])
	}
	return fmt.Sprintf("TXN-%s-%s", date.Format("20060102"), sb.String()), nil
}
