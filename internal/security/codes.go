package security

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"math/big"
	"strings"
)

var errInvalidLength = errors.New("length must be positive")

var ten = big.NewInt(10)

// RandomDigits returns an unbiased numeric code. Leading zeros are kept.
func RandomDigits(length int) (string, error) {
	if length <= 0 {
		return "", errInvalidLength
	}

	var builder strings.Builder
	builder.Grow(length)
	for range length {
		digit, err := rand.Int(rand.Reader, ten)
		if err != nil {
			return "", err
		}
		builder.WriteByte(byte('0' + digit.Int64()))
	}
	return builder.String(), nil
}

// Fingerprint is a domain-separated SHA-256 digest of value, safe to embed in
// tokens. Blank values have no fingerprint.
func Fingerprint(domain string, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(domain + ":" + value))
	return base64.RawURLEncoding.EncodeToString(sum[:])
}

// FingerprintsEqual compares in constant time. Empty fingerprints never match.
func FingerprintsEqual(expected string, actual string) bool {
	expected = strings.TrimSpace(expected)
	actual = strings.TrimSpace(actual)
	if expected == "" || actual == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(actual)) == 1
}
