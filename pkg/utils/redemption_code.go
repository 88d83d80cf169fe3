package utils

import (
	"crypto/rand"
)

// Alphabet without 0/O, 1/I/L to keep codes readable over the counter.
const codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

// RedemptionCodeLength is the length of generated redemption codes
const RedemptionCodeLength = 10

// GenerateRedemptionCode returns an opaque random code used to look up an
// order at redemption. The code carries no embedded information; uniqueness
// is enforced by the caller against the orders table.
func GenerateRedemptionCode() (string, error) {
	buf := make([]byte, RedemptionCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = codeAlphabet[int(b)%len(codeAlphabet)]
	}
	return string(buf), nil
}
