package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRedemptionCode(t *testing.T) {
	code, err := GenerateRedemptionCode()
	assert.NoError(t, err)
	assert.Len(t, code, RedemptionCodeLength)

	for _, c := range code {
		assert.True(t, strings.ContainsRune(codeAlphabet, c), "unexpected character %q", c)
	}
}

func TestGenerateRedemptionCodeAvoidsAmbiguousCharacters(t *testing.T) {
	for _, c := range "0O1IL" {
		assert.False(t, strings.ContainsRune(codeAlphabet, c))
	}
}

func TestGenerateRedemptionCodeVaries(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code, err := GenerateRedemptionCode()
		assert.NoError(t, err)
		seen[code] = true
	}
	assert.Len(t, seen, 50)
}
