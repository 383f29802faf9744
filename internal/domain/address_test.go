package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assetchain/asset-registry/internal/domain"
)

func TestNormalizeWalletAddress(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		valid    bool
	}{
		{
			name:     "lowercase address",
			input:    "0xabc0000000000000000000000000000000000def",
			expected: "0xabc0000000000000000000000000000000000def",
			valid:    true,
		},
		{
			name:     "checksummed address is lowercased",
			input:    "0xAbC0000000000000000000000000000000000dEf",
			expected: "0xabc0000000000000000000000000000000000def",
			valid:    true,
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  0xabc0000000000000000000000000000000000def\t\n",
			expected: "0xabc0000000000000000000000000000000000def",
			valid:    true,
		},
		{
			name:  "missing 0x prefix",
			input: "abc0000000000000000000000000000000000def",
			valid: false,
		},
		{
			name:  "too short",
			input: "0xabc",
			valid: false,
		},
		{
			name:  "too long",
			input: "0x" + strings.Repeat("a", 41),
			valid: false,
		},
		{
			name:  "non hex characters",
			input: "0xzzz0000000000000000000000000000000000def",
			valid: false,
		},
		{
			name:  "empty string",
			input: "",
			valid: false,
		},
		{
			name:  "whitespace only",
			input: "   ",
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.NormalizeWalletAddress(tt.input)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.expected, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestNormalizeWalletAddress_Idempotent(t *testing.T) {
	first, ok := domain.NormalizeWalletAddress("0xAbC0000000000000000000000000000000000dEf")
	assert.True(t, ok)

	second, ok := domain.NormalizeWalletAddress(first)
	assert.True(t, ok)
	assert.Equal(t, first, second)
}

func TestTruncateAddress(t *testing.T) {
	assert.Equal(t, "0xabc0...", domain.TruncateAddress("0xabc0000000000000000000000000000000000def"))
	assert.Equal(t, "0xab", domain.TruncateAddress("0xab"))
}
