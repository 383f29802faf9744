package domain

import (
	"regexp"
	"strings"
)

// walletAddressPattern matches a canonical EVM wallet address: 0x followed by
// exactly 40 lowercase hex digits. Input is lowercased before matching, so
// mixed-case addresses normalize to the same canonical form.
var walletAddressPattern = regexp.MustCompile(`^0x[a-f0-9]{40}$`)

// NormalizeWalletAddress canonicalizes an EVM wallet address: trims whitespace
// and lowercases. Returns the canonical address and true, or "" and false when
// the input is not a well-formed address. It never panics; empty and malformed
// input simply fail normalization.
//
// The same normalization is applied at the HTTP boundary and on the storage
// write path so that keys and lookups are always comparable byte-for-byte.
func NormalizeWalletAddress(raw string) (string, bool) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	if !walletAddressPattern.MatchString(addr) {
		return "", false
	}
	return addr, true
}

// TruncateAddress shortens an address for display: the first six characters
// followed by an ellipsis. Addresses shorter than six characters are returned
// unchanged.
func TruncateAddress(addr string) string {
	if len(addr) <= 6 {
		return addr
	}
	return addr[:6] + "..."
}
