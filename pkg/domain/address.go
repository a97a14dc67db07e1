package domain

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	dErrors "strongroom/pkg/domain-errors"
)

// Address identifies an account or token contract. Addresses are hex strings
// of the form 0x followed by 40 hex digits, normalized to lowercase.
type Address string

// NativeAddress is the sentinel for the chain-native asset, which has no
// token contract of its own.
const NativeAddress Address = "0x0000000000000000000000000000000000000000"

// ParseAddress validates an address at trust boundaries (handlers, API inputs).
func ParseAddress(s string) (Address, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "address cannot be empty")
	}
	if !isHexAddress(s) {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid address format")
	}
	return Address(s), nil
}

// NewAddress generates a fresh random address, used when a vault is created
// and needs a custody address of its own.
func NewAddress() Address {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return Address("0x" + hex.EncodeToString(b[:]))
}

func (a Address) String() string { return string(a) }

func (a Address) IsNil() bool { return a == "" }

// IsNative reports whether the address is the native-asset sentinel.
func (a Address) IsNative() bool { return a == NativeAddress }

func isHexAddress(s string) bool {
	if len(s) != 42 || s[0] != '0' || s[1] != 'x' {
		return false
	}
	for _, c := range s[2:] {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
