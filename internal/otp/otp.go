// Package otp implements the one-time-passcode challenge flow: generation,
// single-use consumption, and expiry.
package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
)

const (
	passcodeMin  = 100000
	passcodeSpan = 900000
)

// GeneratePasscode returns a uniformly random 6-digit numeric passcode in
// [100000, 999999]. Uses crypto/rand for randomness.
func GeneratePasscode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(passcodeSpan))
	if err != nil {
		return "", err
	}
	return n.Add(n, big.NewInt(passcodeMin)).String(), nil
}

// PasscodeEqual performs constant-time comparison of two passcode strings.
func PasscodeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
