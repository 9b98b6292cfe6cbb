package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// Excludes I, O, 0 and 1.
	tenantIDAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	tenantIDLength   = 8

	passwordLength  = 12
	passwordLower   = "abcdefghijkmnpqrstuvwxyz"
	passwordUpper   = "ABCDEFGHJKLMNPQRSTUVWXYZ"
	passwordDigits  = "23456789"
	passwordSymbols = "!@#$%*?"
)

func randomIndex(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random: %w", err)
	}
	return int(v.Int64()), nil
}

func randomString(alphabet string, length int) (string, error) {
	out := make([]byte, length)
	for i := range out {
		idx, err := randomIndex(len(alphabet))
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx]
	}
	return string(out), nil
}

// GenerateTenantID returns a candidate tenant id; uniqueness is checked on insert.
func GenerateTenantID() (string, error) {
	return randomString(tenantIDAlphabet, tenantIDLength)
}

// GenerateTempPassword returns a 12 character password containing at least
// one lower, upper, digit and symbol character.
func GenerateTempPassword() (string, error) {
	classes := []string{passwordLower, passwordUpper, passwordDigits, passwordSymbols}
	all := passwordLower + passwordUpper + passwordDigits + passwordSymbols

	out := make([]byte, 0, passwordLength)
	for _, class := range classes {
		idx, err := randomIndex(len(class))
		if err != nil {
			return "", err
		}
		out = append(out, class[idx])
	}
	rest, err := randomString(all, passwordLength-len(classes))
	if err != nil {
		return "", err
	}
	out = append(out, rest...)

	// Fisher-Yates so the class positions are not fixed.
	for i := len(out) - 1; i > 0; i-- {
		j, err := randomIndex(i + 1)
		if err != nil {
			return "", err
		}
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}
