package security

import (
	"crypto/rand"
	"math/big"
)

// Ambiguous characters (0/O, 1/l/I) are left out since temporary passwords
// get typed back in by users.
const tempPasswordAlphabet = "abcdefghijkmnopqrstuvwxyzABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const tempPasswordLength = 10

// TempPassword returns a cryptographically random temporary password.
func TempPassword() (string, error) {
	limit := big.NewInt(int64(len(tempPasswordAlphabet)))
	value := make([]byte, tempPasswordLength)
	for i := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[i] = tempPasswordAlphabet[position.Int64()]
	}
	return string(value), nil
}
