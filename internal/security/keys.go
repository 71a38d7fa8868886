package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

const (
	// AccessKeyAlphabet skips characters that are easy to misread when an
	// access key is copied by hand.
	AccessKeyAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	secretAlphabet    = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	AccessKeyLength = 20
	SecretKeyLength = 48
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
)

// NewAccessKey returns a fresh shared access key for the hash-key command.
func NewAccessKey() (string, error) {
	return RandomString(AccessKeyLength, AccessKeyAlphabet)
}

// NewSecretKey returns a token signing secret used when none is configured.
func NewSecretKey() (string, error) {
	return RandomString(SecretKeyLength, secretAlphabet)
}

// RandomString draws length characters uniformly from alphabet using crypto/rand.
func RandomString(length int, alphabet string) (string, error) {
	switch {
	case length < 0:
		return "", errNegativeLength
	case length == 0:
		return "", nil
	case alphabet == "":
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}
