package keygen

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/jxskiss/base62"
)

const (
	// CodeLength is the length of every generated short code.
	CodeLength = 6

	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var (
	encoding     = base62.NewEncoding(alphabet)
	alphabetSize = big.NewInt(int64(len(alphabet)))

	ErrInvalidLength = errors.New("invalid code length")
	ErrInvalidChar   = errors.New("unexpected character in code")
)

// Generate returns a CodeLength-character code with every position drawn
// uniformly from the 62-symbol alphanumeric alphabet. Uniqueness against
// previously issued codes is the caller's responsibility.
func Generate() (string, error) {
	buf := make([]byte, CodeLength)
	for i := range buf {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", err
		}
		buf[i] = alphabet[n.Int64()]
	}
	return string(buf), nil
}

// Validate reports whether code could have been produced by Generate.
func Validate(code string) error {
	if len(code) != CodeLength {
		return ErrInvalidLength
	}
	if _, err := encoding.DecodeString(code); err != nil {
		return ErrInvalidChar
	}
	return nil
}
