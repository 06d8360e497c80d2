package keygen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := Generate()
		assert.NoError(t, err)
		assert.Len(t, code, CodeLength)
		for _, r := range code {
			assert.Contains(t, alphabet, string(r))
		}
		seen[code] = true
	}
	// 100 draws from a 62^6 space colliding down to a handful would mean the
	// generator is broken, not unlucky.
	assert.Greater(t, len(seen), 90)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{
			"valid code",
			"aA0zZ9",
			nil,
		},
		{
			"too short",
			"aaa",
			ErrInvalidLength,
		},
		{
			"too long",
			strings.Repeat("a", CodeLength+1),
			ErrInvalidLength,
		},
		{
			"character outside alphabet",
			"aaa-aa",
			ErrInvalidChar,
		},
		{
			"empty",
			"",
			ErrInvalidLength,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.code)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidate_accepts_generated_codes(t *testing.T) {
	for i := 0; i < 20; i++ {
		code, err := Generate()
		assert.NoError(t, err)
		assert.NoError(t, Validate(code))
	}
}
