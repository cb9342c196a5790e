package runner

import (
	"strings"
	"testing"

	"github.com/aretw0/parley/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestCheckInput(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		reason error
	}{
		{"Plain", "yes\n", nil},
		{"Windows Newline", "yes\r\n", nil},
		{"Tab", "\tyes\n", nil},
		{"Unicode", "sí, señor\n", nil},
		{"Exact Limit", strings.Repeat("a", DefaultMaxInputSize), nil},
		{"Over Limit", strings.Repeat("a", DefaultMaxInputSize+1), ErrInputTooLarge},
		{"Escape", "X\x1b\n", ErrControlCharacter},
		{"ANSI Sequence", "\x1b[31mX\x1b[0m\n", ErrControlCharacter},
		{"Null Byte", "X\x00\n", ErrControlCharacter},
		{"Bell", "X\x07", ErrControlCharacter},
		{"Invalid UTF-8", "\xbd\xb2\n", ErrInvalidUTF8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckInput(tt.line)
			if tt.reason == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, domain.ErrRejectedInput)
			assert.ErrorIs(t, err, tt.reason)
		})
	}
}

func TestCheckInput_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "10")
	assert.ErrorIs(t, CheckInput("12345678901"), ErrInputTooLarge)
	assert.NoError(t, CheckInput("12345"))

	t.Setenv(EnvMaxInputSize, "-3")
	assert.Equal(t, DefaultMaxInputSize, MaxInputSize())
}
