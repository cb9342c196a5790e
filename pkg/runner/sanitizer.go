package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/aretw0/parley/pkg/domain"
)

// EnvMaxInputSize overrides DefaultMaxInputSize, in bytes.
const EnvMaxInputSize = "PARLEY_MAX_INPUT_SIZE"

// DefaultMaxInputSize bounds a single input line. Labels are short; anything
// near this size is pasted text, not a selection.
const DefaultMaxInputSize = 4096

var (
	ErrInputTooLarge    = errors.New("line is too long")
	ErrInvalidUTF8      = errors.New("line is not valid UTF-8")
	ErrControlCharacter = errors.New("line contains a control character")
)

// CheckInput decides whether a raw line may be offered to a choice.
// Lines are never rewritten: a line that would only match a label after
// cleanup is not an exact match, so it is rejected as a whole. The returned
// error wraps domain.ErrRejectedInput and one of the reasons above.
// Line terminators and tabs are allowed; the choice trims them.
func CheckInput(line string) error {
	if limit := MaxInputSize(); len(line) > limit {
		return reject(fmt.Errorf("%w (%d bytes, limit %d)", ErrInputTooLarge, len(line), limit))
	}
	if !utf8.ValidString(line) {
		return reject(ErrInvalidUTF8)
	}
	if i := strings.IndexFunc(line, forbiddenControl); i >= 0 {
		return reject(fmt.Errorf("%w at byte %d", ErrControlCharacter, i))
	}
	return nil
}

func reject(reason error) error {
	return fmt.Errorf("%w: %w", domain.ErrRejectedInput, reason)
}

func forbiddenControl(r rune) bool {
	switch r {
	case '\n', '\r', '\t':
		return false
	}
	return unicode.IsControl(r)
}

// MaxInputSize returns the active line limit, honoring EnvMaxInputSize when it holds a positive integer.
func MaxInputSize() int {
	if size, err := strconv.Atoi(os.Getenv(EnvMaxInputSize)); err == nil && size > 0 {
		return size
	}
	return DefaultMaxInputSize
}
