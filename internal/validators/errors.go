package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the base error for every validation failure. All
// field-specific sentinels below wrap it, so callers can test for the whole
// category with errors.Is(err, ErrValidation) and still match the exact
// field when needed.
var ErrValidation = errors.New("validation failed")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUsername          = wrap("username must be 1-50 characters")
	ErrWeakPassword             = wrap("password must be 8-32 characters with at least one digit, one lowercase and one uppercase letter")
	ErrInvalidCodebookName      = wrap("codebook name must be 1-100 letters, digits, CJK ideographs or common symbols")
	ErrInvalidAddress           = wrap("address must be 1-253 characters")
	ErrInvalidPublicKey         = wrap("public key must be 1-4096 bytes")
	ErrInvalidEncryptedPassword = wrap("encrypted password must be 1-512 bytes")
	ErrInvalidNotes             = wrap("notes must be at most 1024 characters")
)

func wrap(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}
