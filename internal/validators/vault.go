// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/codebook-vault/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUsername targets the account identifier of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the plaintext login password of a credentials pair.
	FieldPassword = "password"

	// FieldCodebookName targets the human-readable codebook label.
	FieldCodebookName = "codebook_name"

	// FieldAddress targets the site/host field of a password entry.
	FieldAddress = "address"

	// FieldPublicKey targets the opaque public key blob of a password entry.
	FieldPublicKey = "public_key"

	// FieldEncryptedPassword targets the envelope blob of a password entry.
	FieldEncryptedPassword = "encrypted_password"

	// FieldNotes targets the optional notes field of a password entry.
	FieldNotes = "notes"
)

// Bounds enforced by the vault validator. They mirror the CHECK constraints
// of the persisted schema so invalid data is rejected before any statement
// is issued.
const (
	maxUsernameLen          = 50
	minPasswordLen          = 8
	maxPasswordLen          = 32
	maxCodebookNameLen      = 100
	maxAddressLen           = 253
	maxPublicKeyLen         = 4096
	maxEncryptedPasswordLen = 512
	maxNotesLen             = 1024
)

// allowedNameSymbols is the small set of common ASCII symbols permitted in
// codebook names besides letters, digits, underscore and hyphen.
const allowedNameSymbols = "@$!%*#?&"

// VaultValidator implements the Validator interface for vault domain models:
// Credentials, Codebook, and PasswordEntry.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type VaultValidator struct {
}

// NewVaultValidator constructs a new VaultValidator
// and returns it as the Validator interface.
func NewVaultValidator() Validator {
	return &VaultValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Supported types:
//   - models.Credentials / *models.Credentials
//   - models.Codebook / *models.Codebook
//   - models.PasswordEntry / *models.PasswordEntry
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// a sensible default set of fields is validated.
func (v *VaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Codebook:
		return v.validateCodebook(ctx, value, fields...)
	case *models.Codebook:
		return v.validateCodebook(ctx, *value, fields...)

	case models.PasswordEntry:
		return v.validatePasswordEntry(ctx, value, fields...)
	case *models.PasswordEntry:
		return v.validatePasswordEntry(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateCredentials validates a username/password pair.
//
// Default validated fields (when none specified): Username, Password.
func (v *VaultValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if creds.Username == "" || len(creds.Username) > maxUsernameLen {
				return ErrInvalidUsername
			}
		case FieldPassword:
			if !isStrongPassword(creds.Password) {
				return ErrWeakPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateCodebook validates a codebook model. Only the name carries a
// policy; the remaining fields are storage-assigned.
func (v *VaultValidator) validateCodebook(_ context.Context, codebook models.Codebook, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCodebookName}
	}

	for _, f := range fields {
		switch f {
		case FieldCodebookName:
			if !isValidCodebookName(codebook.Name) {
				return ErrInvalidCodebookName
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePasswordEntry validates the mutable fields of a password entry
// against the schema bounds.
//
// Default validated fields (when none specified):
// Address, PublicKey, EncryptedPassword, Notes.
func (v *VaultValidator) validatePasswordEntry(_ context.Context, entry models.PasswordEntry, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAddress, FieldPublicKey, FieldEncryptedPassword, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldAddress:
			if entry.Address == "" || len(entry.Address) > maxAddressLen {
				return ErrInvalidAddress
			}
		case FieldPublicKey:
			if len(entry.PublicKey) == 0 || len(entry.PublicKey) > maxPublicKeyLen {
				return ErrInvalidPublicKey
			}
		case FieldEncryptedPassword:
			if len(entry.EncryptedPassword) == 0 || len(entry.EncryptedPassword) > maxEncryptedPasswordLen {
				return ErrInvalidEncryptedPassword
			}
		case FieldNotes:
			if len(entry.Notes) > maxNotesLen {
				return ErrInvalidNotes
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isStrongPassword reports whether password satisfies the complexity policy:
// 8-32 characters with at least one digit, one lowercase and one uppercase
// letter.
func isStrongPassword(password string) bool {
	if len(password) < minPasswordLen || len(password) > maxPasswordLen {
		return false
	}

	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}

	return hasDigit && hasLower && hasUpper
}

// isValidCodebookName reports whether name satisfies the codebook name
// policy: 1-100 characters, each an ASCII letter, digit, underscore, hyphen,
// one of the common symbols, or a CJK ideograph.
func isValidCodebookName(name string) bool {
	if name == "" {
		return false
	}

	runes := 0
	for _, r := range name {
		if r == utf8.RuneError {
			return false
		}
		if !isAllowedNameRune(r) {
			return false
		}
		runes++
	}

	return runes <= maxCodebookNameLen
}

func isAllowedNameRune(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r == '_' || r == '-':
		return true
	case unicode.Is(unicode.Han, r):
		return true
	}

	for _, s := range allowedNameSymbols {
		if r == s {
			return true
		}
	}

	return false
}
