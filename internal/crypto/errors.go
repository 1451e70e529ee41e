package crypto

import "errors"

// Sentinel errors returned by the crypto package. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrInvalidEnvelope is returned when an envelope is too short to contain
	// the fixed salt, nonce and authentication tag. It is detected before any
	// key derivation so that garbage input does not pay the KDF cost.
	ErrInvalidEnvelope = errors.New("invalid envelope format")

	// ErrDecryptionFailed is returned when authenticated decryption fails.
	// A wrong master password and corrupted ciphertext are deliberately not
	// distinguished: the distinction would be an oracle.
	ErrDecryptionFailed = errors.New("decryption failed: incorrect password or corrupted data")

	// ErrInvalidHash is returned when a stored password hash string cannot be
	// parsed as a PHC-formatted argon2id hash.
	ErrInvalidHash = errors.New("invalid password hash format")

	// ErrUnsupportedHashVersion is returned when a stored password hash was
	// produced by an incompatible argon2 version.
	ErrUnsupportedHashVersion = errors.New("unsupported argon2 version")

	// ErrInvalidLength is returned by the password generator when the
	// requested length is not positive.
	ErrInvalidLength = errors.New("password length must be positive")
)
