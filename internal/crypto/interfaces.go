package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// EnvelopeService performs envelope encryption of opaque byte payloads under
// a master password. It knows nothing about storage, users or the network.
//
// Envelope layout (fixed-width fields, no length prefixes):
//
//	salt (16 bytes) ‖ nonce (24 bytes) ‖ ciphertext+tag (variable)
//
// Salt and nonce are freshly random per call, so encrypting the same
// plaintext twice under the same password yields unrelated envelopes.
type EnvelopeService interface {
	// Encrypt derives a one-time key from (masterPassword, fresh salt) via
	// argon2id and seals plaintext with a secretbox-style AEAD. The derived
	// key is wiped before returning.
	Encrypt(masterPassword string, plaintext []byte) ([]byte, error)

	// Decrypt re-derives the key from the embedded salt and opens the
	// envelope. Returns ErrInvalidEnvelope for inputs shorter than
	// salt+nonce+tag, and ErrDecryptionFailed for any authentication
	// failure (wrong password and corrupted data are indistinguishable).
	Decrypt(masterPassword string, envelope []byte) ([]byte, error)
}

// PasswordHasher hashes login passwords for storage and verifies login
// attempts against the stored hash. The hash string embeds its own salt and
// cost parameters, so verification needs no external state.
type PasswordHasher interface {
	// Hash derives an argon2id hash of password and encodes it as a
	// PHC-formatted string.
	Hash(password string) (string, error)

	// Verify re-derives the hash of password using the parameters embedded
	// in encodedHash and compares in constant time. A mismatch is a normal
	// outcome (false, nil); errors are reserved for malformed hashes.
	Verify(password, encodedHash string) (bool, error)
}

// Generator produces cryptographically random passwords.
type Generator interface {
	// Generate draws length independent, uniformly distributed characters
	// from the 62-character alphanumeric set, or the 94-character
	// alphanumeric-plus-symbol set when extended is true.
	Generate(length int, extended bool) (string, error)
}
