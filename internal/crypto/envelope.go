// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/nacl/secretbox"
)

// Envelope field sizes. The envelope carries no length prefixes: the salt and
// nonce widths are fixed and the ciphertext length is derivable from the
// total size.
const (
	// EnvelopeSaltLen is the width of the KDF salt prefix.
	EnvelopeSaltLen = 16

	// EnvelopeNonceLen is the width of the secretbox nonce (192 bits).
	EnvelopeNonceLen = 24

	// EnvelopeTagLen is the width of the poly1305 authentication tag
	// appended to the ciphertext.
	EnvelopeTagLen = secretbox.Overhead

	// MinEnvelopeLen is the smallest well-formed envelope: empty plaintext
	// still carries salt, nonce and tag.
	MinEnvelopeLen = EnvelopeSaltLen + EnvelopeNonceLen + EnvelopeTagLen
)

// envelopeService is the private implementation of [EnvelopeService].
type envelopeService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target and lowered in tests.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewEnvelopeService constructs an [EnvelopeService] with "moderate" argon2id
// cost parameters:
//   - time cost:   3 iterations
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
//
// This tier protects individual stored secrets; the account login hash uses
// the heavier "sensitive" tier (see [NewPasswordHasher]) because it is the
// sole gate to the whole account.
func NewEnvelopeService() EnvelopeService {
	return &envelopeService{
		argonTime:    3,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// NewEnvelopeServiceWithParams constructs an [EnvelopeService] with explicit
// argon2id parameters. Intended for tests, which cannot afford the moderate
// tier on every call.
func NewEnvelopeServiceWithParams(time, memory uint32, threads uint8) EnvelopeService {
	return &envelopeService{
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
		argonKeyLen:  32,
	}
}

// Encrypt implements [EnvelopeService].
//
// A fresh random salt and nonce are drawn from the OS CSPRNG on every call,
// the key is derived with argon2id, used for exactly one seal and wiped
// before returning.
func (e *envelopeService) Encrypt(masterPassword string, plaintext []byte) ([]byte, error) {
	salt := make([]byte, EnvelopeSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}

	var nonce [EnvelopeNonceLen]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	var key [32]byte
	e.deriveKey(&key, masterPassword, salt)
	defer wipe(key[:])

	// envelope = salt || nonce || ciphertext+tag
	envelope := make([]byte, 0, MinEnvelopeLen+len(plaintext))
	envelope = append(envelope, salt...)
	envelope = append(envelope, nonce[:]...)
	envelope = secretbox.Seal(envelope, plaintext, &nonce, &key)

	return envelope, nil
}

// Decrypt implements [EnvelopeService].
//
// The length check runs before key derivation so malformed input fails fast
// without paying the KDF cost.
func (e *envelopeService) Decrypt(masterPassword string, envelope []byte) ([]byte, error) {
	if len(envelope) < MinEnvelopeLen {
		return nil, ErrInvalidEnvelope
	}

	salt := envelope[:EnvelopeSaltLen]

	var nonce [EnvelopeNonceLen]byte
	copy(nonce[:], envelope[EnvelopeSaltLen:EnvelopeSaltLen+EnvelopeNonceLen])

	box := envelope[EnvelopeSaltLen+EnvelopeNonceLen:]

	var key [32]byte
	e.deriveKey(&key, masterPassword, salt)
	defer wipe(key[:])

	plaintext, ok := secretbox.Open(nil, box, &nonce, &key)
	if !ok {
		// Wrong password and corrupted ciphertext produce the same error.
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}

// deriveKey fills key with the argon2id derivation of (masterPassword, salt)
// using the parameters stored in the receiver.
func (e *envelopeService) deriveKey(key *[32]byte, masterPassword string, salt []byte) {
	derived := argon2.IDKey(
		[]byte(masterPassword),
		salt,
		e.argonTime,
		e.argonMemory,
		e.argonThreads,
		e.argonKeyLen,
	)
	copy(key[:], derived)
	wipe(derived)
}

// wipe overwrites b with zeros so key material does not outlive its one use.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
