// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/argon2"
)

// passwordHasher is the private implementation of [PasswordHasher].
//
// Hashes are encoded as PHC strings:
//
//	$argon2id$v=19$m=<memory>,t=<time>,p=<threads>$<b64 salt>$<b64 hash>
//
// so every stored hash carries its own salt and cost parameters and old
// hashes keep verifying after the defaults change.
type passwordHasher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	saltLen      uint32
	keyLen       uint32
}

// NewPasswordHasher constructs a [PasswordHasher] with "sensitive" argon2id
// cost parameters (time 4, memory 256 MiB, parallelism 4). This tier is
// deliberately heavier than the envelope tier: the login hash is the sole
// gate to the account.
func NewPasswordHasher() PasswordHasher {
	return &passwordHasher{
		argonTime:    4,
		argonMemory:  256 * 1024, // 256 MiB
		argonThreads: 4,
		saltLen:      16,
		keyLen:       32,
	}
}

// NewPasswordHasherWithParams constructs a [PasswordHasher] with explicit
// argon2id parameters. Intended for tests.
func NewPasswordHasherWithParams(time, memory uint32, threads uint8) PasswordHasher {
	return &passwordHasher{
		argonTime:    time,
		argonMemory:  memory,
		argonThreads: threads,
		saltLen:      16,
		keyLen:       32,
	}
}

// Hash implements [PasswordHasher].
func (p *passwordHasher) Hash(password string) (string, error) {
	salt := make([]byte, p.saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate hash salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, p.argonTime, p.argonMemory, p.argonThreads, p.keyLen)

	encoded := fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.argonMemory,
		p.argonTime,
		p.argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	)
	wipe(hash)

	return encoded, nil
}

// Verify implements [PasswordHasher].
//
// The comparison uses [subtle.ConstantTimeCompare]; a mismatch is reported as
// (false, nil) so callers treat it as a normal negative outcome, not a fault.
func (p *passwordHasher) Verify(password, encodedHash string) (bool, error) {
	memory, time, threads, salt, want, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	got := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(want)))
	defer wipe(got)

	return subtle.ConstantTimeCompare(got, want) == 1, nil
}

// decodeHash parses a PHC-formatted argon2id hash string into its parameters,
// salt and raw hash.
func decodeHash(encodedHash string) (memory, time uint32, threads uint8, salt, hash []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err = fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, ErrUnsupportedHashVersion
	}

	if _, err = fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}
	if hash, err = base64.RawStdEncoding.DecodeString(parts[5]); err != nil {
		return 0, 0, 0, nil, nil, ErrInvalidHash
	}

	return memory, time, threads, salt, hash, nil
}
