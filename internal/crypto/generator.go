// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	// basicCharset is the 62-character alphanumeric set.
	basicCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
		"abcdefghijklmnopqrstuvwxyz" +
		"0123456789"

	// extendedCharset adds the 32 printable ASCII symbols for a 94-character set.
	extendedCharset = basicCharset + "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// generator is the private implementation of [Generator]. It is stateless
// and safe to construct per call.
type generator struct{}

// NewGenerator constructs a [Generator] backed by the OS CSPRNG.
func NewGenerator() Generator {
	return &generator{}
}

// Generate implements [Generator].
//
// Each character index is drawn with [rand.Int], which rejection-samples
// internally, so indices are uniform and free of modulo bias.
func (g *generator) Generate(length int, extended bool) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}

	charset := basicCharset
	if extended {
		charset = extendedCharset
	}
	max := big.NewInt(int64(len(charset)))

	var password strings.Builder
	password.Grow(length)

	for i := 0; i < length; i++ {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("draw random index: %w", err)
		}
		password.WriteByte(charset[idx.Int64()])
	}

	return password.String(), nil
}
