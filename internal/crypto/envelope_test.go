package crypto

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEnvelopeService returns a service with argon2id parameters light
// enough for tests. The envelope layout is identical to production.
func newTestEnvelopeService() EnvelopeService {
	return NewEnvelopeServiceWithParams(1, 16*1024, 1)
}

func TestEnvelope_RoundTrip(t *testing.T) {
	svc := newTestEnvelopeService()

	plaintexts := [][]byte{
		[]byte("Sup3rSecret!"),
		[]byte(""),
		[]byte{0x00, 0xff, 0x10, 0x20},
		bytes.Repeat([]byte("a"), 400),
	}

	for _, plaintext := range plaintexts {
		envelope, err := svc.Encrypt("master-password", plaintext)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(envelope), MinEnvelopeLen)
		assert.Equal(t, MinEnvelopeLen+len(plaintext), len(envelope))

		got, err := svc.Decrypt("master-password", envelope)
		require.NoError(t, err)
		assert.Equal(t, plaintext, got)
	}
}

func TestEnvelope_FreshSaltAndNonce(t *testing.T) {
	svc := newTestEnvelopeService()

	first, err := svc.Encrypt("master-password", []byte("same plaintext"))
	require.NoError(t, err)
	second, err := svc.Encrypt("master-password", []byte("same plaintext"))
	require.NoError(t, err)

	// Same password, same plaintext: envelopes must still be unrelated.
	assert.NotEqual(t, first, second)
	assert.NotEqual(t, first[:EnvelopeSaltLen], second[:EnvelopeSaltLen])
	assert.NotEqual(t,
		first[EnvelopeSaltLen:EnvelopeSaltLen+EnvelopeNonceLen],
		second[EnvelopeSaltLen:EnvelopeSaltLen+EnvelopeNonceLen])
}

func TestEnvelope_WrongPassword(t *testing.T) {
	svc := newTestEnvelopeService()

	envelope, err := svc.Encrypt("correct-password", []byte("secret"))
	require.NoError(t, err)

	_, err = svc.Decrypt("wrong-password", envelope)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDecryptionFailed))
}

func TestEnvelope_Tampered(t *testing.T) {
	svc := newTestEnvelopeService()

	envelope, err := svc.Encrypt("correct-password", []byte("secret"))
	require.NoError(t, err)

	tests := []struct {
		name string
		bit  int
	}{
		{name: "flipped salt byte", bit: 0},
		{name: "flipped nonce byte", bit: EnvelopeSaltLen},
		{name: "flipped ciphertext byte", bit: len(envelope) - 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := append([]byte(nil), envelope...)
			tampered[tt.bit] ^= 0x01

			_, err := svc.Decrypt("correct-password", tampered)
			// Corruption is indistinguishable from a wrong password.
			assert.True(t, errors.Is(err, ErrDecryptionFailed))
		})
	}
}

func TestEnvelope_TooShort(t *testing.T) {
	svc := newTestEnvelopeService()

	for _, size := range []int{0, 1, EnvelopeSaltLen, MinEnvelopeLen - 1} {
		_, err := svc.Decrypt("any-password", make([]byte, size))
		assert.True(t, errors.Is(err, ErrInvalidEnvelope), "size %d", size)
	}
}
