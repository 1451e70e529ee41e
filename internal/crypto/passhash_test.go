package crypto

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPasswordHasher() PasswordHasher {
	return NewPasswordHasherWithParams(1, 16*1024, 1)
}

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := newTestPasswordHasher()

	encoded, err := hasher.Hash("Correct1Password")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(encoded, "$argon2id$"))

	ok, err := hasher.Verify("Correct1Password", encoded)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("Wrong1Password", encoded)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_DistinctSalts(t *testing.T) {
	hasher := newTestPasswordHasher()

	first, err := hasher.Hash("Correct1Password")
	require.NoError(t, err)
	second, err := hasher.Hash("Correct1Password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_EmbeddedParams(t *testing.T) {
	// Verification must use the parameters embedded in the hash string,
	// not the verifier's own defaults.
	heavy := NewPasswordHasherWithParams(2, 32*1024, 2)
	light := newTestPasswordHasher()

	encoded, err := heavy.Hash("Correct1Password")
	require.NoError(t, err)

	ok, err := light.Verify("Correct1Password", encoded)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestPasswordHasher_MalformedHash(t *testing.T) {
	hasher := newTestPasswordHasher()

	tests := []struct {
		name    string
		encoded string
		want    error
	}{
		{name: "empty string", encoded: "", want: ErrInvalidHash},
		{name: "not a PHC string", encoded: "plainhash", want: ErrInvalidHash},
		{name: "wrong algorithm", encoded: "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA", want: ErrInvalidHash},
		{name: "bad version", encoded: "$argon2id$v=99$m=1,t=1,p=1$c2FsdA$aGFzaA", want: ErrUnsupportedHashVersion},
		{name: "bad salt base64", encoded: "$argon2id$v=19$m=1,t=1,p=1$!!!$aGFzaA", want: ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := hasher.Verify("AnyPassword1", tt.encoded)
			assert.True(t, errors.Is(err, tt.want))
		})
	}
}
