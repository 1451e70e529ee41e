package service

import (
	"context"

	"github.com/MKhiriev/codebook-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages local account registration and login.
//
// Expected negative outcomes (taken username, unknown user, wrong password)
// are reported as boolean results with a nil error; errors are reserved for
// infrastructure failures and invalid input.
type AuthService interface {
	// Register creates a new account with the login password stored as an
	// argon2id hash. Returns (false, nil) when the username is taken, and a
	// validation error when the credentials violate policy.
	Register(ctx context.Context, creds models.Credentials) (bool, error)

	// Login verifies the credentials and, on success, returns the user's
	// codebooks newest-first. Unknown username and wrong password produce
	// the identical (false, nil, nil) result.
	Login(ctx context.Context, creds models.Credentials) (bool, []models.Codebook, error)
}

// VaultService manages codebooks and password entries. Entry passwords cross
// this boundary only as plaintext inputs to encryption and as plaintext
// outputs of an explicit reveal; at rest they exist as envelope blobs.
type VaultService interface {
	// CreateCodebook validates the name policy and inserts the codebook.
	// Recreating an existing (username, name) pair is a no-op.
	CreateCodebook(ctx context.Context, username, name string) error

	// DeleteCodebook removes the codebook and all of its entries.
	// Returns (false, nil) when no such codebook exists.
	DeleteCodebook(ctx context.Context, id int64) (bool, error)

	// GetUserCodebooks lists a user's codebooks, most recently created first.
	GetUserCodebooks(ctx context.Context, username string) ([]models.Codebook, error)

	// GetCodebookID resolves a codebook id from its owner and name.
	// The boolean result reports whether the codebook exists.
	GetCodebookID(ctx context.Context, username, name string) (int64, bool, error)

	// AddEntry encrypts password under masterPassword and persists a new
	// entry in the codebook identified by entry.CodebookID. entry's
	// EncryptedPassword and PublicKey fields are ignored on input.
	AddEntry(ctx context.Context, masterPassword, password string, entry models.PasswordEntry) error

	// UpdateEntry re-encrypts password and overwrites the mutable fields of
	// the entry identified by entry.ID. Returns (false, nil) when no row
	// matched.
	UpdateEntry(ctx context.Context, masterPassword, password string, entry models.PasswordEntry) (bool, error)

	// DeleteEntry removes one entry. Returns true only if a row was
	// actually removed.
	DeleteEntry(ctx context.Context, id int64) (bool, error)

	// GetEntries lists one codebook's entries in insertion order. filter is
	// matched as a substring against the address and notes fields; page is
	// zero-indexed.
	GetEntries(ctx context.Context, codebookID int64, filter string, page, pageSize int) ([]models.PasswordEntry, error)

	// RevealPassword decrypts the entry's envelope under masterPassword.
	// Returns crypto.ErrDecryptionFailed when the password is wrong or the
	// envelope was tampered with.
	RevealPassword(ctx context.Context, masterPassword string, entry models.PasswordEntry) (string, error)

	// GeneratePassword produces a random password of the given length from
	// the basic or extended character set.
	GeneratePassword(length int, extended bool) (string, error)
}
