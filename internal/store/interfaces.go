package store

import (
	"context"

	"github.com/MKhiriev/codebook-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their login password hashes.
// It owns no knowledge of encryption keys, only of the hashed login password.
type UserRepository interface {
	// CreateUser persists a new account. Returns ErrUsernameAlreadyExists
	// if the username is already taken.
	CreateUser(ctx context.Context, user models.User) error

	// FindUserByUsername retrieves an account by username. Returns
	// ErrNoUserWasFound for an empty result set.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// CodebookRepository persists codebooks scoped to a user.
type CodebookRepository interface {
	// CreateCodebook inserts a codebook. Recreating an existing
	// (username, name) pair is a no-op, not an error.
	CreateCodebook(ctx context.Context, codebook models.Codebook) error

	// DeleteCodebook transactionally removes the codebook and all of its
	// entries. Returns false with a nil error when no such codebook exists.
	DeleteCodebook(ctx context.Context, id int64) (bool, error)

	// GetUserCodebooks lists a user's codebooks, most recently created first.
	GetUserCodebooks(ctx context.Context, username string) ([]models.Codebook, error)

	// FindCodebookID resolves a codebook id from its owner and name.
	// The boolean result reports whether the codebook exists.
	FindCodebookID(ctx context.Context, username, name string) (int64, bool, error)
}

// EntryRepository persists password entries inside codebooks. It stores
// envelope blobs as opaque bytes and never inspects their internals.
type EntryRepository interface {
	// AddEntry inserts one entry. Schema CHECK constraints enforce the
	// field length limits; violations surface as storage errors.
	AddEntry(ctx context.Context, entry models.PasswordEntry) error

	// UpdateEntry overwrites the mutable fields of the entry identified by
	// entry.ID. Returns false with a nil error when no row matched.
	UpdateEntry(ctx context.Context, entry models.PasswordEntry) (bool, error)

	// DeleteEntry transactionally removes one entry. Returns true only if a
	// row was actually removed.
	DeleteEntry(ctx context.Context, id int64) (bool, error)

	// GetEntries lists one codebook's entries in insertion order, with the
	// filter matched as a substring against the address and notes fields.
	// page is zero-indexed; pageSize bounds the result count.
	GetEntries(ctx context.Context, codebookID int64, filter string, page, pageSize int) ([]models.PasswordEntry, error)
}
