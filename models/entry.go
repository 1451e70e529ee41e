package models

import "time"

// PasswordEntry is a single stored secret inside a codebook.
//
// EncryptedPassword is an opaque envelope produced by the crypto package
// (salt ‖ nonce ‖ ciphertext+tag); the storage layer never inspects it and
// never sees the corresponding plaintext.
type PasswordEntry struct {
	// ID is the storage-assigned unique identifier of the entry.
	ID int64 `json:"id"`

	// CodebookID identifies the owning codebook. Entries are destroyed
	// automatically when their codebook is deleted.
	CodebookID int64 `json:"codebook_id"`

	// Address is the site or host the secret belongs to, 1-253 characters.
	Address string `json:"address"`

	// PublicKey is optional opaque key material for the address,
	// at most 4096 bytes. Write paths that have no key material store a
	// one-byte placeholder.
	PublicKey []byte `json:"-"`

	// EncryptedPassword is the envelope blob, at most 512 bytes.
	EncryptedPassword []byte `json:"-"`

	// Notes is an optional free-form annotation, at most 1024 characters.
	Notes string `json:"notes"`

	// CreatedAt is the immutable creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the PasswordEntry model.
func (e PasswordEntry) TableName() string {
	return "entries"
}
