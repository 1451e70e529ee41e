package models

import "time"

// Codebook is a named, user-owned collection of password entries.
// The pair (Username, Name) is unique per account.
type Codebook struct {
	// ID is the storage-assigned unique identifier of the codebook.
	ID int64 `json:"id"`

	// Username identifies the owning account.
	Username string `json:"username"`

	// Name is the human-readable label, at most 100 characters from the
	// allowed character set (letters, digits, underscore, hyphen, a small
	// set of common symbols and CJK ideographs).
	Name string `json:"name"`

	// CreatedAt is the immutable creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Codebook model.
func (c Codebook) TableName() string {
	return "codebooks"
}
