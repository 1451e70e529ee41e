package models

// User represents a vault account identified by a unique username.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// Username is the unique account identifier, at most 50 characters.
	Username string `json:"username"`

	// PasswordHash is the argon2id hash of the login password in PHC string
	// format with embedded salt and cost parameters. This value MUST be a
	// derived value, never plaintext, and is used only for login verification.
	PasswordHash string `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
