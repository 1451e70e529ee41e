package models

// Credentials carries the plaintext login inputs from the presentation layer
// to the authentication service. Instances are short-lived: the password is
// hashed (registration) or verified (login) and then discarded, never stored.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"-"`
}
