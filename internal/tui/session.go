package tui

import "github.com/google/uuid"

// session holds the state of one authenticated TUI session. The master
// password stays in the presentation layer: services receive it per call and
// the storage layer never sees it at all.
type session struct {
	// id correlates all log entries of one login session.
	id string

	username       string
	masterPassword string
}

func newSession(username, masterPassword string) *session {
	return &session{
		id:             uuid.NewString(),
		username:       username,
		masterPassword: masterPassword,
	}
}

// clear drops the credentials. Called on logout before the session is
// released.
func (s *session) clear() {
	s.username = ""
	s.masterPassword = ""
}
