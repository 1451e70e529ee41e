package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/codebook-vault/models"
)

// NavigateTo switches the active page of [RootModel]. An optional Payload is
// re-delivered as a message to the destination page.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finishes the authentication flow. OK reports whether the
// credentials were accepted; a false OK with a nil Err means unknown user or
// wrong password (the two are indistinguishable).
type LoginResult struct {
	Err       error
	OK        bool
	Username  string
	Password  string
	Codebooks []models.Codebook
}

// RegisterSuccessNotice is shown on the menu after a completed registration.
type RegisterSuccessNotice struct {
	Username string
}

type registerDoneMsg struct {
	created  bool
	username string
	err      error
}

type codebooksLoadedMsg struct {
	codebooks []models.Codebook
	err       error
}

type codebookSavedMsg struct {
	name string
	err  error
}

type codebookDeletedMsg struct {
	deleted bool
	err     error
}

type entriesLoadedMsg struct {
	entries []models.PasswordEntry
	err     error
}

type entrySavedMsg struct {
	err error
}

type entryDeletedMsg struct {
	deleted bool
	err     error
}

type revealDoneMsg struct {
	password string
	err      error
}

type copiedMsg struct {
	err error
}

type generateDoneMsg struct {
	password string
	// forForm routes the result into the entry form's password field
	// instead of the generator screen.
	forForm bool
	err     error
}
