// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/codebook-vault/internal/config"
	"github.com/MKhiriev/codebook-vault/internal/service"
	"github.com/MKhiriev/codebook-vault/models"
)

const entriesPageSize = 10

type mainScreen int

const (
	screenCodebooks mainScreen = iota
	screenCodebookCreate
	screenEntries
	screenEntryDetail
	screenEntryForm
	screenGenerator
)

type confirmTarget int

const (
	confirmNone confirmTarget = iota
	confirmCodebook
	confirmEntry
)

type mainLoopModel struct {
	ctx     context.Context
	vault   service.VaultService
	session *session

	screen mainScreen

	codebooks   []models.Codebook
	codebookIdx int

	entries      []models.PasswordEntry
	entryIdx     int
	page         int
	filterInput  textinput.Model
	filterActive bool
	filter       string

	nameInput textinput.Model
	creating  bool

	revealed   string
	revealBusy bool

	formAddress textinput.Model
	formPass    textinput.Model
	formNotes   textarea.Model
	formFocus   int
	formEditing bool
	formEntryID int64
	formSaving  bool
	formErr     string

	genDefaults config.Generator
	genLenInput textinput.Model
	genExtended bool
	genResult   string

	confirm confirmTarget
	loading bool
	status  string
	errMsg  string
	logout  bool
}

func newMainLoopModel(ctx context.Context, vault service.VaultService, s *session, codebooks []models.Codebook, genDefaults config.Generator) mainLoopModel {
	filterInput := textinput.New()
	filterInput.Placeholder = "подстрока адреса или заметок"
	filterInput.CharLimit = 100
	filterInput.Width = 40

	nameInput := textinput.New()
	nameInput.Placeholder = "имя записной книжки"
	nameInput.CharLimit = 100
	nameInput.Width = 40

	formAddress := textinput.New()
	formAddress.Placeholder = "адрес (site.example.com)"
	formAddress.CharLimit = 253
	formAddress.Width = 40

	formPass := textinput.New()
	formPass.Placeholder = "пароль"
	formPass.EchoMode = textinput.EchoPassword
	formPass.EchoCharacter = '*'
	formPass.Width = 40

	formNotes := textarea.New()
	formNotes.Placeholder = "заметки"
	formNotes.CharLimit = 1024
	formNotes.SetWidth(44)
	formNotes.SetHeight(4)

	genLenInput := textinput.New()
	genLenInput.Placeholder = "длина"
	genLenInput.CharLimit = 3
	genLenInput.Width = 6
	genLenInput.SetValue(strconv.Itoa(genDefaults.Length))

	return mainLoopModel{
		ctx:         ctx,
		vault:       vault,
		session:     s,
		screen:      screenCodebooks,
		codebooks:   codebooks,
		filterInput: filterInput,
		nameInput:   nameInput,
		formAddress: formAddress,
		formPass:    formPass,
		formNotes:   formNotes,
		genDefaults: genDefaults,
		genLenInput: genLenInput,
		genExtended: genDefaults.Extended,
	}
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.updateKey(msg)

	case codebooksLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.codebooks = msg.codebooks
		if m.codebookIdx >= len(m.codebooks) {
			m.codebookIdx = 0
		}
		return m, nil

	case codebookSavedMsg:
		m.creating = false
		if msg.err != nil {
			m.errMsg = humanizePolicyError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.nameInput.Reset()
		m.screen = screenCodebooks
		m.status = "Записная книжка «" + msg.name + "» сохранена"
		m.loading = true
		return m, m.cmdLoadCodebooks()

	case codebookDeletedMsg:
		m.confirm = confirmNone
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if !msg.deleted {
			m.status = "Записная книжка уже удалена"
		} else {
			m.status = "Записная книжка удалена"
		}
		m.loading = true
		return m, m.cmdLoadCodebooks()

	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		m.entries = msg.entries
		if m.entryIdx >= len(m.entries) {
			m.entryIdx = 0
		}
		return m, nil

	case entrySavedMsg:
		m.formSaving = false
		if msg.err != nil {
			m.formErr = humanizeEntryError(msg.err)
			return m, nil
		}
		m.resetForm()
		m.screen = screenEntries
		m.status = "Запись сохранена"
		m.loading = true
		return m, m.cmdLoadEntries()

	case entryDeletedMsg:
		m.confirm = confirmNone
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if msg.deleted {
			m.status = "Запись удалена"
		} else {
			m.status = "Запись уже удалена"
		}
		m.loading = true
		return m, m.cmdLoadEntries()

	case revealDoneMsg:
		m.revealBusy = false
		if msg.err != nil {
			m.errMsg = "Не удалось расшифровать пароль"
			return m, nil
		}
		m.errMsg = ""
		m.revealed = msg.password
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Не удалось скопировать в буфер обмена"
		} else {
			m.status = "Скопировано в буфер обмена"
		}
		return m, nil

	case generateDoneMsg:
		if msg.err != nil {
			m.errMsg = msg.err.Error()
			return m, nil
		}
		if msg.forForm {
			m.formPass.SetValue(msg.password)
			m.status = "Пароль сгенерирован"
		} else {
			m.genResult = msg.password
		}
		return m, nil
	}

	return m, nil
}

func (m mainLoopModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != confirmNone {
		return m.updateConfirm(msg)
	}

	switch m.screen {
	case screenCodebooks:
		return m.updateCodebooks(msg)
	case screenCodebookCreate:
		return m.updateCodebookCreate(msg)
	case screenEntries:
		return m.updateEntries(msg)
	case screenEntryDetail:
		return m.updateEntryDetail(msg)
	case screenEntryForm:
		return m.updateEntryForm(msg)
	case screenGenerator:
		return m.updateGenerator(msg)
	}

	return m, nil
}

func (m mainLoopModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		target := m.confirm
		if target == confirmCodebook && m.codebookIdx < len(m.codebooks) {
			return m, m.cmdDeleteCodebook(m.codebooks[m.codebookIdx].ID)
		}
		if target == confirmEntry && m.entryIdx < len(m.entries) {
			return m, m.cmdDeleteEntry(m.entries[m.entryIdx].ID)
		}
		m.confirm = confirmNone
	case "n", "esc":
		m.confirm = confirmNone
	}
	return m, nil
}

// ── Codebook list ────────────────────────────────────────────────────────────

func (m mainLoopModel) updateCodebooks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.codebookIdx > 0 {
			m.codebookIdx--
		}
	case "down", "j":
		if m.codebookIdx < len(m.codebooks)-1 {
			m.codebookIdx++
		}
	case "enter":
		if len(m.codebooks) == 0 {
			return m, nil
		}
		m.screen = screenEntries
		m.page = 0
		m.filter = ""
		m.filterInput.Reset()
		m.entryIdx = 0
		m.status = ""
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadEntries()
	case "n":
		m.screen = screenCodebookCreate
		m.status = ""
		m.errMsg = ""
		m.nameInput.Focus()
		return m, textinput.Blink
	case "d":
		if len(m.codebooks) > 0 {
			m.confirm = confirmCodebook
		}
	case "g":
		m.screen = screenGenerator
		m.genResult = ""
		m.status = ""
		m.errMsg = ""
		m.genLenInput.Focus()
		return m, textinput.Blink
	case "q":
		m.logout = true
		return m, tea.Quit
	}
	return m, nil
}

func (m mainLoopModel) updateCodebookCreate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.nameInput.Reset()
		m.errMsg = ""
		m.screen = screenCodebooks
		return m, nil
	case "enter":
		if m.creating {
			return m, nil
		}
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.errMsg = "Имя обязательно"
			return m, nil
		}
		m.creating = true
		m.errMsg = ""
		return m, m.cmdCreateCodebook(name)
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// ── Entry list ───────────────────────────────────────────────────────────────

func (m mainLoopModel) updateEntries(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filterActive {
		switch msg.String() {
		case "enter":
			m.filterActive = false
			m.filterInput.Blur()
			m.filter = strings.TrimSpace(m.filterInput.Value())
			m.page = 0
			m.entryIdx = 0
			m.loading = true
			return m, m.cmdLoadEntries()
		case "esc":
			m.filterActive = false
			m.filterInput.Blur()
			m.filterInput.SetValue(m.filter)
			return m, nil
		}

		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "esc":
		m.screen = screenCodebooks
		m.status = ""
		m.errMsg = ""
		m.loading = true
		return m, m.cmdLoadCodebooks()
	case "up", "k":
		if m.entryIdx > 0 {
			m.entryIdx--
		}
	case "down", "j":
		if m.entryIdx < len(m.entries)-1 {
			m.entryIdx++
		}
	case "enter":
		if len(m.entries) == 0 {
			return m, nil
		}
		m.screen = screenEntryDetail
		m.revealed = ""
		m.status = ""
		m.errMsg = ""
	case "/":
		m.filterActive = true
		m.filterInput.Focus()
		return m, textinput.Blink
	case "right", "l":
		// a full page suggests there may be a next one
		if len(m.entries) == entriesPageSize {
			m.page++
			m.entryIdx = 0
			m.loading = true
			return m, m.cmdLoadEntries()
		}
	case "left", "h":
		if m.page > 0 {
			m.page--
			m.entryIdx = 0
			m.loading = true
			return m, m.cmdLoadEntries()
		}
	case "a":
		m.openEntryForm(false)
		return m, textinput.Blink
	case "e":
		if len(m.entries) == 0 {
			return m, nil
		}
		m.openEntryForm(true)
		return m, textinput.Blink
	case "d":
		if len(m.entries) > 0 {
			m.confirm = confirmEntry
		}
	}
	return m, nil
}

// ── Entry detail ─────────────────────────────────────────────────────────────

func (m mainLoopModel) updateEntryDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// revealed plaintext never survives leaving the screen
		m.revealed = ""
		m.errMsg = ""
		m.status = ""
		m.screen = screenEntries
	case "r":
		if m.revealed != "" || m.revealBusy || m.entryIdx >= len(m.entries) {
			return m, nil
		}
		m.revealBusy = true
		return m, m.cmdReveal(m.entries[m.entryIdx])
	case "c":
		if m.revealed == "" {
			m.errMsg = "Сначала откройте пароль (r)"
			return m, nil
		}
		return m, cmdCopy(m.revealed)
	}
	return m, nil
}

// ── Entry form ───────────────────────────────────────────────────────────────

func (m *mainLoopModel) openEntryForm(editing bool) {
	m.screen = screenEntryForm
	m.formEditing = editing
	m.formErr = ""
	m.status = ""
	m.errMsg = ""
	m.formFocus = 0

	m.formAddress.Reset()
	m.formPass.Reset()
	m.formNotes.Reset()

	if editing && m.entryIdx < len(m.entries) {
		entry := m.entries[m.entryIdx]
		m.formEntryID = entry.ID
		m.formAddress.SetValue(entry.Address)
		m.formNotes.SetValue(entry.Notes)
	} else {
		m.formEntryID = 0
	}

	m.formAddress.Focus()
	m.formPass.Blur()
	m.formNotes.Blur()
}

func (m *mainLoopModel) resetForm() {
	m.formAddress.Reset()
	m.formPass.Reset()
	m.formNotes.Reset()
	m.formErr = ""
	m.formEntryID = 0
	m.formEditing = false
}

func (m mainLoopModel) updateEntryForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.resetForm()
		m.screen = screenEntries
		return m, nil
	case "tab":
		m.formFocusNext()
		return m, nil
	case "shift+tab":
		m.formFocusPrev()
		return m, nil
	case "ctrl+g":
		return m, m.cmdGenerate(m.genDefaults.Length, m.genDefaults.Extended, true)
	case "enter":
		// the notes textarea consumes enter for new lines
		if m.formFocus == 2 {
			break
		}
		if m.formSaving {
			return m, nil
		}

		address := strings.TrimSpace(m.formAddress.Value())
		pass := m.formPass.Value()
		if address == "" || pass == "" {
			m.formErr = "Адрес и пароль обязательны"
			return m, nil
		}

		m.formErr = ""
		m.formSaving = true
		return m, m.cmdSaveEntry(address, pass, m.formNotes.Value())
	}

	var cmd tea.Cmd
	switch m.formFocus {
	case 0:
		m.formAddress, cmd = m.formAddress.Update(msg)
	case 1:
		m.formPass, cmd = m.formPass.Update(msg)
	case 2:
		m.formNotes, cmd = m.formNotes.Update(msg)
	}
	return m, cmd
}

func (m *mainLoopModel) formFocusNext() {
	m.formFocus = (m.formFocus + 1) % 3
	m.syncFormFocus()
}

func (m *mainLoopModel) formFocusPrev() {
	m.formFocus = (m.formFocus + 2) % 3
	m.syncFormFocus()
}

func (m *mainLoopModel) syncFormFocus() {
	m.formAddress.Blur()
	m.formPass.Blur()
	m.formNotes.Blur()
	switch m.formFocus {
	case 0:
		m.formAddress.Focus()
	case 1:
		m.formPass.Focus()
	case 2:
		m.formNotes.Focus()
	}
}

// ── Generator screen ─────────────────────────────────────────────────────────

func (m mainLoopModel) updateGenerator(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.genResult = ""
		m.errMsg = ""
		m.screen = screenCodebooks
		return m, nil
	case "e":
		m.genExtended = !m.genExtended
		return m, nil
	case "c":
		if m.genResult == "" {
			m.errMsg = "Сначала сгенерируйте пароль (enter)"
			return m, nil
		}
		return m, cmdCopy(m.genResult)
	case "enter":
		length, err := strconv.Atoi(strings.TrimSpace(m.genLenInput.Value()))
		if err != nil || length < 1 {
			m.errMsg = "Длина должна быть положительным числом"
			return m, nil
		}
		m.errMsg = ""
		return m, m.cmdGenerate(length, m.genExtended, false)
	}

	var cmd tea.Cmd
	m.genLenInput, cmd = m.genLenInput.Update(msg)
	return m, cmd
}

// ── Commands ─────────────────────────────────────────────────────────────────

func (m mainLoopModel) cmdLoadCodebooks() tea.Cmd {
	ctx, vault, username := m.ctx, m.vault, m.session.username
	return func() tea.Msg {
		codebooks, err := vault.GetUserCodebooks(ctx, username)
		return codebooksLoadedMsg{codebooks: codebooks, err: err}
	}
}

func (m mainLoopModel) cmdCreateCodebook(name string) tea.Cmd {
	ctx, vault, username := m.ctx, m.vault, m.session.username
	return func() tea.Msg {
		err := vault.CreateCodebook(ctx, username, name)
		return codebookSavedMsg{name: name, err: err}
	}
}

func (m mainLoopModel) cmdDeleteCodebook(id int64) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		deleted, err := vault.DeleteCodebook(ctx, id)
		return codebookDeletedMsg{deleted: deleted, err: err}
	}
}

func (m mainLoopModel) cmdLoadEntries() tea.Cmd {
	if m.codebookIdx >= len(m.codebooks) {
		return func() tea.Msg { return entriesLoadedMsg{} }
	}

	ctx, vault := m.ctx, m.vault
	codebookID := m.codebooks[m.codebookIdx].ID
	filter, page := m.filter, m.page
	return func() tea.Msg {
		entries, err := vault.GetEntries(ctx, codebookID, filter, page, entriesPageSize)
		return entriesLoadedMsg{entries: entries, err: err}
	}
}

func (m mainLoopModel) cmdSaveEntry(address, pass, notes string) tea.Cmd {
	ctx, vault, s := m.ctx, m.vault, m.session
	editing, entryID := m.formEditing, m.formEntryID

	if m.codebookIdx >= len(m.codebooks) {
		return func() tea.Msg { return entrySavedMsg{err: service.ErrCodebookNotFound} }
	}
	codebookID := m.codebooks[m.codebookIdx].ID

	var publicKey []byte
	if editing && m.entryIdx < len(m.entries) {
		publicKey = m.entries[m.entryIdx].PublicKey
	}

	return func() tea.Msg {
		entry := models.PasswordEntry{
			ID:         entryID,
			CodebookID: codebookID,
			Address:    address,
			PublicKey:  publicKey,
			Notes:      notes,
		}

		var err error
		if editing {
			var matched bool
			matched, err = vault.UpdateEntry(ctx, s.masterPassword, pass, entry)
			if err == nil && !matched {
				err = fmt.Errorf("запись больше не существует")
			}
		} else {
			err = vault.AddEntry(ctx, s.masterPassword, pass, entry)
		}

		return entrySavedMsg{err: err}
	}
}

func (m mainLoopModel) cmdDeleteEntry(id int64) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		deleted, err := vault.DeleteEntry(ctx, id)
		return entryDeletedMsg{deleted: deleted, err: err}
	}
}

func (m mainLoopModel) cmdReveal(entry models.PasswordEntry) tea.Cmd {
	ctx, vault, s := m.ctx, m.vault, m.session
	return func() tea.Msg {
		password, err := vault.RevealPassword(ctx, s.masterPassword, entry)
		return revealDoneMsg{password: password, err: err}
	}
}

func (m mainLoopModel) cmdGenerate(length int, extended, forForm bool) tea.Cmd {
	vault := m.vault
	return func() tea.Msg {
		password, err := vault.GeneratePassword(length, extended)
		return generateDoneMsg{password: password, forForm: forForm, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
