// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/codebook-vault/internal/crypto"
	"github.com/MKhiriev/codebook-vault/internal/logger"
	"github.com/MKhiriev/codebook-vault/internal/store"
	"github.com/MKhiriev/codebook-vault/internal/validators"
	"github.com/MKhiriev/codebook-vault/models"
)

// placeholderPublicKey is stored for entries created without key material.
// The column is NOT NULL with a minimum length of one byte.
var placeholderPublicKey = []byte{0x01}

// vaultService is the concrete implementation of VaultService. It composes
// the codebook and entry repositories with the envelope crypto so that the
// storage layer only ever sees ciphertext.
type vaultService struct {
	codebookRepository store.CodebookRepository
	entryRepository    store.EntryRepository

	// envelope seals and opens entry passwords under the master password.
	envelope crypto.EnvelopeService

	// generator produces random passwords for the entry forms.
	generator crypto.Generator

	// validator enforces the codebook name policy and the entry field bounds.
	validator validators.Validator

	logger *logger.Logger
}

// NewVaultService constructs a new VaultService.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewVaultService(codebooks store.CodebookRepository, entries store.EntryRepository, envelope crypto.EnvelopeService, generator crypto.Generator, validator validators.Validator, logger *logger.Logger) VaultService {
	return &vaultService{
		codebookRepository: codebooks,
		entryRepository:    entries,
		envelope:           envelope,
		generator:          generator,
		validator:          validator,
		logger:             logger,
	}
}

// CreateCodebook validates the name against the codebook name policy and
// inserts the codebook. Recreating an existing (username, name) pair is a
// no-op, not an error.
func (v *vaultService) CreateCodebook(ctx context.Context, username, name string) error {
	log := logger.FromContext(ctx)

	codebook := models.Codebook{Username: username, Name: name}
	if err := v.validator.Validate(ctx, codebook); err != nil {
		log.Error().Str("func", "CreateCodebook").Str("name", name).Msg("codebook name rejected by policy")
		return err
	}

	if err := v.codebookRepository.CreateCodebook(ctx, codebook); err != nil {
		log.Err(err).Str("func", "CreateCodebook").Str("name", name).Msg("codebook creation ended with error")
		return fmt.Errorf("codebook creation ended with error: %w", err)
	}

	return nil
}

// DeleteCodebook removes the codebook and all of its entries in one
// transaction. Returns (false, nil) when no such codebook exists.
func (v *vaultService) DeleteCodebook(ctx context.Context, id int64) (bool, error) {
	deleted, err := v.codebookRepository.DeleteCodebook(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "DeleteCodebook").Int64("id", id).Msg("codebook deletion ended with error")
		return false, fmt.Errorf("codebook deletion ended with error: %w", err)
	}

	return deleted, nil
}

// GetUserCodebooks lists a user's codebooks, most recently created first.
func (v *vaultService) GetUserCodebooks(ctx context.Context, username string) ([]models.Codebook, error) {
	codebooks, err := v.codebookRepository.GetUserCodebooks(ctx, username)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "GetUserCodebooks").Msg("codebook listing failed")
		return nil, fmt.Errorf("codebook listing failed: %w", err)
	}

	return codebooks, nil
}

// GetCodebookID resolves a codebook id from its owner and name.
func (v *vaultService) GetCodebookID(ctx context.Context, username, name string) (int64, bool, error) {
	id, found, err := v.codebookRepository.FindCodebookID(ctx, username, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "GetCodebookID").Str("name", name).Msg("codebook lookup failed")
		return 0, false, fmt.Errorf("codebook lookup failed: %w", err)
	}

	return id, found, nil
}

// AddEntry seals password under masterPassword and persists a new entry.
// The plaintext never reaches the storage layer.
func (v *vaultService) AddEntry(ctx context.Context, masterPassword, password string, entry models.PasswordEntry) error {
	log := logger.FromContext(ctx)

	sealed, err := v.sealEntry(ctx, masterPassword, password, &entry)
	if err != nil {
		return err
	}

	if err := v.entryRepository.AddEntry(ctx, sealed); err != nil {
		log.Err(err).Str("func", "AddEntry").Int64("codebook_id", entry.CodebookID).Msg("entry creation ended with error")
		return fmt.Errorf("entry creation ended with error: %w", err)
	}

	return nil
}

// UpdateEntry re-encrypts password and overwrites the mutable fields of the
// entry identified by entry.ID. Returns (false, nil) when no row matched.
func (v *vaultService) UpdateEntry(ctx context.Context, masterPassword, password string, entry models.PasswordEntry) (bool, error) {
	log := logger.FromContext(ctx)

	sealed, err := v.sealEntry(ctx, masterPassword, password, &entry)
	if err != nil {
		return false, err
	}

	matched, err := v.entryRepository.UpdateEntry(ctx, sealed)
	if err != nil {
		log.Err(err).Str("func", "UpdateEntry").Int64("id", entry.ID).Msg("entry update ended with error")
		return false, fmt.Errorf("entry update ended with error: %w", err)
	}

	return matched, nil
}

// DeleteEntry removes one entry. Returns true only if a row was removed.
func (v *vaultService) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	deleted, err := v.entryRepository.DeleteEntry(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "DeleteEntry").Int64("id", id).Msg("entry deletion ended with error")
		return false, fmt.Errorf("entry deletion ended with error: %w", err)
	}

	return deleted, nil
}

// GetEntries lists one codebook's entries in insertion order with optional
// substring filtering and zero-indexed paging.
func (v *vaultService) GetEntries(ctx context.Context, codebookID int64, filter string, page, pageSize int) ([]models.PasswordEntry, error) {
	entries, err := v.entryRepository.GetEntries(ctx, codebookID, filter, page, pageSize)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "GetEntries").Int64("codebook_id", codebookID).Msg("entry listing failed")
		return nil, fmt.Errorf("entry listing failed: %w", err)
	}

	return entries, nil
}

// RevealPassword opens the entry's envelope under masterPassword.
func (v *vaultService) RevealPassword(ctx context.Context, masterPassword string, entry models.PasswordEntry) (string, error) {
	plaintext, err := v.envelope.Decrypt(masterPassword, entry.EncryptedPassword)
	if err != nil {
		// wrong master password and a tampered envelope are logged the
		// same way they fail: indistinguishably
		logger.FromContext(ctx).Err(err).Str("func", "RevealPassword").Int64("id", entry.ID).Msg("envelope decryption failed")
		return "", err
	}

	return string(plaintext), nil
}

// GeneratePassword produces a random password of the given length from the
// basic or extended character set.
func (v *vaultService) GeneratePassword(length int, extended bool) (string, error) {
	return v.generator.Generate(length, extended)
}

// sealEntry validates the plaintext-independent fields, encrypts password and
// fills the opaque columns of entry. Validation of the envelope bound happens
// after encryption so the stored blob, not the plaintext, is what is checked.
func (v *vaultService) sealEntry(ctx context.Context, masterPassword, password string, entry *models.PasswordEntry) (models.PasswordEntry, error) {
	log := logger.FromContext(ctx)

	if err := v.validator.Validate(ctx, *entry, validators.FieldAddress, validators.FieldNotes); err != nil {
		log.Error().Str("func", "sealEntry").Msg("entry fields rejected by policy")
		return models.PasswordEntry{}, err
	}

	envelope, err := v.envelope.Encrypt(masterPassword, []byte(password))
	if err != nil {
		log.Err(err).Str("func", "sealEntry").Msg("envelope encryption failed")
		return models.PasswordEntry{}, fmt.Errorf("envelope encryption failed: %w", err)
	}

	entry.EncryptedPassword = envelope
	if len(entry.PublicKey) == 0 {
		entry.PublicKey = placeholderPublicKey
	}

	if err := v.validator.Validate(ctx, *entry, validators.FieldPublicKey, validators.FieldEncryptedPassword); err != nil {
		if errors.Is(err, validators.ErrInvalidEncryptedPassword) {
			return models.PasswordEntry{}, ErrPasswordTooLong
		}
		return models.PasswordEntry{}, err
	}

	return *entry, nil
}
