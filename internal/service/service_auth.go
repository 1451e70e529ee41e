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

// authService is the concrete implementation of AuthService.
// It hashes login passwords with argon2id before persistence and never keeps
// plaintext credentials beyond the duration of a single call.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// codebookRepository supplies the codebook list returned on a
	// successful login.
	codebookRepository store.CodebookRepository

	// hasher derives and verifies the stored login password hash.
	hasher crypto.PasswordHasher

	// validator enforces the username and password policies on registration.
	validator validators.Validator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, codebooks store.CodebookRepository, hasher crypto.PasswordHasher, validator validators.Validator, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:     users,
		codebookRepository: codebooks,
		hasher:             hasher,
		validator:          validator,
		logger:             logger,
	}
}

// Register creates a new account.
//
// The credentials are checked against the username and password policies,
// the password is hashed with the sensitive argon2id tier, and persistence is
// delegated to the UserRepository.
//
// Returns:
//   - (true, nil) when the account was created.
//   - (false, nil) when the username is already taken.
//   - (false, err) for a policy violation (see validators) or a storage
//     failure.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (bool, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Error().Str("func", "Register").Str("username", creds.Username).Msg("credentials rejected by policy")
		return false, err
	}

	hash, err := a.hasher.Hash(creds.Password)
	if err != nil {
		log.Err(err).Str("func", "Register").Msg("password hashing failed")
		return false, fmt.Errorf("password hashing failed: %w", err)
	}

	err = a.userRepository.CreateUser(ctx, models.User{
		Username:     creds.Username,
		PasswordHash: hash,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "Register").Str("username", creds.Username).Msg("user creation ended with error")
		return false, fmt.Errorf("user creation ended with error: %w", err)
	}

	return true, nil
}

// Login authenticates an existing user.
//
// Unknown username and wrong password are indistinguishable to the caller:
// both produce (false, nil, nil). On success the user's codebooks are
// returned newest-first so the caller lands on a populated screen.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (bool, []models.Codebook, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		// fail closed with the same shape as a wrong password
		return false, nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "Login").Msg("user search by username failed")
		return false, nil, fmt.Errorf("user search by username failed: %w", err)
	}

	ok, err := a.hasher.Verify(creds.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "Login").Msg("stored password hash is malformed")
		return false, nil, fmt.Errorf("stored password hash is malformed: %w", err)
	}
	if !ok {
		return false, nil, nil
	}

	codebooks, err := a.codebookRepository.GetUserCodebooks(ctx, user.Username)
	if err != nil {
		log.Err(err).Str("func", "Login").Msg("codebook listing failed")
		return false, nil, fmt.Errorf("codebook listing failed: %w", err)
	}

	return true, codebooks, nil
}
