package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/codebook-vault/internal/crypto"
	"github.com/MKhiriev/codebook-vault/internal/logger"
	"github.com/MKhiriev/codebook-vault/internal/mock"
	"github.com/MKhiriev/codebook-vault/internal/validators"
	"github.com/MKhiriev/codebook-vault/models"
)

// newTestVaultSvc builds a vaultService with mocked repositories and crypto.
// The real validator is used so the policies stay part of the behavior under
// test.
func newTestVaultSvc(t *testing.T, ctrl *gomock.Controller) (*vaultService, *mock.MockCodebookRepository, *mock.MockEntryRepository, *mock.MockEnvelopeService, *mock.MockGenerator) {
	t.Helper()
	mockCodebooks := mock.NewMockCodebookRepository(ctrl)
	mockEntries := mock.NewMockEntryRepository(ctrl)
	mockEnvelope := mock.NewMockEnvelopeService(ctrl)
	mockGenerator := mock.NewMockGenerator(ctrl)

	svc := NewVaultService(mockCodebooks, mockEntries, mockEnvelope, mockGenerator, validators.NewVaultValidator(), logger.Nop()).(*vaultService)

	return svc, mockCodebooks, mockEntries, mockEnvelope, mockGenerator
}

// ── Codebooks ────────────────────────────────────────────────────────────────

func TestVaultService_CreateCodebook_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCodebooks, _, _, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockCodebooks.EXPECT().
		CreateCodebook(ctx, models.Codebook{Username: "alice", Name: "Work"}).
		Return(nil)

	err := svc.CreateCodebook(ctx, "alice", "Work")
	require.NoError(t, err)
}

func TestVaultService_CreateCodebook_InvalidName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no repository call is expected for a rejected name
	svc, _, _, _, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	tests := []string{
		"",
		"name with spaces",
		"emoji😃",
		strings.Repeat("a", 101),
	}

	for _, name := range tests {
		err := svc.CreateCodebook(ctx, "alice", name)
		assert.ErrorIs(t, err, validators.ErrInvalidCodebookName, "name %q", name)
	}
}

func TestVaultService_DeleteCodebook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCodebooks, _, _, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		mockCodebooks.EXPECT().DeleteCodebook(ctx, int64(7)).Return(true, nil),
		mockCodebooks.EXPECT().DeleteCodebook(ctx, int64(404)).Return(false, nil),
	)

	deleted, err := svc.DeleteCodebook(ctx, 7)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.DeleteCodebook(ctx, 404)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestVaultService_GetCodebookID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCodebooks, _, _, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockCodebooks.EXPECT().FindCodebookID(ctx, "alice", "Work").Return(int64(7), true, nil)

	id, found, err := svc.GetCodebookID(ctx, "alice", "Work")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, int64(7), id)
}

// ── Entries ──────────────────────────────────────────────────────────────────

func TestVaultService_AddEntry_SealsPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockEntries, mockEnvelope, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	envelope := []byte("sealed-envelope-blob-of-plausible-length-0123456789")

	gomock.InOrder(
		mockEnvelope.EXPECT().Encrypt("master-password", []byte("secret")).Return(envelope, nil),
		mockEntries.EXPECT().AddEntry(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, entry models.PasswordEntry) error {
				assert.Equal(t, int64(7), entry.CodebookID)
				assert.Equal(t, "example.com", entry.Address)
				assert.Equal(t, envelope, entry.EncryptedPassword)
				// entries without key material get the placeholder
				assert.Equal(t, []byte{0x01}, entry.PublicKey)
				return nil
			},
		),
	)

	err := svc.AddEntry(ctx, "master-password", "secret", models.PasswordEntry{
		CodebookID: 7,
		Address:    "example.com",
		Notes:      "primary account",
	})
	require.NoError(t, err)
}

func TestVaultService_AddEntry_InvalidAddress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// neither encryption nor storage must be reached
	svc, _, _, _, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	err := svc.AddEntry(ctx, "master-password", "secret", models.PasswordEntry{
		CodebookID: 7,
		Address:    "",
	})
	assert.ErrorIs(t, err, validators.ErrInvalidAddress)
}

func TestVaultService_AddEntry_PasswordTooLong(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockEnvelope, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	// an envelope over the storage bound must be rejected before any
	// statement is issued
	oversized := make([]byte, 513)
	mockEnvelope.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(oversized, nil)

	err := svc.AddEntry(ctx, "master-password", strings.Repeat("x", 500), models.PasswordEntry{
		CodebookID: 7,
		Address:    "example.com",
	})
	assert.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestVaultService_AddEntry_EncryptionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockEnvelope, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	cryptoErr := errors.New("entropy source unavailable")
	mockEnvelope.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return(nil, cryptoErr)

	err := svc.AddEntry(ctx, "master-password", "secret", models.PasswordEntry{
		CodebookID: 7,
		Address:    "example.com",
	})
	assert.ErrorIs(t, err, cryptoErr)
}

func TestVaultService_UpdateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockEntries, mockEnvelope, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	envelope := []byte("fresh-envelope-blob-from-reencryption-0123456789")

	gomock.InOrder(
		mockEnvelope.EXPECT().Encrypt("master-password", []byte("new-secret")).Return(envelope, nil),
		mockEntries.EXPECT().UpdateEntry(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, entry models.PasswordEntry) (bool, error) {
				assert.Equal(t, int64(42), entry.ID)
				assert.Equal(t, envelope, entry.EncryptedPassword)
				return true, nil
			},
		),
	)

	matched, err := svc.UpdateEntry(ctx, "master-password", "new-secret", models.PasswordEntry{
		ID:         42,
		CodebookID: 7,
		Address:    "example.org",
		PublicKey:  []byte{0x01},
	})
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestVaultService_UpdateEntry_NoRowMatched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockEntries, mockEnvelope, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockEnvelope.EXPECT().Encrypt(gomock.Any(), gomock.Any()).Return([]byte("envelope"), nil)
	mockEntries.EXPECT().UpdateEntry(ctx, gomock.Any()).Return(false, nil)

	matched, err := svc.UpdateEntry(ctx, "master-password", "secret", models.PasswordEntry{
		ID:         404,
		CodebookID: 7,
		Address:    "example.org",
	})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestVaultService_DeleteEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockEntries, _, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockEntries.EXPECT().DeleteEntry(ctx, int64(42)).Return(true, nil)

	deleted, err := svc.DeleteEntry(ctx, 42)
	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestVaultService_GetEntries_PassesFilterAndPaging(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockEntries, _, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	want := []models.PasswordEntry{{ID: 1, CodebookID: 7, Address: "example.com"}}
	mockEntries.EXPECT().GetEntries(ctx, int64(7), "example", 2, 10).Return(want, nil)

	got, err := svc.GetEntries(ctx, 7, "example", 2, 10)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// ── Reveal and generate ──────────────────────────────────────────────────────

func TestVaultService_RevealPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockEnvelope, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	entry := models.PasswordEntry{ID: 42, EncryptedPassword: []byte("envelope")}
	mockEnvelope.EXPECT().Decrypt("master-password", []byte("envelope")).Return([]byte("secret"), nil)

	plaintext, err := svc.RevealPassword(ctx, "master-password", entry)
	require.NoError(t, err)
	assert.Equal(t, "secret", plaintext)
}

func TestVaultService_RevealPassword_WrongMasterPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockEnvelope, _ := newTestVaultSvc(t, ctrl)
	ctx := context.Background()

	mockEnvelope.EXPECT().Decrypt(gomock.Any(), gomock.Any()).Return(nil, crypto.ErrDecryptionFailed)

	plaintext, err := svc.RevealPassword(ctx, "wrong", models.PasswordEntry{EncryptedPassword: []byte("envelope")})
	assert.Empty(t, plaintext)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestVaultService_GeneratePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, mockGenerator := newTestVaultSvc(t, ctrl)

	mockGenerator.EXPECT().Generate(16, true).Return("p@ssw0rd-Abcdef1", nil)

	password, err := svc.GeneratePassword(16, true)
	require.NoError(t, err)
	assert.Equal(t, "p@ssw0rd-Abcdef1", password)
}
