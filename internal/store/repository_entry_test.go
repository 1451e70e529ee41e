package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/codebook-vault/internal/logger"
	"github.com/MKhiriev/codebook-vault/models"
)

func newTestEntryRepo(t *testing.T) (*entryRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &entryRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testEntry() models.PasswordEntry {
	return models.PasswordEntry{
		ID:                3,
		CodebookID:        7,
		Address:           "example.com",
		PublicKey:         []byte{0x01},
		EncryptedPassword: make([]byte, 72),
		Notes:             "personal",
	}
}

func TestAddEntry_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	entry := testEntry()

	mock.ExpectExec("INSERT INTO entries").
		WithArgs(entry.CodebookID, entry.Address, entry.PublicKey, entry.EncryptedPassword, entry.Notes).
		WillReturnResult(sqlmock.NewResult(3, 1))

	if err := repo.AddEntry(context.Background(), entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAddEntry_ConstraintViolation(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	// Oversized blob trips the schema CHECK constraint.
	mock.ExpectExec("INSERT INTO entries").
		WillReturnError(constraintError())

	err := repo.AddEntry(context.Background(), testEntry())
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestUpdateEntry_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	entry := testEntry()

	mock.ExpectExec("UPDATE entries").
		WithArgs(entry.Address, entry.PublicKey, entry.EncryptedPassword, entry.Notes, entry.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	updated, err := repo.UpdateEntry(context.Background(), entry)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !updated {
		t.Error("expected updated=true")
	}
}

func TestUpdateEntry_NoRowMatched(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	entry := testEntry()
	entry.ID = 404

	mock.ExpectExec("UPDATE entries").
		WithArgs(entry.Address, entry.PublicKey, entry.EncryptedPassword, entry.Notes, entry.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	updated, err := repo.UpdateEntry(context.Background(), entry)
	if err != nil {
		t.Fatalf("missing entry must not error, got: %v", err)
	}
	if updated {
		t.Error("expected updated=false for missing entry")
	}
}

func TestDeleteEntry_Success(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entries").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	removed, err := repo.DeleteEntry(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Error("expected removed=true")
	}
}

func TestDeleteEntry_NoRowMatched(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entries").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	removed, err := repo.DeleteEntry(context.Background(), 404)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Error("expected removed=false for missing entry")
	}
}

func TestDeleteEntry_RollbackOnFailure(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entries").
		WithArgs(int64(3)).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	_, err := repo.DeleteEntry(context.Background(), 3)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("rollback was not issued: %v", err)
	}
}

func entryRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"entry_id", "codebook_id", "address", "public_key", "encrypted_password", "notes", "created_time",
	})
}

func TestGetEntries_NoFilter(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	now := time.Now()
	rows := entryRows().
		AddRow(1, 7, "example.com", []byte{0x01}, make([]byte, 72), "personal", now).
		AddRow(2, 7, "other.org", []byte{0x01}, make([]byte, 72), nil, now)

	mock.ExpectQuery("SELECT entry_id, codebook_id, address").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	entries, err := repo.GetEntries(context.Background(), 7, "", 0, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != 1 || entries[1].ID != 2 {
		t.Errorf("unexpected id order: %d then %d", entries[0].ID, entries[1].ID)
	}
	if entries[1].Notes != "" {
		t.Errorf("NULL notes must scan as empty string, got %q", entries[1].Notes)
	}
}

func TestGetEntries_WithFilter(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	rows := entryRows().
		AddRow(1, 7, "example.com", []byte{0x01}, make([]byte, 72), "personal", time.Now())

	// Filter is matched as a substring against address and notes.
	mock.ExpectQuery("SELECT entry_id, codebook_id, address").
		WithArgs(int64(7), "%example%", "%example%").
		WillReturnRows(rows)

	entries, err := repo.GetEntries(context.Background(), 7, "example", 0, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestGetEntries_EmptyCodebook(t *testing.T) {
	repo, mock, db := newTestEntryRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT entry_id, codebook_id, address").
		WithArgs(int64(9)).
		WillReturnRows(entryRows())

	entries, err := repo.GetEntries(context.Background(), 9, "", 0, 50)
	if err != nil {
		t.Fatalf("empty codebook must not error, got: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result, got %d entries", len(entries))
	}
}
