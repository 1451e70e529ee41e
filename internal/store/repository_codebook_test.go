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

func newTestCodebookRepo(t *testing.T) (*codebookRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &codebookRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateCodebook_Success(t *testing.T) {
	repo, mock, db := newTestCodebookRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO codebooks").
		WithArgs("alice", "Work").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.CreateCodebook(context.Background(), models.Codebook{Username: "alice", Name: "Work"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateCodebook_DuplicateIsNoOp(t *testing.T) {
	repo, mock, db := newTestCodebookRepo(t)
	defer db.Close()

	// ON CONFLICT DO NOTHING: the statement succeeds with zero rows affected.
	mock.ExpectExec("INSERT INTO codebooks").
		WithArgs("alice", "Work").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.CreateCodebook(context.Background(), models.Codebook{Username: "alice", Name: "Work"})
	if err != nil {
		t.Fatalf("duplicate creation must not error, got: %v", err)
	}
}

func TestDeleteCodebook_Success(t *testing.T) {
	repo, mock, db := newTestCodebookRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT 1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entries").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM codebooks").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	deleted, err := repo.DeleteCodebook(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !deleted {
		t.Error("expected deleted=true")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestDeleteCodebook_NotFound(t *testing.T) {
	repo, mock, db := newTestCodebookRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT 1").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	deleted, err := repo.DeleteCodebook(context.Background(), 404)
	if err != nil {
		t.Fatalf("missing codebook must not error, got: %v", err)
	}
	if deleted {
		t.Error("expected deleted=false for missing codebook")
	}
}

func TestDeleteCodebook_RollbackOnEntryDeleteFailure(t *testing.T) {
	repo, mock, db := newTestCodebookRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT 1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entries").
		WithArgs(int64(7)).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	deleted, err := repo.DeleteCodebook(context.Background(), 7)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if deleted {
		t.Error("expected deleted=false after rollback")
	}
	if !errors.Is(err, ErrExecutingStatement) {
		t.Errorf("expected ErrExecutingStatement, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("rollback was not issued: %v", err)
	}
}

func TestDeleteCodebook_RollbackOnCodebookDeleteFailure(t *testing.T) {
	repo, mock, db := newTestCodebookRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT 1").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entries").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("DELETE FROM codebooks").
		WithArgs(int64(7)).
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	_, err := repo.DeleteCodebook(context.Background(), 7)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("rollback was not issued: %v", err)
	}
}

func TestGetUserCodebooks_OrderedNewestFirst(t *testing.T) {
	repo, mock, db := newTestCodebookRepo(t)
	defer db.Close()

	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	rows := sqlmock.
		NewRows([]string{"codebook_id", "username", "codebook_name", "created_time"}).
		AddRow(2, "alice", "Personal", newer).
		AddRow(1, "alice", "Work", older)

	mock.ExpectQuery("SELECT codebook_id, username, codebook_name, created_time").
		WithArgs("alice").
		WillReturnRows(rows)

	codebooks, err := repo.GetUserCodebooks(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(codebooks) != 2 {
		t.Fatalf("expected 2 codebooks, got %d", len(codebooks))
	}
	if codebooks[0].Name != "Personal" || codebooks[1].Name != "Work" {
		t.Errorf("unexpected order: %q then %q", codebooks[0].Name, codebooks[1].Name)
	}
}

func TestFindCodebookID(t *testing.T) {
	repo, mock, db := newTestCodebookRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT codebook_id").
		WithArgs("alice", "Work").
		WillReturnRows(sqlmock.NewRows([]string{"codebook_id"}).AddRow(5))

	id, found, err := repo.FindCodebookID(context.Background(), "alice", "Work")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !found || id != 5 {
		t.Errorf("expected (5, true), got (%d, %v)", id, found)
	}

	mock.ExpectQuery("SELECT codebook_id").
		WithArgs("alice", "Missing").
		WillReturnRows(sqlmock.NewRows([]string{"codebook_id"}))

	_, found, err = repo.FindCodebookID(context.Background(), "alice", "Missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found {
		t.Error("expected found=false for missing codebook")
	}
}
