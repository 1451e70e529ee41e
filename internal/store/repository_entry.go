// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/codebook-vault/internal/logger"
	"github.com/MKhiriev/codebook-vault/models"
)

// entryRepository is the SQLite-backed implementation of [EntryRepository].
// Envelope blobs pass through unmodified; this layer never decrypts.
type entryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntryRepository constructs an [EntryRepository] backed by the provided
// database connection and logger.
func NewEntryRepository(db *DB, logger *logger.Logger) EntryRepository {
	logger.Debug().Msg("creating entry repository")
	return &entryRepository{
		db:     db,
		logger: logger,
	}
}

// AddEntry inserts one entry row. A single statement relies on the storage
// engine's per-statement atomicity, so no transaction wrapper is needed.
// Length violations are caught by the schema CHECK constraints and surface
// as wrapped statement errors.
func (r *entryRepository) AddEntry(ctx context.Context, entry models.PasswordEntry) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, addEntry,
		entry.CodebookID, entry.Address, entry.PublicKey, entry.EncryptedPassword, entry.Notes)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.AddEntry").Int64("codebook_id", entry.CodebookID).Msg("error: inserting entry failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// UpdateEntry overwrites the mutable fields of the entry identified by
// entry.ID. Returns false with a nil error when no row matched, which
// distinguishes "nothing to update" from a storage failure.
func (r *entryRepository) UpdateEntry(ctx context.Context, entry models.PasswordEntry) (bool, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, updateEntry,
		entry.Address, entry.PublicKey, entry.EncryptedPassword, entry.Notes, entry.ID)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.UpdateEntry").Int64("entry_id", entry.ID).Msg("error: updating entry failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: rows affected: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// DeleteEntry removes one entry inside a transaction. Returns true only if a
// row was actually removed.
func (r *entryRepository) DeleteEntry(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	var removed bool
	err := WithTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		res, err := tx.ExecContext(ctx, deleteEntry, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: rows affected: %w", ErrExecutingStatement, err)
		}

		removed = affected > 0
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.DeleteEntry").Int64("entry_id", id).Msg("error: deleting entry failed")
		return false, err
	}

	return removed, nil
}

// GetEntries lists one page of a codebook's entries in insertion order.
// A non-empty filter is matched as a substring against the address and notes
// columns. The query is built dynamically with squirrel since the filter
// clause is optional.
func (r *entryRepository) GetEntries(ctx context.Context, codebookID int64, filter string, page, pageSize int) ([]models.PasswordEntry, error) {
	log := logger.FromContext(ctx)

	builder := sq.
		Select("entry_id", "codebook_id", "address", "public_key", "encrypted_password", "notes", "created_time").
		From("entries").
		Where(sq.Eq{"codebook_id": codebookID})

	if filter != "" {
		pattern := "%" + filter + "%"
		builder = builder.Where(sq.Or{
			sq.Like{"address": pattern},
			sq.Like{"notes": pattern},
		})
	}

	builder = builder.
		OrderBy("entry_id ASC").
		Limit(uint64(pageSize)).
		Offset(uint64(page * pageSize))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entryRepository.GetEntries").Int64("codebook_id", codebookID).Msg("error: querying entries failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.PasswordEntry
	for rows.Next() {
		var entry models.PasswordEntry
		var notes sql.NullString
		if err := rows.Scan(&entry.ID, &entry.CodebookID, &entry.Address,
			&entry.PublicKey, &entry.EncryptedPassword, &notes, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entry.Notes = notes.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
