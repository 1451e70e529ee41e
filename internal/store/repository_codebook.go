// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/codebook-vault/internal/logger"
	"github.com/MKhiriev/codebook-vault/models"
)

// codebookRepository is the SQLite-backed implementation of
// [CodebookRepository].
type codebookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCodebookRepository constructs a [CodebookRepository] backed by the
// provided database connection and logger.
func NewCodebookRepository(db *DB, logger *logger.Logger) CodebookRepository {
	logger.Debug().Msg("creating codebook repository")
	return &codebookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCodebook inserts a codebook row. The INSERT carries
// ON CONFLICT DO NOTHING on the (username, codebook_name) unique constraint,
// so recreating an existing codebook succeeds without creating a duplicate.
func (r *codebookRepository) CreateCodebook(ctx context.Context, codebook models.Codebook) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, createCodebook, codebook.Username, codebook.Name); err != nil {
		log.Err(err).Str("func", "*codebookRepository.CreateCodebook").Msg("error: inserting codebook failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteCodebook removes the codebook and all of its entries inside one
// transaction: both deletes succeed or neither is applied. Returns false
// with a nil error when the codebook does not exist.
//
// The entries delete is issued explicitly even though the schema declares
// ON DELETE CASCADE; the FK cascade is defense in depth, not the primary
// mechanism.
func (r *codebookRepository) DeleteCodebook(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	exists, err := r.codebookExists(ctx, id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	err = WithTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, deleteCodebookEntries, id); err != nil {
			return fmt.Errorf("%w: delete entries: %w", ErrExecutingStatement, err)
		}

		if _, err := tx.ExecContext(ctx, deleteCodebook, id); err != nil {
			return fmt.Errorf("%w: delete codebook: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "*codebookRepository.DeleteCodebook").Int64("codebook_id", id).Msg("error: transactional delete failed")
		return false, err
	}

	return true, nil
}

// GetUserCodebooks lists the codebooks owned by username, most recently
// created first.
func (r *codebookRepository) GetUserCodebooks(ctx context.Context, username string) ([]models.Codebook, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, getUserCodebooks, username)
	if err != nil {
		log.Err(err).Str("func", "*codebookRepository.GetUserCodebooks").Msg("error: querying codebooks failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var codebooks []models.Codebook
	for rows.Next() {
		var codebook models.Codebook
		if err := rows.Scan(&codebook.ID, &codebook.Username, &codebook.Name, &codebook.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		codebooks = append(codebooks, codebook)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return codebooks, nil
}

// FindCodebookID resolves the id of the codebook named name owned by
// username. The boolean result reports existence.
func (r *codebookRepository) FindCodebookID(ctx context.Context, username, name string) (int64, bool, error) {
	log := logger.FromContext(ctx)

	var id int64
	err := r.db.QueryRowContext(ctx, findCodebookID, username, name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*codebookRepository.FindCodebookID").Msg("error: querying codebook id failed")
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return id, true, nil
}

func (r *codebookRepository) codebookExists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx, codebookExists, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}
