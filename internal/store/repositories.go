package store

import "github.com/MKhiriev/codebook-vault/internal/logger"

// Repositories aggregates every repository backed by the shared database
// handle. The handle is single-writer by contract: callers must serialize
// mutating access.
type Repositories struct {
	Users     UserRepository
	Codebooks CodebookRepository
	Entries   EntryRepository
}

// NewRepositories constructs all repositories over one database connection.
func NewRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db, log),
		Codebooks: NewCodebookRepository(db, log),
		Entries:   NewEntryRepository(db, log),
	}
}
