package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
)

// Storages bundles every persistence dependency of the service layer.
type Storages struct {
	UserRepository    UserRepository
	LibraryRepository LibraryRepository
	BookRepository    BookRepository
	CoverStorage      CoverStorage

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories and the cover storage.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	covers, err := NewCoverStorage(ctx, cfg.Covers, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		LibraryRepository: NewLibraryRepository(db, log),
		BookRepository:    NewBookRepository(db, log),
		CoverStorage:      covers,
		db:                db,
	}, nil
}

// Close releases the database pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
