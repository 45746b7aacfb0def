package store

import "github.com/akarpenko/fashion-gateway/internal/logger"

// Storages aggregates every repository backed by the shared database
// connection.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages wires all repositories to the given database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
