package store

import (
	"errors"
	"fmt"

	"note-go/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// Sentinel errors returned by lookups. Handlers translate these to HTTP
// statuses; driver errors are wrapped and surfaced as 500s.
var (
	ErrEmailTaken      = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrNoteNotFound    = errors.New("note not found")
)

// Store owns the database handle. It is constructed once in main and passed
// to the server; there is no package-level connection state.
type Store struct {
	db *gorm.DB
}

func Open(dbPath string) (*Store, error) {
	// TranslateError turns the driver's unique-constraint violation into
	// gorm.ErrDuplicatedKey, the backstop for the registration race.
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// Auto Migrate
	err = db.AutoMigrate(
		&model.User{},
		&model.Session{},
		&model.Note{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
