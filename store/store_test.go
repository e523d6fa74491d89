package store

import (
	"testing"

	"note-go/model"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	// A second pooled connection to :memory: would see a different database.
	sqlDB, err := s.db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestUser(t *testing.T, s *Store, email string) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("longenough"), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{
		FirstName: "A",
		LastName:  "B",
		Email:     email,
		Password:  string(hash),
	}
	require.NoError(t, s.CreateUser(u))
	return u
}
