package store

import (
	"sync"
	"testing"

	"note-go/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	newTestUser(t, s, "a@b.com")

	err := s.CreateUser(&model.User{
		FirstName: "C",
		LastName:  "D",
		Email:     "a@b.com",
		Password:  "hash",
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreateUserConcurrentSameEmail(t *testing.T) {
	// Both goroutines skip the existence probe and insert directly; the
	// unique constraint must let exactly one through.
	s := newTestStore(t)

	const attempts = 2
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.CreateUser(&model.User{
				FirstName: "A",
				LastName:  "B",
				Email:     "race@b.com",
				Password:  "hash",
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrEmailTaken)
		}
	}
	assert.Equal(t, 1, succeeded)
}

func TestFindUserByEmail(t *testing.T) {
	s := newTestStore(t)
	created := newTestUser(t, s, "a@b.com")

	u, err := s.FindUserByEmail("a@b.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, u.ID)
	assert.NotEmpty(t, u.Password)

	_, err = s.FindUserByEmail("nobody@b.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserEmailExists(t *testing.T) {
	s := newTestStore(t)
	newTestUser(t, s, "a@b.com")

	exists, err := s.UserEmailExists("a@b.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.UserEmailExists("nobody@b.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestFindUserByID(t *testing.T) {
	s := newTestStore(t)
	created := newTestUser(t, s, "a@b.com")

	u, err := s.FindUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", u.Email)

	_, err = s.FindUserByID(created.ID + 100)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
