package store

import (
	"testing"

	"note-go/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteCRUD(t *testing.T) {
	s := newTestStore(t)
	u := newTestUser(t, s, "a@b.com")

	notes, err := s.ListNotes(u.ID)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)

	n := &model.Note{Title: "t", Content: "c", UID: u.ID}
	require.NoError(t, s.CreateNote(n))
	require.NotZero(t, n.ID)

	got, err := s.GetNote(u.ID, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, "c", got.Content)

	updated, err := s.UpdateNote(u.ID, n.ID, "t2", "c2")
	require.NoError(t, err)
	assert.Equal(t, "t2", updated.Title)
	assert.Equal(t, "c2", updated.Content)

	notes, err = s.ListNotes(u.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "t2", notes[0].Title)

	require.NoError(t, s.DeleteNote(u.ID, n.ID))
	_, err = s.GetNote(u.ID, n.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.ErrorIs(t, s.DeleteNote(u.ID, n.ID), ErrNoteNotFound)
}

func TestNoteOwnershipIsolation(t *testing.T) {
	s := newTestStore(t)
	alice := newTestUser(t, s, "alice@b.com")
	bob := newTestUser(t, s, "bob@b.com")

	n := &model.Note{Title: "private", Content: "secret", UID: alice.ID}
	require.NoError(t, s.CreateNote(n))

	// Bob guesses the id correctly but still gets nothing
	_, err := s.GetNote(bob.ID, n.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)

	_, err = s.UpdateNote(bob.ID, n.ID, "stolen", "gone")
	assert.ErrorIs(t, err, ErrNoteNotFound)

	assert.ErrorIs(t, s.DeleteNote(bob.ID, n.ID), ErrNoteNotFound)

	notes, err := s.ListNotes(bob.ID)
	require.NoError(t, err)
	assert.Empty(t, notes)

	// Alice's note is untouched
	got, err := s.GetNote(alice.ID, n.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)
}
