package store

import (
	"errors"

	"note-go/model"

	"gorm.io/gorm"
)

// Every note query is scoped by the owning uid. A correct guess of another
// user's note id still resolves to ErrNoteNotFound.

func (s *Store) ListNotes(userID uint) ([]model.Note, error) {
	notes := []model.Note{}
	if err := s.db.Where("uid = ?", userID).Order("id").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

func (s *Store) GetNote(userID, noteID uint) (*model.Note, error) {
	var n model.Note
	if err := s.db.Where("id = ? AND uid = ?", noteID, userID).First(&n).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (s *Store) CreateNote(n *model.Note) error {
	return s.db.Create(n).Error
}

func (s *Store) UpdateNote(userID, noteID uint, title, content string) (*model.Note, error) {
	n, err := s.GetNote(userID, noteID)
	if err != nil {
		return nil, err
	}
	n.Title = title
	n.Content = content
	if err := s.db.Save(n).Error; err != nil {
		return nil, err
	}
	return n, nil
}

func (s *Store) DeleteNote(userID, noteID uint) error {
	res := s.db.Where("id = ? AND uid = ?", noteID, userID).Delete(&model.Note{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
