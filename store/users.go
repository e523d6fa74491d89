package store

import (
	"errors"

	"note-go/model"

	"gorm.io/gorm"
)

// CreateUser inserts a new user row. The email uniqueIndex is the real
// uniqueness guarantee; a duplicate-key violation maps to ErrEmailTaken so
// two concurrent registrations can never both succeed.
func (s *Store) CreateUser(u *model.User) error {
	if err := s.db.Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

// FindUserByEmail returns the full record including the password hash.
// Only the login flow may call this.
func (s *Store) FindUserByEmail(email string) (*model.User, error) {
	var u model.User
	if err := s.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// UserEmailExists is the cheap pre-insert probe. The unique constraint in
// CreateUser still backstops the check-then-insert race.
func (s *Store) UserEmailExists(email string) (bool, error) {
	var count int64
	if err := s.db.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) FindUserByID(id uint) (*model.User, error) {
	var u model.User
	if err := s.db.First(&u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}
