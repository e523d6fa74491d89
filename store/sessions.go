package store

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"note-go/model"

	"gorm.io/gorm"
)

// generateToken 生成一个安全的随机 token
func generateToken() string {
	b := make([]byte, 32)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// IssueSession creates a new session row for the user and returns it. One
// user may hold any number of live sessions.
func (s *Store) IssueSession(userID uint, ttl time.Duration) (*model.Session, error) {
	sess := model.Session{
		Token:     generateToken(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.db.Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

// ResolveSession returns the user bound to a live session token. Expired and
// absent tokens are indistinguishable to the caller.
func (s *Store) ResolveSession(token string) (*model.User, error) {
	var sess model.Session
	if err := s.db.First(&sess, "token = ?", token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	if !time.Now().Before(sess.ExpiresAt) {
		return nil, ErrSessionNotFound
	}

	var user model.User
	if err := s.db.First(&user, sess.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &user, nil
}

// RevokeSession deletes the session row for the token. Revoking an unknown
// or already-revoked token is a no-op success.
func (s *Store) RevokeSession(token string) error {
	return s.db.Delete(&model.Session{}, "token = ?", token).Error
}

// SweepExpiredSessions removes every session whose expiry has passed and
// reports how many rows went. Safe to run concurrently with logins: only
// already-dead rows are touched.
func (s *Store) SweepExpiredSessions() (int64, error) {
	res := s.db.Where("expires_at <= ?", time.Now()).Delete(&model.Session{})
	return res.RowsAffected, res.Error
}
