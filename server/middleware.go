package server

import (
	"errors"
	"net/http"

	"note-go/model"
	"note-go/pkg/logger"
	"note-go/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionCookieName = "session_id"
	// Tokens are 64 hex chars; anything way beyond that is garbage and is
	// rejected before it reaches the store.
	maxTokenLength = 512

	ctxUserKey      = "currentUser"
	requestIDHeader = "X-Request-Id"
)

// requestID tags every request with a v4 UUID for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// requireAuth resolves the session cookie to a user and aborts with 401 on
// any failure. The identity lives in the gin context for this request only.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(sessionCookieName)
		if err != nil || token == "" || len(token) > maxTokenLength {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		user, err := s.store.ResolveSession(token)
		if err != nil {
			if !errors.Is(err, store.ErrSessionNotFound) {
				logger.Error("Failed to resolve session",
					zap.Error(err),
					zap.String("requestID", c.GetString("requestID")))
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized"})
			return
		}

		c.Set(ctxUserKey, user)
		c.Next()
	}
}

// currentUser returns the identity attached by requireAuth.
func currentUser(c *gin.Context) *model.User {
	u, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, _ := u.(*model.User)
	return user
}
