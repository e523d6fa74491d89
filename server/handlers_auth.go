package server

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"note-go/model"
	"note-go/notification"
	apperrors "note-go/pkg/errors"
	"note-go/pkg/logger"
	"note-go/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// fail maps an error to its HTTP response. Driver and other unknown errors
// become a 500 with the detail redacted in production.
func (s *Server) fail(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, appErr)
		return
	}

	logger.Error("Internal error",
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("requestID", c.GetString("requestID")))

	if s.cfg.IsProduction() {
		c.JSON(http.StatusInternalServerError, apperrors.ErrInternalServer)
		return
	}
	c.JSON(http.StatusInternalServerError, apperrors.New(500, err.Error(), http.StatusInternalServerError, err))
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

func (r *registerRequest) validate() *apperrors.AppError {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.TrimSpace(r.Email)
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || r.Password == "" {
		return apperrors.Validation("all fields are required")
	}
	if !emailRegex.MatchString(r.Email) {
		return apperrors.Validation("email format is invalid")
	}
	if len(r.Password) < minPasswordLength {
		return apperrors.Validation("password must be at least 8 characters")
	}
	return nil
}

// registerHandler 处理用户注册。注册成功后不自动登录。
func (s *Server) registerHandler(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, apperrors.Validation("all fields are required"))
		return
	}
	if err := req.validate(); err != nil {
		s.fail(c, err)
		return
	}

	exists, err := s.store.UserEmailExists(req.Email)
	if err != nil {
		s.fail(c, err)
		return
	}
	if exists {
		s.fail(c, apperrors.ErrEmailTaken)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		s.fail(c, err)
		return
	}

	user := model.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
	}
	if err := s.store.CreateUser(&user); err != nil {
		// Two registrations can race past the probe; the unique
		// constraint decides the winner.
		if errors.Is(err, store.ErrEmailTaken) {
			s.fail(c, apperrors.ErrEmailTaken)
			return
		}
		s.fail(c, err)
		return
	}

	logger.Info("User registered", zap.Uint("userID", user.ID))
	go notification.SendWelcomeEmail(user.Email, user.FirstName)

	c.JSON(http.StatusCreated, gin.H{"message": "user registration is completed"})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginHandler 处理登录。查不到用户和密码不匹配返回同一个错误。
func (s *Server) loginHandler(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, apperrors.Validation("email and password are required"))
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		s.fail(c, apperrors.Validation("email and password are required"))
		return
	}
	if !emailRegex.MatchString(req.Email) {
		s.fail(c, apperrors.Validation("email format is invalid"))
		return
	}

	user, err := s.store.FindUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.fail(c, apperrors.ErrInvalidCredentials)
			return
		}
		s.fail(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		s.fail(c, apperrors.ErrInvalidCredentials)
		return
	}

	ttl := s.cfg.SessionTTL()
	sess, err := s.store.IssueSession(user.ID, ttl)
	if err != nil {
		s.fail(c, err)
		return
	}

	s.setSessionCookie(c, sess.Token, int(ttl.Seconds()))
	logger.Info("User logged in", zap.Uint("userID", user.ID))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login Success",
		"data":    gin.H{"userId": user.ID},
	})
}

// logoutHandler 登出：服务端吊销会话并清除 cookie
func (s *Server) logoutHandler(c *gin.Context) {
	if token, err := c.Cookie(sessionCookieName); err == nil && token != "" {
		// Hard revoke so a replayed cookie is dead after logout
		if err := s.store.RevokeSession(token); err != nil {
			logger.Error("Failed to revoke session", zap.Error(err))
		}
	}
	s.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}

func (s *Server) profileHandler(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		s.fail(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":        user.ID,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"email":     user.Email,
	})
}

func (s *Server) setSessionCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookieName, token, maxAge, "/", "", s.cfg.IsProduction(), true)
}
