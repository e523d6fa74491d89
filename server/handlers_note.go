package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"note-go/model"
	apperrors "note-go/pkg/errors"
	"note-go/store"

	"github.com/gin-gonic/gin"
)

const maxNoteTitleLength = 255

type noteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (r *noteRequest) validate() *apperrors.AppError {
	r.Title = strings.TrimSpace(r.Title)
	r.Content = strings.TrimSpace(r.Content)
	if r.Title == "" {
		return apperrors.Validation("title is required")
	}
	if r.Content == "" {
		return apperrors.Validation("content is required")
	}
	if len(r.Title) > maxNoteTitleLength {
		return apperrors.Validation("title must be less than 255 characters")
	}
	return nil
}

func noteIDParam(c *gin.Context) (uint, *apperrors.AppError) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("valid note id is required")
	}
	return uint(id), nil
}

func (s *Server) listNotesHandler(c *gin.Context) {
	user := currentUser(c)
	notes, err := s.store.ListNotes(user.ID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (s *Server) getNoteHandler(c *gin.Context) {
	user := currentUser(c)
	id, appErr := noteIDParam(c)
	if appErr != nil {
		s.fail(c, appErr)
		return
	}
	note, err := s.store.GetNote(user.ID, id)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			s.fail(c, apperrors.ErrNoteNotFound)
			return
		}
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (s *Server) createNoteHandler(c *gin.Context) {
	user := currentUser(c)
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, apperrors.Validation("all fields are required"))
		return
	}
	if appErr := req.validate(); appErr != nil {
		s.fail(c, appErr)
		return
	}

	note := model.Note{
		Title:   req.Title,
		Content: req.Content,
		UID:     user.ID,
	}
	if err := s.store.CreateNote(&note); err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (s *Server) updateNoteHandler(c *gin.Context) {
	user := currentUser(c)
	id, appErr := noteIDParam(c)
	if appErr != nil {
		s.fail(c, appErr)
		return
	}
	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, apperrors.Validation("all fields are required"))
		return
	}
	if appErr := req.validate(); appErr != nil {
		s.fail(c, appErr)
		return
	}

	note, err := s.store.UpdateNote(user.ID, id, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			s.fail(c, apperrors.ErrNoteNotFound)
			return
		}
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (s *Server) deleteNoteHandler(c *gin.Context) {
	user := currentUser(c)
	id, appErr := noteIDParam(c)
	if appErr != nil {
		s.fail(c, appErr)
		return
	}
	if err := s.store.DeleteNote(user.ID, id); err != nil {
		if errors.Is(err, store.ErrNoteNotFound) {
			s.fail(c, apperrors.ErrNoteNotFound)
			return
		}
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Note deleted successfully"})
}
