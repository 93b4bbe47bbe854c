package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// HTTPError is an error that knows which status it maps to.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func BadRequest(err error) *HTTPError {
	msg := "bad request"
	if err != nil {
		msg = err.Error()
	}
	return &HTTPError{Status: http.StatusBadRequest, Message: msg, Err: err}
}

func NotFound(err error) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: "resource not found", Err: err}
}

func Internal(err error) *HTTPError {
	return &HTTPError{Status: http.StatusInternalServerError, Message: "internal server error", Err: err}
}

// MapSQLError maps a store failure onto the error taxonomy. Only the
// no-rows condition is told apart.
func MapSQLError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound(err)
	}
	return Internal(err)
}

// MapIntParsingError maps a failed path id parse to a bad request.
func MapIntParsingError(err error) error {
	return BadRequest(fmt.Errorf("invalid id: %w", err))
}

// HandlerFunc is a gin handler that reports failure through its return value.
type HandlerFunc func(c *gin.Context) error

// Handle adapts h to gin. A returned error is written once, here, as a JSON
// body; errors outside the taxonomy become 500.
func Handle(h HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}

		var httpErr *HTTPError
		if !errors.As(err, &httpErr) {
			httpErr = Internal(err)
		}

		if httpErr.Status >= http.StatusInternalServerError {
			zerolog.Ctx(c.Request.Context()).Error().Err(httpErr.Err).
				Str("path", c.Request.URL.Path).
				Msg("request failed")
		}

		_ = c.Error(err)
		c.AbortWithStatusJSON(httpErr.Status, gin.H{"error": httpErr.Message})
	}
}
