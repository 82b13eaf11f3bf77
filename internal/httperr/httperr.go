package httperr

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CodeValidation        = "validation_error"
	CodeReferenceNotFound = "reference_not_found"
	CodeConflict          = "conflict"
	CodeNotFound          = "not_found"
	CodeInternal          = "internal_error"

	MsgValidation = "Dados inválidos."
	MsgInternal   = "Erro interno do servidor."
)

type HTTPError struct {
	Code    string       `json:"error_code"`
	Message string       `json:"message"`
	Field   string       `json:"field,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, CodeNotFound, message)
}

func InternalServer(c *gin.Context) {
	Write(c, http.StatusInternalServerError, CodeInternal, MsgInternal)
}

// Respond maps err onto the error taxonomy and writes the matching body.
// Anything outside the taxonomy is logged and answered with a generic 500.
func Respond(c *gin.Context, log *slog.Logger, err error) {
	var (
		ve *ValidationError
		re *ReferenceNotFoundError
		ce *ConflictError
		ne *NotFoundError
	)

	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    CodeValidation,
			Message: MsgValidation,
			Errors:  ve.Fields,
		})

	case errors.As(err, &re):
		c.JSON(http.StatusBadRequest, HTTPError{
			Code:    CodeReferenceNotFound,
			Message: re.Message,
			Field:   re.Field,
		})

	case errors.As(err, &ce):
		c.JSON(http.StatusConflict, HTTPError{
			Code:    CodeConflict,
			Message: ce.Message,
			Field:   ce.Field,
		})

	case errors.As(err, &ne):
		NotFound(c, ne.Message)

	default:
		if log == nil {
			log = slog.Default()
		}
		log.Error("internal error",
			"request_id", c.Writer.Header().Get("X-Request-ID"),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		InternalServer(c)
	}
}
