// internal/handler/handler.go
package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"smartspend/internal/storage"

	val "smartspend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Handler struct {
	store storage.Storage
}

func New(store storage.Storage) *Handler {
	return &Handler{store: store}
}

// respondStorageError maps storage failures onto the API error model.
// Driver errors are logged with detail but the client only ever sees
// an opaque message.
func respondStorageError(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, storage.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	default:
		slog.Error(op+" failed", "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
	}
}

func validateStruct(v any) error {
	if err := val.Validate.Struct(v); err != nil {
		var vErrs validator.ValidationErrors
		if !errors.As(err, &vErrs) {
			return err
		}
		var errs []string
		for _, e := range vErrs {
			errs = append(errs, fieldErrorToString(e))
		}
		return fmt.Errorf("invalid input: %s", strings.Join(errs, "; "))
	}
	return nil
}

func fieldErrorToString(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "notblank":
		return fmt.Sprintf("%s must not be blank", e.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "finite", "gt":
		return fmt.Sprintf("%s must be a positive finite number", e.Field())
	case "txkind":
		return fmt.Sprintf("%s must be expense or income", e.Field())
	case "billingcycle":
		return fmt.Sprintf("%s must be monthly or yearly", e.Field())
	case "mood":
		return fmt.Sprintf("%s is not a recognised mood", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
