package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatusCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, NewNotFoundError("Product").Code)
	assert.Equal(t, "Product not found", NewNotFoundError("Product").Message)
	assert.Equal(t, http.StatusConflict, NewConflictError("taken").Code)
	assert.Equal(t, http.StatusBadRequest, NewBadRequestError("bad").Code)
	assert.Equal(t, http.StatusUnprocessableEntity, NewUnprocessableError("invalid").Code)
	assert.Equal(t, http.StatusServiceUnavailable, NewServiceUnavailableError("down").Code)
}

func TestGetAppErrorUnwraps(t *testing.T) {
	wrapped := fmt.Errorf("context: %w", ErrUnauthorized)
	assert.Equal(t, http.StatusUnauthorized, GetAppError(wrapped).Code)
}

func TestGetAppErrorDefaultsToInternal(t *testing.T) {
	appErr := GetAppError(errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "boom", appErr.Message)
}
