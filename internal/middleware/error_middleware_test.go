package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/pkg/apperrors"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func handleError(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w, resp
}

func TestHandleAPIErrorValidation(t *testing.T) {
	w, resp := handleError(t, apperrors.NewValidationError("Name and code are required"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Name and code are required", resp.Message)
}

func TestHandleAPIErrorConflict(t *testing.T) {
	w, resp := handleError(t, apperrors.NewConflictError("Course with this code already exists"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Course with this code already exists", resp.Message)
}

func TestHandleAPIErrorInvalidCredentials(t *testing.T) {
	w, resp := handleError(t, apperrors.ErrInvalidCredentials)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid email or password", resp.Message)
}

func TestHandleAPIErrorNotFound(t *testing.T) {
	w, resp := handleError(t, apperrors.NewResourceNotFoundError("Student not found"))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Student not found", resp.Message)
}

func TestHandleAPIErrorUnknownIsGeneric(t *testing.T) {
	SetDebugErrors(false)

	w, resp := handleError(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", resp.Message)
	assert.Empty(t, resp.Error)
}

func TestHandleAPIErrorUnknownCarriesDetailInDebugMode(t *testing.T) {
	SetDebugErrors(true)
	defer SetDebugErrors(false)

	w, resp := handleError(t, errors.New("pq: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", resp.Message)
	assert.Equal(t, "pq: connection refused", resp.Error)
}
