package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	usecaseErrors "github.com/workhub-team/workhub/internal/usecase/errors"
)

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/workspaces/ws-1/meetings/m-1", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandleError_SentinelMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"meeting not found", usecaseErrors.ErrMeetingNotFound, http.StatusNotFound},
		{"revision not found", usecaseErrors.ErrRevisionNotFound, http.StatusNotFound},
		{"entity not found", usecaseErrors.ErrEntityNotFound, http.StatusNotFound},
		{"meeting locked", usecaseErrors.ErrMeetingLocked, http.StatusForbidden},
		{"missing identity", usecaseErrors.ErrMissingIdentity, http.StatusUnauthorized},
		{"not a member", usecaseErrors.ErrNotMember, http.StatusForbidden},
		{"editor required", usecaseErrors.ErrEditorRequired, http.StatusForbidden},
		{"admin required", usecaseErrors.ErrAdminRequired, http.StatusForbidden},
		{"empty update", usecaseErrors.ErrEmptyUpdate, http.StatusBadRequest},
		{"invalid payload", usecaseErrors.ErrInvalidPayload, http.StatusBadRequest},
		{"sync failed", usecaseErrors.ErrSyncFailed, http.StatusInternalServerError},
		{"revision write failed", usecaseErrors.ErrRevisionWrite, http.StatusInternalServerError},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext(t)
			err := HandleError(nil, c, tt.err)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestHandleError_WrappedSentinel(t *testing.T) {
	c, rec := newTestContext(t)

	wrapped := errors.Join(usecaseErrors.ErrMeetingLocked, errors.New("meeting m-1"))
	assert.NoError(t, HandleError(nil, c, wrapped))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandleSuccess_Envelope(t *testing.T) {
	c, rec := newTestContext(t)

	assert.NoError(t, HandleSuccess(nil, c, map[string]string{"hello": "world"}))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"success"`)
	assert.Contains(t, rec.Body.String(), `"hello":"world"`)
}
