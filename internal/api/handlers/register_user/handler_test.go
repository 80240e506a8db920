package register_user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-ClassBookingService/internal/infra/storage/memory"
	registerUser "github.com/m04kA/SMC-ClassBookingService/internal/usecase/register_user"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
	"github.com/m04kA/SMC-ClassBookingService/pkg/logger"
)

func newHandler() *Handler {
	now := time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)
	uc := registerUser.NewUseCase(memory.NewStore().Users(), clock.NewFixed(now), logger.NewNop())
	return NewHandler(uc, logger.NewNop())
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/internal/users", strings.NewReader(body)))
	return rec
}

func TestHandle(t *testing.T) {
	h := newHandler()

	rec := post(h, `{"id":"s1","role":"student","firstName":"Ivan","email":"ivan@school.ru"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.ID)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "2026-10-14T18:00:00Z", resp.CreatedAt)

	rec = post(h, `{"id":"s1","role":"student","firstName":"Ivan","email":"other@school.ru"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	var errResp handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
	assert.Equal(t, handlers.CodeAlreadyExists, errResp.Code)
}

func TestHandleBadRequest(t *testing.T) {
	h := newHandler()

	assert.Equal(t, http.StatusBadRequest, post(h, `{"role":`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"role":"student","firstName":"A","email":"a@b.ru","age":20}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"role":"admin","firstName":"A","email":"a@b.ru"}`).Code)
}
