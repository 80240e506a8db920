package run_sweep

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	autoAssign "github.com/m04kA/SMC-ClassBookingService/internal/usecase/auto_assign"
	"github.com/m04kA/SMC-ClassBookingService/pkg/logger"
)

type stubSweeper struct {
	result *autoAssign.Result
	err    error
}

func (s stubSweeper) Execute(context.Context) (*autoAssign.Result, error) {
	return s.result, s.err
}

func TestHandle(t *testing.T) {
	date := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	t.Run("completed", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h := NewHandler(stubSweeper{result: &autoAssign.Result{TargetDate: date, Assigned: 2, FreeSeats: 4}}, logger.NewNop())
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/internal/sweeps", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var resp SweepResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "2026-10-15", resp.TargetDate)
		assert.Equal(t, 2, resp.Assigned)
		assert.Equal(t, 4, resp.FreeSeats)
		assert.NotNil(t, resp.Unassigned)
	})

	t.Run("skipped", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h := NewHandler(stubSweeper{result: &autoAssign.Result{TargetDate: date, Skipped: true}}, logger.NewNop())
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/internal/sweeps", nil))
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("store error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		err := errors.Join(domain.ErrStoreUnavailable, errors.New("conn reset"))
		h := NewHandler(stubSweeper{err: err}, logger.NewNop())
		h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/internal/sweeps", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
