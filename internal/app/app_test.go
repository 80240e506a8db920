package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ClassBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-ClassBookingService/internal/config"
	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
	autoAssignUC "github.com/m04kA/SMC-ClassBookingService/internal/usecase/auto_assign"
	"github.com/m04kA/SMC-ClassBookingService/pkg/clock"
	"github.com/m04kA/SMC-ClassBookingService/pkg/logger"
)

var now = time.Date(2026, 10, 14, 18, 0, 0, 0, time.UTC)

type client struct {
	t *testing.T
	h http.Handler
}

func (c client) do(method, path, userID string, role domain.Role, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
		req.Header.Set(middleware.HeaderUserRole, string(role))
	}
	rec := httptest.NewRecorder()
	c.h.ServeHTTP(rec, req)

	var decoded map[string]interface{}
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") && rec.Body.Len() > 0 {
		require.NoError(c.t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	}
	return rec, decoded
}

func newTestApp(t *testing.T, cfg *config.Config) *App {
	t.Helper()
	a, err := New(context.Background(), cfg, logger.NewNop(), WithClock(clock.NewFixed(now)))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	// профили заводятся тем же маршрутом, что использует сервис идентификации
	c := client{t: t, h: a.Handler()}
	for _, body := range []string{
		`{"id":"t1","role":"teacher","firstName":"Anna","lastName":"Petrova","email":"anna@example.com"}`,
		`{"id":"s1","role":"student","firstName":"Ivan","lastName":"Ivanov","email":"ivan@example.com"}`,
		`{"id":"s2","role":"student","firstName":"Oleg","lastName":"Sidorov","email":"oleg@example.com"}`,
		`{"id":"s3","role":"student","firstName":"Maria","lastName":"Orlova","email":"maria@example.com"}`,
	} {
		rec, _ := c.do(http.MethodPost, "/api/v1/internal/users", "", "", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}
	return a
}

func TestBookingFlow(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = true
	a := newTestApp(t, cfg)
	c := client{t: t, h: a.Handler()}

	// публикация окна 10:00-12:00 по одному месту
	rec, body := c.do(http.MethodPost, "/api/v1/teachers/availability", "t1", domain.RoleTeacher,
		`{"subject":"math","startTime":"10:00","endTime":"12:00","capacityPerSlot":1}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, float64(2), body["slotsCount"])
	assert.Equal(t, "2026-10-15", body["date"])

	rec, body = c.do(http.MethodPost, "/api/v1/teachers/availability", "t1", domain.RoleTeacher,
		`{"subject":"math","startTime":"11:00","endTime":"13:00"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "overlap", body["code"])

	rec, body = c.do(http.MethodGet, "/api/v1/slots/available", "", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	teachers := body["teachers"].([]interface{})
	require.Len(t, teachers, 1)
	assert.Equal(t, "Anna Petrova", teachers[0].(map[string]interface{})["teacherName"])

	// 10:30 попадает в слот 10:00-11:00
	rec, body = c.do(http.MethodPost, "/api/v1/students/bookings", "s1", domain.RoleStudent,
		`{"teacherId":"t1","startTime":"10:30"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "10:00", body["startTime"])
	assert.Equal(t, "11:00", body["endTime"])
	bookingID := body["id"].(string)

	rec, body = c.do(http.MethodPost, "/api/v1/students/bookings", "s2", domain.RoleStudent,
		`{"teacherId":"t1","startTime":"10:00"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "slot_full", body["code"])
	assert.Equal(t, float64(1), body["capacity"])

	rec, body = c.do(http.MethodPost, "/api/v1/students/bookings", "s1", domain.RoleStudent,
		`{"teacherId":"t1","startTime":"11:00"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "duplicate_booking", body["code"])

	rec, body = c.do(http.MethodPost, "/api/v1/students/bookings", "s2", domain.RoleStudent,
		`{"teacherId":"t1","startTime":"12:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "out_of_range", body["code"])

	rec, body = c.do(http.MethodPost, "/api/v1/students/bookings", "s2", domain.RoleStudent,
		`{"teacherId":"t9","startTime":"10:00"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "no_availability", body["code"])

	rec, body = c.do(http.MethodPost, "/api/v1/students/bookings", "s2", domain.RoleStudent,
		`{"teacherId":"t1","startTime":"25:00"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid_input", body["code"])

	rec, body = c.do(http.MethodGet, "/api/v1/teachers/reservations", "t1", domain.RoleTeacher, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total"])

	// автоназначение: s2 получает 11:00, для s3 мест нет
	rec, body = c.do(http.MethodPost, "/api/v1/internal/sweeps", "", "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(1), body["assigned"])
	assert.Equal(t, []interface{}{"s3"}, body["unassigned"])

	rec, body = c.do(http.MethodGet, "/api/v1/students/bookings", "s1", domain.RoleStudent, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), body["total"])

	rec, body = c.do(http.MethodGet, "/api/v1/students/bookings/"+bookingID, "s1", domain.RoleStudent, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10:00", body["startTime"])

	rec, _ = c.do(http.MethodGet, "/api/v1/students/bookings/"+bookingID, "s2", domain.RoleStudent, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, body = c.do(http.MethodPost, "/api/v1/payments/bookings/"+bookingID, "", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["feesPaid"])
	assert.NotEmpty(t, body["paymentTimestamp"])

	rec, _ = c.do(http.MethodDelete, "/api/v1/students/bookings/"+bookingID, "s2", domain.RoleStudent, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = c.do(http.MethodDelete, "/api/v1/students/bookings/"+bookingID, "s1", domain.RoleStudent, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = c.do(http.MethodDelete, "/api/v1/students/bookings/"+bookingID, "s1", domain.RoleStudent, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// освободившееся место доступно s3
	rec, _ = c.do(http.MethodPost, "/api/v1/students/bookings", "s3", domain.RoleStudent,
		`{"teacherId":"t1","startTime":"10:00"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = c.do(http.MethodGet, "/metrics", "", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "bookings_created_total")

	rec, body = c.do(http.MethodGet, "/health", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])
}

func TestRoleChecks(t *testing.T) {
	a := newTestApp(t, config.Default())
	c := client{t: t, h: a.Handler()}

	rec, body := c.do(http.MethodPost, "/api/v1/students/bookings", "", "", `{}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", body["code"])

	rec, _ = c.do(http.MethodPost, "/api/v1/students/bookings", "t1", domain.RoleTeacher, `{"teacherId":"t1","startTime":"10:00"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = c.do(http.MethodPost, "/api/v1/teachers/availability", "s1", domain.RoleStudent, `{}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSweepWithRedisLock(t *testing.T) {
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Redis.Address = mr.Addr()
	a := newTestApp(t, cfg)

	ctx := context.Background()
	tomorrow := clock.Tomorrow(now)
	_, err := a.storage.availabilities.Create(ctx, &domain.Availability{
		TeacherID:       "t1",
		Subject:         "math",
		TargetDate:      tomorrow,
		WindowStart:     tomorrow.Add(10 * time.Hour),
		WindowEnd:       tomorrow.Add(12 * time.Hour),
		CapacityPerSlot: 2,
	})
	require.NoError(t, err)

	// чужой прогон держит блокировку
	lockKey := cfg.App.Name + ":" + autoAssignUC.LockKey(tomorrow)
	require.NoError(t, mr.Set(lockKey, "other"))

	result, err := a.Sweeper().Execute(ctx)
	require.NoError(t, err)
	assert.True(t, result.Skipped)

	mr.Del(lockKey)
	result, err = a.Sweeper().Execute(ctx)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 3, result.Assigned)
	assert.Empty(t, result.Unassigned)
	assert.False(t, mr.Exists(lockKey), "lock must be released after the run")

	rec, body := client{t: t, h: a.Handler()}.do(http.MethodGet, "/health", "", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["checks"].(map[string]interface{})["redis"])
}

func TestSeedDemoDataOnStart(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.SeedDemoData = true
	a, err := New(context.Background(), cfg, logger.NewNop(), WithClock(clock.NewFixed(now)))
	require.NoError(t, err)
	t.Cleanup(a.Close)

	result, err := a.Sweeper().Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 15, result.Assigned)
	assert.Empty(t, result.Unassigned)

	// повторный seed не дублирует пользователей и окна
	res, err := a.Seed(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res.Teachers+res.Students+res.Windows)

	rec, _ := client{t: t, h: a.Handler()}.do(http.MethodPost, "/api/v1/internal/users", "", "",
		`{"id":"student-1","role":"student","firstName":"Dup","email":"dup@school.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestNewFailsOnUnreachableRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.Redis.Address = addr
	_, err := New(context.Background(), cfg, logger.NewNop())
	assert.Error(t, err)
}
