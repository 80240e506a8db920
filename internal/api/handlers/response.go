package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ClassBookingService/internal/domain"
)

// Коды ошибок в теле ответа
const (
	CodeInvalidInput     = "invalid_input"
	CodeNoAvailability   = "no_availability"
	CodeOutOfRange       = "out_of_range"
	CodeSlotFull         = "slot_full"
	CodeDuplicateBooking = "duplicate_booking"
	CodeNotFound         = "not_found"
	CodeForbidden        = "forbidden"
	CodeOverlap          = "overlap"
	CodeAlreadyExists    = "already_exists"
	CodeStoreUnavailable = "store_unavailable"
	CodeUnauthorized     = "unauthorized"
	CodeRateLimited      = "rate_limited"
	CodeInternal         = "internal"
)

const (
	msgInvalidInput     = "некорректные входные данные"
	msgNoAvailability   = "преподаватель не опубликовал расписание на эту дату"
	msgOutOfRange       = "время вне опубликованных окон преподавателя"
	msgSlotFull         = "в слоте нет свободных мест"
	msgDuplicateBooking = "у студента уже есть запись на эту дату"
	msgNotFound         = "не найдено"
	msgForbidden        = "доступ запрещен"
	msgOverlap          = "окно пересекается с уже опубликованным"
	msgAlreadyExists    = "пользователь с таким id или email уже существует"
	msgStoreUnavailable = "хранилище временно недоступно"
	msgInternal         = "внутренняя ошибка сервера"
)

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Capacity *int   `json:"capacity,omitempty"`
}

// RespondJSON отправляет JSON ответ
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// RespondError отправляет ошибку с кодом
func RespondError(w http.ResponseWriter, status int, code, message string) {
	RespondJSON(w, status, ErrorResponse{Code: code, Message: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, CodeInvalidInput, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, CodeNotFound, message)
}

func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, CodeForbidden, message)
}

func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, CodeUnauthorized, message)
}

func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, CodeInternal, msgInternal)
}

// RespondDomainError переводит вид ошибки ядра в HTTP статус. Возвращает отправленный статус
func RespondDomainError(w http.ResponseWriter, err error) int {
	var full *domain.SlotFullError
	if errors.As(err, &full) {
		capacity := full.Capacity
		RespondJSON(w, http.StatusConflict, ErrorResponse{Code: CodeSlotFull, Message: msgSlotFull, Capacity: &capacity})
		return http.StatusConflict
	}

	status, code, message := classify(err)
	RespondError(w, status, code, message)
	return status
}

func classify(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, CodeInvalidInput, msgInvalidInput
	case errors.Is(err, domain.ErrNoAvailability):
		return http.StatusNotFound, CodeNoAvailability, msgNoAvailability
	case errors.Is(err, domain.ErrOutOfRange):
		return http.StatusBadRequest, CodeOutOfRange, msgOutOfRange
	case errors.Is(err, domain.ErrSlotFull):
		return http.StatusConflict, CodeSlotFull, msgSlotFull
	case errors.Is(err, domain.ErrDuplicateBooking):
		return http.StatusConflict, CodeDuplicateBooking, msgDuplicateBooking
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, CodeNotFound, msgNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, CodeForbidden, msgForbidden
	case errors.Is(err, domain.ErrOverlap):
		return http.StatusConflict, CodeOverlap, msgOverlap
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusConflict, CodeAlreadyExists, msgAlreadyExists
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, CodeStoreUnavailable, msgStoreUnavailable
	default:
		return http.StatusInternalServerError, CodeInternal, msgInternal
	}
}

// DecodeJSON декодирует тело запроса
func DecodeJSON(r *http.Request, v interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}
