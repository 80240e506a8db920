package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateStudentDay возвращается при нарушении уникальности (student_id, booking_date)
	ErrDuplicateStudentDay = errors.New("booking.repository: student already booked for the date")

	// ErrUnknownUser возвращается, когда student_id или teacher_id не ссылается на пользователя
	ErrUnknownUser = errors.New("booking.repository: unknown student or teacher")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
