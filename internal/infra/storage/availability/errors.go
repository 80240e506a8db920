package availability

import "errors"

var (
	// ErrUnknownTeacher возвращается, когда teacher_id не ссылается на пользователя
	ErrUnknownTeacher = errors.New("availability.repository: unknown teacher")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
