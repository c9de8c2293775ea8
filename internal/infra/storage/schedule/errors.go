package schedule

import "errors"

var (
	// ErrAssignmentNotFound возвращается, когда пара (терминал, слот) не найдена
	ErrAssignmentNotFound = errors.New("schedule.repository: slot assignment not found")

	// ErrStatusConflict возвращается, когда compare-and-set не прошел:
	// текущий статус слота уже не совпадает с ожидаемым
	ErrStatusConflict = errors.New("schedule.repository: slot status conflict")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус
	ErrInvalidStatus = errors.New("schedule.repository: invalid slot status")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
