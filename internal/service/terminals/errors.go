package terminals

import "errors"

var (
	// ErrTerminalNotFound терминал не найден
	ErrTerminalNotFound = errors.New("terminals: terminal not found")

	// ErrInternal внутренняя ошибка сервиса
	ErrInternal = errors.New("terminals: internal error")
)
