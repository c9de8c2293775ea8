package selection

import "errors"

var (
	// ErrNoSelection возвращается, когда у клиента нет активного выбора
	ErrNoSelection = errors.New("selection: no active selection")

	// ErrTerminalNotFound возвращается, когда терминал не найден
	ErrTerminalNotFound = errors.New("selection: terminal not found")

	// ErrSlotNotAvailable возвращается, когда стартовый слот недоступен
	ErrSlotNotAvailable = errors.New("selection: slot is not available")

	// ErrNoFurtherSlots возвращается, когда продлить окно нечем:
	// следующий смежный слот занят или расписание закончилось
	ErrNoFurtherSlots = errors.New("selection: no further consecutive slots available")

	// ErrMinimumDuration возвращается при попытке сократить окно ниже одного слота
	ErrMinimumDuration = errors.New("selection: booking window must cover at least one slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("selection: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("selection: internal error")
)
