package domain

// TerminalSpec характеристики компьютера терминала
// Для ядра бронирования это непрозрачные данные, показываются клиенту как есть
type TerminalSpec struct {
	Brand        *string
	CPU          *string
	GraphicsCard *string
	RAM          *string
	Storage      *string
}

// Terminal игровой терминал зала
type Terminal struct {
	ID            int64
	TableLocation string // метка физического места, например "12A"
	Spec          TerminalSpec
}

// TerminalWithStatus терминал вместе со статусом слота, покрывающего
// текущее время; используется для обзорного списка терминалов
type TerminalWithStatus struct {
	Terminal      Terminal
	CurrentStatus SlotStatus
}
