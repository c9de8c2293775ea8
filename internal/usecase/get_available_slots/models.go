package get_available_slots

import (
	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

// Request модель запроса на получение доступных слотов терминала
type Request struct {
	TerminalID int64 // ID терминала
}

// Response модель ответа со списком доступных слотов
type Response struct {
	TerminalID    int64   // ID терминала
	TableLocation string  // Метка места терминала
	Brand         *string // Бренд компьютера (для сводки на странице подтверждения)
	CPU           *string // Процессор
	GraphicsCard  *string // Видеокарта
	RAM           *string // Оперативная память
	Storage       *string // Накопитель
	Slots         []Slot  // Доступные слоты по возрастанию времени начала
}

// Slot модель доступного временного слота
type Slot struct {
	SlotID    int64            // ID слота
	StartTime types.TimeString // Время начала, например "10:00"
	EndTime   types.TimeString // Время окончания
}
