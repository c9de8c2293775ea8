package confirm_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/GameNet-ReservationService/pkg/types"
)

// Request модель запроса на подтверждение бронирования
type Request struct {
	CustomerID uuid.UUID // ID клиента (из внешней аутентификации)
	TerminalID int64     // ID терминала
	SlotIDs    []int64   // Слоты окна в хронологическом порядке
	HourlyRate int64     // Ставка за час, в рупиях
}

// Response модель ответа с подтвержденным бронированием
type Response struct {
	ID            uuid.UUID        // ID созданного бронирования
	TerminalID    int64            // ID терминала
	CustomerID    uuid.UUID        // ID клиента
	SlotIDs       []int64          // Слоты окна
	StartTime     types.TimeString // Начало окна
	EndTime       types.TimeString // Конец окна
	DurationHours int              // Длительность в часах
	HourlyRate    int64            // Ставка за час
	TotalCost     int64            // Итоговая стоимость
	Status        string           // Статус бронирования

	CreatedAt time.Time // Время создания
}
