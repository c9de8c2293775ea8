package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameNet-ReservationService/internal/api/handlers"
	"github.com/m04kA/GameNet-ReservationService/internal/api/middleware"
	"github.com/m04kA/GameNet-ReservationService/internal/service/selection"
	confirmBooking "github.com/m04kA/GameNet-ReservationService/internal/usecase/confirm_booking"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgNoSelection      = "нет активного выбора для подтверждения"
	msgSlotConflict     = "выбранные слоты уже заняты, обновите витрину и выберите окно заново"
	msgTerminalNotFound = "терминал не найден"
	msgSlotNotInCatalog = "слот отсутствует в расписании терминала"
	msgInvalidSelection = "некорректное окно бронирования"
)

type Handler struct {
	useCase   ConfirmBookingUseCase
	selection SelectionService
	logger    Logger
}

func NewHandler(useCase ConfirmBookingUseCase, selection SelectionService, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		selection: selection,
		logger:    logger,
	}
}

// Handle POST /api/v1/bookings
// Подтверждает текущее окно выбора клиента: атомарно занимает слоты
// и создает бронирование. При успехе выбор сбрасывается.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Окно берется из сохраненного выбора, а не из тела запроса:
	// клиент подтверждает ровно то, что видел на странице подтверждения
	sel, err := h.selection.Get(r.Context(), customerID)
	if err != nil {
		if errors.Is(err, selection.ErrNoSelection) {
			h.logger.Warn("POST /bookings - No active selection: customer_id=%s", customerID)
			handlers.RespondBadRequest(w, msgNoSelection)
			return
		}
		h.logger.Error("POST /bookings - Failed to get selection: customer_id=%s, error=%v", customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		CustomerID: customerID,
		TerminalID: sel.TerminalID,
		SlotIDs:    sel.SlotIDs,
		HourlyRate: sel.HourlyRate,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: customer_id=%s, terminal_id=%d", customerID, sel.TerminalID)
			respondConflict(w, err)

		case errors.Is(err, confirmBooking.ErrTerminalNotFound):
			h.logger.Warn("POST /bookings - Terminal not found: terminal_id=%d", sel.TerminalID)
			handlers.RespondNotFound(w, msgTerminalNotFound)

		case errors.Is(err, confirmBooking.ErrSlotNotInCatalog):
			h.logger.Warn("POST /bookings - Slot not in catalog: customer_id=%s, terminal_id=%d", customerID, sel.TerminalID)
			handlers.RespondBadRequest(w, msgSlotNotInCatalog)

		case errors.Is(err, confirmBooking.ErrEmptySelection),
			errors.Is(err, confirmBooking.ErrNotContiguous),
			errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid selection: customer_id=%s, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		default:
			h.logger.Error("POST /bookings - Failed to confirm booking: customer_id=%s, terminal_id=%d, error=%v",
				customerID, sel.TerminalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Бронирование создано, выбор больше не нужен
	h.selection.Clear(r.Context(), customerID)

	h.logger.Info("POST /bookings - Booking confirmed: booking_id=%s, customer_id=%s, terminal_id=%d, total=%d",
		result.ID, customerID, result.TerminalID, result.TotalCost)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondConflict отдает 409 со списком спорных слотов, если он известен
func respondConflict(w http.ResponseWriter, err error) {
	var conflict *confirmBooking.SlotConflictError
	if errors.As(err, &conflict) {
		handlers.RespondJSON(w, http.StatusConflict, ConflictResponse{
			Error:   msgSlotConflict,
			SlotIDs: conflict.SlotIDs,
		})
		return
	}
	handlers.RespondError(w, http.StatusConflict, msgSlotConflict)
}
