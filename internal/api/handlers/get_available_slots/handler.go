package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GameNet-ReservationService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/GameNet-ReservationService/internal/usecase/get_available_slots"
)

const (
	msgInvalidTerminalID = "некорректный ID терминала"
	msgTerminalNotFound  = "терминал не найден"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/terminals/{terminalId}/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	terminalIDStr := vars["terminalId"]

	terminalID, err := strconv.ParseInt(terminalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /terminals/{id}/slots - Invalid terminal ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTerminalID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{TerminalID: terminalID})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrTerminalNotFound):
			h.logger.Warn("GET /terminals/{id}/slots - Terminal not found: terminal_id=%d", terminalID)
			handlers.RespondNotFound(w, msgTerminalNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /terminals/{id}/slots - Invalid input: terminal_id=%d", terminalID)
			handlers.RespondBadRequest(w, msgInvalidTerminalID)

		default:
			h.logger.Error("GET /terminals/{id}/slots - Failed to get slots: terminal_id=%d, error=%v", terminalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /terminals/{id}/slots - Slots retrieved: terminal_id=%d, available=%d",
		terminalID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
