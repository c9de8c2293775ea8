package start_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameNet-ReservationService/internal/api/handlers"
	"github.com/m04kA/GameNet-ReservationService/internal/api/middleware"
	"github.com/m04kA/GameNet-ReservationService/internal/service/selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgTerminalNotFound   = "терминал не найден"
	msgSlotNotAvailable   = "выбранный слот недоступен"
	msgInvalidInput       = "некорректные параметры выбора"
)

type Handler struct {
	service SelectionService
	logger  Logger
}

func NewHandler(service SelectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /selection - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req StartSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Start(r.Context(), customerID, req.TerminalID, req.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrTerminalNotFound):
			h.logger.Warn("POST /selection - Terminal not found: terminal_id=%d", req.TerminalID)
			handlers.RespondNotFound(w, msgTerminalNotFound)

		case errors.Is(err, selection.ErrSlotNotAvailable):
			h.logger.Warn("POST /selection - Slot not available: terminal_id=%d, slot_id=%d", req.TerminalID, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, selection.ErrInvalidInput):
			h.logger.Warn("POST /selection - Invalid input: terminal_id=%d, slot_id=%d", req.TerminalID, req.SlotID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /selection - Failed to start selection: terminal_id=%d, slot_id=%d, error=%v",
				req.TerminalID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selection - Selection started: customer_id=%s, terminal_id=%d, slot_id=%d",
		customerID, req.TerminalID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}
