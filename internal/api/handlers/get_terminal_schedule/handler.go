package get_terminal_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/GameNet-ReservationService/internal/api/handlers"
	"github.com/m04kA/GameNet-ReservationService/internal/service/terminals"
)

const (
	msgInvalidTerminalID = "некорректный ID терминала"
	msgTerminalNotFound  = "терминал не найден"
)

type Handler struct {
	service TerminalService
	logger  Logger
}

func NewHandler(service TerminalService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/terminals/{terminalId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	terminalIDStr := vars["terminalId"]

	terminalID, err := strconv.ParseInt(terminalIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /terminals/{id}/schedule - Invalid terminal ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTerminalID)
		return
	}

	result, err := h.service.GetDaySchedule(r.Context(), terminalID)
	if err != nil {
		switch {
		case errors.Is(err, terminals.ErrTerminalNotFound):
			h.logger.Warn("GET /terminals/{id}/schedule - Terminal not found: terminal_id=%d", terminalID)
			handlers.RespondNotFound(w, msgTerminalNotFound)

		default:
			h.logger.Error("GET /terminals/{id}/schedule - Failed to get schedule: terminal_id=%d, error=%v", terminalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /terminals/{id}/schedule - Schedule retrieved: terminal_id=%d, slots=%d",
		terminalID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
