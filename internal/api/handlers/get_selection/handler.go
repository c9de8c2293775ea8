package get_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameNet-ReservationService/internal/api/handlers"
	"github.com/m04kA/GameNet-ReservationService/internal/api/middleware"
	"github.com/m04kA/GameNet-ReservationService/internal/service/selection"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgNoSelection   = "нет активного выбора"
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

// Handle GET /api/v1/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("GET /selection - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Get(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrNoSelection):
			h.logger.Warn("GET /selection - No active selection: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgNoSelection)

		default:
			h.logger.Error("GET /selection - Failed to get selection: customer_id=%s, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
