package extend_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameNet-ReservationService/internal/api/handlers"
	"github.com/m04kA/GameNet-ReservationService/internal/api/middleware"
	"github.com/m04kA/GameNet-ReservationService/internal/service/selection"
)

const (
	msgMissingUserID  = "отсутствует ID пользователя"
	msgNoSelection    = "нет активного выбора"
	msgNoFurtherSlots = "нет доступных смежных слотов для продления"
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

// Handle POST /api/v1/selection/extend
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /selection/extend - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Extend(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrNoSelection):
			h.logger.Warn("POST /selection/extend - No active selection: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgNoSelection)

		case errors.Is(err, selection.ErrNoFurtherSlots):
			h.logger.Warn("POST /selection/extend - No further slots: customer_id=%s", customerID)
			handlers.RespondError(w, http.StatusConflict, msgNoFurtherSlots)

		default:
			h.logger.Error("POST /selection/extend - Failed to extend selection: customer_id=%s, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selection/extend - Selection extended: customer_id=%s, duration=%d",
		customerID, result.DurationHours)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
