package shrink_selection

import (
	"errors"
	"net/http"

	"github.com/m04kA/GameNet-ReservationService/internal/api/handlers"
	"github.com/m04kA/GameNet-ReservationService/internal/api/middleware"
	"github.com/m04kA/GameNet-ReservationService/internal/service/selection"
)

const (
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNoSelection     = "нет активного выбора"
	msgMinimumDuration = "окно бронирования не может быть короче одного слота"
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

// Handle POST /api/v1/selection/shrink
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /selection/shrink - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.Shrink(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, selection.ErrNoSelection):
			h.logger.Warn("POST /selection/shrink - No active selection: customer_id=%s", customerID)
			handlers.RespondNotFound(w, msgNoSelection)

		case errors.Is(err, selection.ErrMinimumDuration):
			h.logger.Warn("POST /selection/shrink - Minimum duration reached: customer_id=%s", customerID)
			handlers.RespondError(w, http.StatusConflict, msgMinimumDuration)

		default:
			h.logger.Error("POST /selection/shrink - Failed to shrink selection: customer_id=%s, error=%v",
				customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /selection/shrink - Selection shrunk: customer_id=%s, duration=%d",
		customerID, result.DurationHours)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
