package clear_selection

import (
	"net/http"

	"github.com/m04kA/GameNet-ReservationService/internal/api/handlers"
	"github.com/m04kA/GameNet-ReservationService/internal/api/middleware"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
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

// Handle DELETE /api/v1/selection
// Сброс выбора не меняет каталог: слоты окна никогда не резервировались
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /selection - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	h.service.Clear(r.Context(), customerID)

	h.logger.Info("DELETE /selection - Selection cleared: customer_id=%s", customerID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
