package get_salon_timings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonMS-BookingService/internal/api/handlers"
	"github.com/m04kA/SalonMS-BookingService/internal/service/salonconfig"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
)

type Handler struct {
	service SalonConfigService
	logger  Logger
}

func NewHandler(service SalonConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/timings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/timings - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	result, err := h.service.GetTimings(r.Context(), salonID)
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/timings - Invalid input: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgInvalidSalonID)

		default:
			h.logger.Error("GET /salons/{id}/timings - Failed to get timings: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/timings - Timings retrieved: salon_id=%d", salonID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
