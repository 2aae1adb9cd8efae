package update_salon_timings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonMS-BookingService/internal/api/handlers"
	"github.com/m04kA/SalonMS-BookingService/internal/api/middleware"
	"github.com/m04kA/SalonMS-BookingService/internal/service/salonconfig"
	"github.com/m04kA/SalonMS-BookingService/internal/service/salonconfig/models"
)

const (
	msgInvalidSalonID     = "некорректный ID салона"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTimeRange   = "время открытия должно быть раньше времени закрытия"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle PUT /api/v1/salons/{salonId}/timings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /salons/{id}/timings - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /salons/{id}/timings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateTimingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salons/{id}/timings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateTimings(r.Context(), &models.UpdateTimingsRequest{
		UserID:      userID,
		SalonID:     salonID,
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
		WorkingDays: req.WorkingDays,
	})
	if err != nil {
		switch {
		case errors.Is(err, salonconfig.ErrInvalidTimeRange):
			h.logger.Warn("PUT /salons/{id}/timings - Invalid time range: salon_id=%d", salonID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, salonconfig.ErrInvalidInput):
			h.logger.Warn("PUT /salons/{id}/timings - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /salons/{id}/timings - Failed to update timings: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /salons/{id}/timings - Timings updated successfully: salon_id=%d, user_id=%d",
		salonID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
