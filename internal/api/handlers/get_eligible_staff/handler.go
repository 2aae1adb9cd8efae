package get_eligible_staff

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SalonMS-BookingService/internal/api/handlers"
	getEligibleStaff "github.com/m04kA/SalonMS-BookingService/internal/usecase/get_eligible_staff"
)

const (
	msgInvalidSalonID = "некорректный ID салона"
	msgSuperseded     = "запрос устарел, пришёл более новый"
)

type Handler struct {
	useCase GetEligibleStaffUseCase
	logger  Logger
}

func NewHandler(useCase GetEligibleStaffUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/eligible-staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	salonID, err := strconv.ParseInt(vars["salonId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/eligible-staff - Invalid salon ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSalonID)
		return
	}

	req := parseQuery(salonID, r.URL.Query())

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getEligibleStaff.ErrSuperseded):
			// Устаревший ответ не рендерится - клиент уже ждёт более новый
			h.logger.Info("GET /salons/{id}/eligible-staff - Superseded: salon_id=%d", salonID)
			handlers.RespondError(w, http.StatusConflict, msgSuperseded)

		case errors.Is(err, getEligibleStaff.ErrInvalidInput):
			h.logger.Warn("GET /salons/{id}/eligible-staff - Invalid input: salon_id=%d, error=%v", salonID, err)
			handlers.RespondBadRequest(w, msgInvalidSalonID)

		default:
			h.logger.Error("GET /salons/{id}/eligible-staff - Failed to get staff: salon_id=%d, error=%v", salonID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /salons/{id}/eligible-staff - Staff retrieved: salon_id=%d, count=%d",
		salonID, len(result.Staff))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
