package handlers

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/staysharp/booking-api/internal/httperr"
	"github.com/staysharp/booking-api/internal/httpresp"
	ucAppointment "github.com/staysharp/booking-api/internal/usecase/appointment"
)

type AdminHandler struct {
	lister AppointmentLister
	logger *slog.Logger
}

func NewAdminHandler(lister AppointmentLister, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{lister: lister, logger: logger}
}

// ListAppointments returns appointments newest first, optionally for one
// day and one location.
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	locationID, ok := parseID(c.Query("locationId"))
	if !ok {
		httperr.BadRequest(c, "invalid_location_id", "locationId must be a positive integer")
		return
	}

	limit, ok := parseID(c.DefaultQuery("limit", "200"))
	if !ok {
		httperr.BadRequest(c, "invalid_limit", "limit must be a positive integer")
		return
	}

	list, err := h.lister.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		LocationID: locationID,
		Date:       c.Query("date"),
		Limit:      int(limit),
	})
	if err != nil {
		respondError(c, h.logger, "list appointments failed", err)
		return
	}

	httpresp.OK(c, list)
}
