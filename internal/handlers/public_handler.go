package handlers

import (
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/staysharp/booking-api/internal/audit"
	domain "github.com/staysharp/booking-api/internal/domain/appointment"
	"github.com/staysharp/booking-api/internal/dto"
	"github.com/staysharp/booking-api/internal/httperr"
	"github.com/staysharp/booking-api/internal/httpresp"
	ucAppointment "github.com/staysharp/booking-api/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	catalog      CatalogReader
	availability AvailabilityFinder
	booker       AppointmentBooker
	audit        AuditDispatcher
	logger       *slog.Logger
}

func NewPublicHandler(
	catalog CatalogReader,
	availability AvailabilityFinder,
	booker AppointmentBooker,
	audit AuditDispatcher,
	logger *slog.Logger,
) *PublicHandler {
	return &PublicHandler{
		catalog:      catalog,
		availability: availability,
		booker:       booker,
		audit:        audit,
		logger:       logger,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	LocationID    uint   `json:"locationId"`
	BarberID      uint   `json:"barberId"`
	ServiceID     uint   `json:"serviceId"`
	StartTS       string `json:"startTs"` // RFC3339 with offset or Z
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	CustomerEmail string `json:"customerEmail"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListLocations(c *gin.Context) {
	locations, err := h.catalog.ListLocations(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list locations failed", err)
		return
	}
	httpresp.OK(c, locations)
}

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "list services failed", err)
		return
	}
	httpresp.OK(c, services)
}

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	locationID, ok := parseID(c.Query("locationId"))
	if !ok {
		httperr.BadRequest(c, "invalid_location_id", "locationId must be a positive integer")
		return
	}

	barbers, err := h.catalog.ListBarbers(c.Request.Context(), locationID)
	if err != nil {
		respondError(c, h.logger, "list barbers failed", err)
		return
	}
	httpresp.OK(c, barbers)
}

func (h *PublicHandler) GetWorkingHours(c *gin.Context) {
	barberID, ok := parseID(c.Param("id"))
	if !ok || barberID == 0 {
		httperr.BadRequest(c, "invalid_barber_id", "barber id must be a positive integer")
		return
	}

	days, err := h.catalog.GetWorkingHours(c.Request.Context(), barberID)
	if err != nil {
		respondError(c, h.logger, "get working hours failed", err)
		return
	}
	httpresp.List(c, days)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	locationID, okL := parseID(c.Query("locationId"))
	barberID, okB := parseID(c.Query("barberId"))
	serviceID, okS := parseID(c.Query("serviceId"))
	date := strings.TrimSpace(c.Query("date"))

	if !okL || !okB || !okS || locationID == 0 || barberID == 0 || serviceID == 0 || date == "" {
		httperr.BadRequest(c, "missing_params", "locationId, barberId, serviceId and date are required")
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		LocationID: locationID,
		BarberID:   barberID,
		ServiceID:  serviceID,
		Date:       date,
	})
	if err != nil {
		respondError(c, h.logger, "availability failed", err)
		return
	}

	httpresp.OK(c, out)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, domain.ErrMalformed)
		return
	}

	ap, err := h.booker.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		LocationID:    req.LocationID,
		BarberID:      req.BarberID,
		ServiceID:     req.ServiceID,
		StartTS:       req.StartTS,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
	})
	if err != nil {
		if httperr.Is(err, httperr.KindConflict) {
			h.audit.Dispatch(audit.Event{
				LocationID: req.LocationID,
				Action:     audit.ActionAppointmentConflict,
				Entity:     "appointment",
				Metadata: map[string]any{
					"barber_id":  req.BarberID,
					"service_id": req.ServiceID,
					"start":      req.StartTS,
				},
			})
		}
		respondError(c, h.logger, "book appointment failed", err)
		return
	}

	h.audit.Dispatch(audit.Event{
		LocationID: ap.LocationID,
		Action:     audit.ActionAppointmentCreated,
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata: map[string]any{
			"barber_id": ap.BarberID,
			"start":     ap.StartTS,
			"end":       ap.EndTS,
		},
	})

	httpresp.Created(c, dto.BookingDTO{
		ID:      ap.ID,
		StartTS: ap.StartTS,
		EndTS:   ap.EndTS,
		Status:  ap.Status,
	})
}
