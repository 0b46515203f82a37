package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tiozaobarbearia/agenda-api/internal/httperr"
	"github.com/tiozaobarbearia/agenda-api/internal/httpresp"
	"github.com/tiozaobarbearia/agenda-api/internal/metrics"
	"github.com/tiozaobarbearia/agenda-api/internal/middleware"
	ucBooking "github.com/tiozaobarbearia/agenda-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	commitUC       *ucBooking.CommitBooking
	cancelUC       *ucBooking.CancelAppointment
	listUC         *ucBooking.ListByCustomer
	availabilityUC *ucBooking.GetAvailability
	metrics        *metrics.BookingMetrics
}

func NewAppointmentHandler(
	commitUC *ucBooking.CommitBooking,
	cancelUC *ucBooking.CancelAppointment,
	listUC *ucBooking.ListByCustomer,
	availabilityUC *ucBooking.GetAvailability,
	m *metrics.BookingMetrics,
) *AppointmentHandler {
	return &AppointmentHandler{
		commitUC:       commitUC,
		cancelUC:       cancelUC,
		listUC:         listUC,
		availabilityUC: availabilityUC,
		metrics:        m,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// date and slot carry no binding tags: an unset date or slot is a booking
// validation outcome (missing_date / missing_slot), not a malformed request.
type CreateAppointmentRequest struct {
	Date    string `json:"date"`
	Slot    string `json:"slot"`
	Service string `json:"service"`
	Notes   string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.commitUC.Execute(c.Request.Context(), ucBooking.CommitBookingInput{
		Customer: username,
		Date:     req.Date,
		Slot:     req.Slot,
		Service:  req.Service,
		Notes:    req.Notes,
	})
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			h.metrics.ObserveBooking(code)
		} else {
			h.metrics.ObserveBooking("error")
		}
		respondError(c, err)
		return
	}

	h.metrics.ObserveBooking("committed")
	httpresp.Created(c, ap)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date := c.Query("date")

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ======================================================
// LIST MINE
// ======================================================

func (h *AppointmentHandler) ListMine(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)

	out, err := h.listUC.Execute(c.Request.Context(), username)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	username := c.MustGet(middleware.ContextUsername).(string)
	id := c.Param("id")

	ap, err := h.cancelUC.Execute(c.Request.Context(), username, id)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
