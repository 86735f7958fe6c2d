package handlers

import (
	"errors"
	"log"
	"net/http"
	request "techflow_billing/internal/adapter/http/dto/request"
	response "techflow_billing/internal/adapter/http/dto/response"
	"techflow_billing/internal/domain/booking"
	"techflow_billing/internal/usecase"
	"techflow_billing/pkg"
	"time"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the four-step booking flow. Every mutating route returns
// the updated flow so the client can render the current step from it.
type BookingHandler struct {
	usecase usecase.IBookingUseCase
	loc     *time.Location
}

func NewBookingHandler(uc usecase.IBookingUseCase, loc *time.Location) *BookingHandler {
	return &BookingHandler{usecase: uc, loc: loc}
}

// StartBooking godoc
// @Summary      Start a booking session
// @Tags         bookings
// @Produce      json
// @Success      201  {object}  response.BookingViewResponse
// @Router       /bookings [post]
func (h *BookingHandler) StartBooking(c *gin.Context) {
	v, err := h.usecase.Start(c.Request.Context())
	if err != nil {
		writeError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBookingView(v))
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	h.respond(c, func(id string) (usecase.BookingView, error) {
		return h.usecase.Get(c.Request.Context(), id)
	})
}

// SelectService godoc
// @Summary      Step 1: choose the service and urgency
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Session id"
// @Param        body  body      request.SelectServiceRequest  true  "Selection"
// @Success      200   {object}  response.BookingViewResponse
// @Failure      409   {object}  pkg.HTTPError
// @Failure      422   {object}  pkg.HTTPError
// @Router       /bookings/{id}/service [put]
func (h *BookingHandler) SelectService(c *gin.Context) {
	var payload request.SelectServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(id string) (usecase.BookingView, error) {
		return h.usecase.SelectService(c.Request.Context(), id, payload.ServiceID, payload.Urgency)
	})
}

func (h *BookingHandler) SelectDate(c *gin.Context) {
	var payload request.SelectDateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	date, err := payload.Parse(h.loc)
	if err != nil {
		writeError(c, errInvalidDate)
		return
	}
	h.respond(c, func(id string) (usecase.BookingView, error) {
		return h.usecase.SelectDate(c.Request.Context(), id, date)
	})
}

// ReportRenderedSlots records how many time slots the client could show. Zero
// switches step 2 to a single time field.
func (h *BookingHandler) ReportRenderedSlots(c *gin.Context) {
	var payload request.RenderedSlotsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(id string) (usecase.BookingView, error) {
		return h.usecase.ReportRenderedSlots(c.Request.Context(), id, *payload.Visible)
	})
}

func (h *BookingHandler) SelectTime(c *gin.Context) {
	var payload request.SelectTimeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(id string) (usecase.BookingView, error) {
		return h.usecase.SelectTime(c.Request.Context(), id, payload.Time)
	})
}

// UpdateContact stores the contact fields as typed. Invalid fields are reported
// in step_errors with a 200, so partial input can be saved while typing.
func (h *BookingHandler) UpdateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	h.respond(c, func(id string) (usecase.BookingView, error) {
		return h.usecase.UpdateContact(c.Request.Context(), id, payload.ToContact())
	})
}

func (h *BookingHandler) Next(c *gin.Context) {
	h.respond(c, func(id string) (usecase.BookingView, error) {
		return h.usecase.Next(c.Request.Context(), id)
	})
}

func (h *BookingHandler) Back(c *gin.Context) {
	h.respond(c, func(id string) (usecase.BookingView, error) {
		return h.usecase.Back(c.Request.Context(), id)
	})
}

func (h *BookingHandler) Reset(c *gin.Context) {
	h.respond(c, func(id string) (usecase.BookingView, error) {
		return h.usecase.Reset(c.Request.Context(), id)
	})
}

// GetReview godoc
// @Summary      Step 4: booking summary
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      200  {object}  booking.Review
// @Failure      409  {object}  pkg.HTTPError
// @Router       /bookings/{id}/review [get]
func (h *BookingHandler) GetReview(c *gin.Context) {
	review, err := h.usecase.Review(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, review)
}

// Submit godoc
// @Summary      Submit the reviewed booking
// @Description  On delivery failure the session is kept so the customer can retry.
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Session id"
// @Success      201  {object}  response.BookingSubmissionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /bookings/{id}/submit [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	id := c.Param("id")
	sub, err := h.usecase.Submit(c.Request.Context(), id)
	if err != nil {
		log.Printf("[booking][handler] submit failed session_id=%s err=%v", id, err)
		writeError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromBookingSubmission(sub))
}

func (h *BookingHandler) respond(c *gin.Context, fn func(id string) (usecase.BookingView, error)) {
	v, err := fn(c.Param("id"))
	if err != nil {
		writeError(c, mapBookingError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromBookingView(v))
}

func mapBookingError(err error) *pkg.AppError {
	if appErr, ok := mapCommonError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_SESSION_ID", "Invalid booking session id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingSessionNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking session not found or expired", http.StatusNotFound)
	case errors.Is(err, booking.ErrWrongStep):
		return pkg.NewDomainErrorSimple("WRONG_STEP", "This field cannot be changed on the current step", http.StatusConflict)
	case errors.Is(err, booking.ErrNoNextStep):
		return pkg.NewDomainErrorSimple("NO_NEXT_STEP", "Already on the last step", http.StatusConflict)
	case errors.Is(err, booking.ErrNoPreviousStep):
		return pkg.NewDomainErrorSimple("NO_PREVIOUS_STEP", "Already on the first step", http.StatusConflict)
	case errors.Is(err, booking.ErrNotInReview):
		return pkg.NewDomainErrorSimple("NOT_IN_REVIEW", "Review is only available on the last step", http.StatusConflict)
	case errors.Is(err, usecase.ErrBookingDeliveryFailed):
		return pkg.NewDomainError("BOOKING_DELIVERY_FAILED", "Your booking could not be sent, please try again", err, http.StatusBadGateway)
	default:
		return internalError(err)
	}
}
