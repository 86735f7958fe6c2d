package routes

import (
	"techflow_billing/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathBookings = "/bookings"

func addBookingRoutes(rg *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings)
	{
		bookings.POST("", bookingHandler.StartBooking)
		bookings.GET("/:id", bookingHandler.GetBooking)

		// Steps 1 to 3 edit the flow; each returns the updated state.
		bookings.PUT("/:id/service", bookingHandler.SelectService)
		bookings.PUT("/:id/date", bookingHandler.SelectDate)
		bookings.POST("/:id/slots/rendered", bookingHandler.ReportRenderedSlots)
		bookings.PUT("/:id/time", bookingHandler.SelectTime)
		bookings.PUT("/:id/contact", bookingHandler.UpdateContact)

		bookings.POST("/:id/next", bookingHandler.Next)
		bookings.POST("/:id/back", bookingHandler.Back)
		bookings.POST("/:id/reset", bookingHandler.Reset)

		bookings.GET("/:id/review", bookingHandler.GetReview)
		bookings.POST("/:id/submit", bookingHandler.Submit)
	}
}
