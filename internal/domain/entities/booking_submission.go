package entities

import (
	"time"

	"techflow_billing/internal/domain/booking"
)

const FormTypeBooking = "booking"

// BookingSubmission is the payload delivered when a customer confirms a booking.
type BookingSubmission struct {
	Reference   string          `json:"reference"`
	SessionID   string          `json:"session_id"`
	FormType    string          `json:"form_type"`
	SubmittedAt time.Time       `json:"submission_date"`
	Review      booking.Review  `json:"review"`
	Contact     booking.Contact `json:"contact"`
}
