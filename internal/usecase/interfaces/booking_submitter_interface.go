package interfaces

import (
	"context"
	"techflow_billing/internal/domain/entities"
)

// IBookingSubmitter delivers a confirmed booking. A failure keeps the flow open so
// the customer can retry.
type IBookingSubmitter interface {
	Submit(ctx context.Context, s entities.BookingSubmission) error
}

// IBookingNotifier is a best-effort notification about a delivered booking.
type IBookingNotifier interface {
	NotifyBooking(ctx context.Context, s entities.BookingSubmission) error
}
