package messaging

import (
	"context"
	"encoding/json"
	"log"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/usecase/interfaces"
)

// LogBookingSubmitter writes bookings to the service log. It is the submitter
// used when no Kafka brokers are configured.
type LogBookingSubmitter struct{}

var _ interfaces.IBookingSubmitter = LogBookingSubmitter{}

func (LogBookingSubmitter) Submit(_ context.Context, s entities.BookingSubmission) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	log.Printf("[booking][log] submitted reference=%s payload=%s", s.Reference, b)
	return nil
}
