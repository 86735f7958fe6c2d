package messaging

import (
	"context"
	"encoding/json"
	"log"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/usecase/interfaces"
	"time"

	"github.com/segmentio/kafka-go"
)

const EventTypeBookingSubmitted = "booking.submitted"

// BookingEvent is the envelope written to the bookings topic.
type BookingEvent struct {
	ID         string                     `json:"id"`
	Type       string                     `json:"type"`
	Reference  string                     `json:"reference"`
	Submission entities.BookingSubmission `json:"submission"`
	Timestamp  time.Time                  `json:"timestamp"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaBookingPublisher delivers confirmed bookings to Kafka, keyed by reference
// so retries of one booking land on the same partition.
type KafkaBookingPublisher struct {
	writer messageWriter
	topic  string
	now    func() time.Time
}

var _ interfaces.IBookingSubmitter = (*KafkaBookingPublisher)(nil)

func NewKafkaBookingPublisher(brokers []string, topic string) *KafkaBookingPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireAll,
	}
	return newKafkaBookingPublisher(w, topic)
}

func newKafkaBookingPublisher(w messageWriter, topic string) *KafkaBookingPublisher {
	return &KafkaBookingPublisher{writer: w, topic: topic, now: time.Now}
}

func (p *KafkaBookingPublisher) Submit(ctx context.Context, s entities.BookingSubmission) error {
	event := BookingEvent{
		ID:         "evt_" + s.Reference,
		Type:       EventTypeBookingSubmitted,
		Reference:  s.Reference,
		Submission: s,
		Timestamp:  p.now().UTC(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(s.Reference),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "form_type", Value: []byte(s.FormType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("[booking][kafka] publish failed topic=%s reference=%s err=%v", p.topic, s.Reference, err)
		return err
	}
	log.Printf("[booking][kafka] published topic=%s reference=%s", p.topic, s.Reference)
	return nil
}

func (p *KafkaBookingPublisher) Close() error {
	return p.writer.Close()
}
