package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"techflow_billing/internal/domain/booking"
	"techflow_billing/internal/domain/catalog"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/domain/quote"
	"techflow_billing/internal/domain/validation"
	"techflow_billing/internal/infrastructure/metrics"
	"techflow_billing/internal/usecase/interfaces"
	"time"

	"github.com/google/uuid"
	"github.com/rs/xid"
)

const bookingSessionTTL = 2 * time.Hour

var (
	ErrBookingSessionNotFound = errors.New("booking session not found")
	ErrInvalidSessionID       = errors.New("invalid booking session id")
	ErrBookingDeliveryFailed  = errors.New("booking could not be delivered")
)

// BookingView is what a client renders for the current step.
type BookingView struct {
	SessionID  string
	State      booking.State
	Slots      []booking.Slot
	StepErrors validation.Errors
	CanAdvance bool
	Estimate   *quote.Estimate
}

// IBookingUseCase drives server-held booking flows, one per session.
type IBookingUseCase interface {
	Start(ctx context.Context) (BookingView, error)
	Get(ctx context.Context, sessionID string) (BookingView, error)
	SelectService(ctx context.Context, sessionID, serviceID, urgency string) (BookingView, error)
	SelectDate(ctx context.Context, sessionID string, date time.Time) (BookingView, error)
	ReportRenderedSlots(ctx context.Context, sessionID string, visible int) (BookingView, error)
	SelectTime(ctx context.Context, sessionID, value string) (BookingView, error)
	UpdateContact(ctx context.Context, sessionID string, c booking.Contact) (BookingView, error)
	Next(ctx context.Context, sessionID string) (BookingView, error)
	Back(ctx context.Context, sessionID string) (BookingView, error)
	Reset(ctx context.Context, sessionID string) (BookingView, error)
	Review(ctx context.Context, sessionID string) (booking.Review, error)
	Submit(ctx context.Context, sessionID string) (entities.BookingSubmission, error)
}

type bookingSession struct {
	mu       sync.Mutex
	flow     *booking.Flow
	lastSeen time.Time
	// reference is allocated on the first submit attempt and reused on retries.
	reference string
}

type BookingUseCase struct {
	catalog   *catalog.Catalog
	calc      *quote.Calculator
	submitter interfaces.IBookingSubmitter
	notifier  interfaces.IBookingNotifier
	loc       *time.Location
	now       func() time.Time

	mu       sync.Mutex
	sessions map[string]*bookingSession
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

// NewBookingUseCase wires the flow to its delivery. notifier may be nil.
func NewBookingUseCase(c *catalog.Catalog, submitter interfaces.IBookingSubmitter, notifier interfaces.IBookingNotifier, loc *time.Location) *BookingUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &BookingUseCase{
		catalog:   c,
		calc:      quote.NewCalculator(c),
		submitter: submitter,
		notifier:  notifier,
		loc:       loc,
		now:       time.Now,
		sessions:  map[string]*bookingSession{},
	}
}

func (u *BookingUseCase) Start(_ context.Context) (BookingView, error) {
	id := uuid.NewString()
	flow := booking.NewFlow(u.catalog, booking.WithClock(func() time.Time { return u.now() }), booking.WithLocation(u.loc))
	s := &bookingSession{flow: flow, lastSeen: u.now()}

	u.mu.Lock()
	u.pruneLocked()
	u.sessions[id] = s
	metrics.BookingSessions.Set(float64(len(u.sessions)))
	u.mu.Unlock()

	log.Printf("[booking][usecase] session started session_id=%s", id)
	return u.view(id, flow), nil
}

func (u *BookingUseCase) Get(_ context.Context, sessionID string) (BookingView, error) {
	var v BookingView
	err := u.withFlow(sessionID, func(f *booking.Flow) error {
		v = u.view(sessionID, f)
		return nil
	})
	return v, err
}

// SelectService picks the service and, when urgency is not blank, the tier.
func (u *BookingUseCase) SelectService(_ context.Context, sessionID, serviceID, urgency string) (BookingView, error) {
	return u.mutate(sessionID, func(f *booking.Flow) error {
		if strings.TrimSpace(urgency) == "" {
			return f.SelectService(serviceID)
		}
		return f.SelectServiceWithUrgency(serviceID, catalog.UrgencyTier(strings.ToLower(strings.TrimSpace(urgency))))
	})
}

func (u *BookingUseCase) SelectDate(_ context.Context, sessionID string, date time.Time) (BookingView, error) {
	return u.mutate(sessionID, func(f *booking.Flow) error { return f.SelectDate(date) })
}

func (u *BookingUseCase) ReportRenderedSlots(_ context.Context, sessionID string, visible int) (BookingView, error) {
	return u.mutate(sessionID, func(f *booking.Flow) error {
		mode, err := f.ReportRenderedSlots(visible)
		if err == nil && mode == booking.TimeInputFallback {
			log.Printf("[booking][usecase] no time slots rendered, using time field session_id=%s", sessionID)
		}
		return err
	})
}

func (u *BookingUseCase) SelectTime(_ context.Context, sessionID, value string) (BookingView, error) {
	return u.mutate(sessionID, func(f *booking.Flow) error { return f.SelectTime(value) })
}

// UpdateContact stores the fields even when some are invalid; the view's
// StepErrors lists what is still wrong.
func (u *BookingUseCase) UpdateContact(_ context.Context, sessionID string, c booking.Contact) (BookingView, error) {
	return u.mutate(sessionID, func(f *booking.Flow) error {
		_, err := f.UpdateContact(c)
		return err
	})
}

func (u *BookingUseCase) Next(_ context.Context, sessionID string) (BookingView, error) {
	return u.mutate(sessionID, func(f *booking.Flow) error {
		from := f.Step()
		if err := f.Next(); err != nil {
			return err
		}
		metrics.BookingTransitions.WithLabelValues(from.String(), f.Step().String()).Inc()
		return nil
	})
}

func (u *BookingUseCase) Back(_ context.Context, sessionID string) (BookingView, error) {
	return u.mutate(sessionID, func(f *booking.Flow) error {
		from := f.Step()
		if err := f.Back(); err != nil {
			return err
		}
		metrics.BookingTransitions.WithLabelValues(from.String(), f.Step().String()).Inc()
		return nil
	})
}

func (u *BookingUseCase) Reset(_ context.Context, sessionID string) (BookingView, error) {
	return u.mutate(sessionID, func(f *booking.Flow) error {
		f.Reset()
		return nil
	})
}

func (u *BookingUseCase) Review(_ context.Context, sessionID string) (booking.Review, error) {
	var r booking.Review
	err := u.withFlow(sessionID, func(f *booking.Flow) error {
		var err error
		r, err = f.Review()
		return err
	})
	return r, err
}

// Submit delivers the reviewed booking. On delivery failure the session is kept
// so the customer can retry under the same reference; on success the flow is reset
// and the session closed.
func (u *BookingUseCase) Submit(ctx context.Context, sessionID string) (entities.BookingSubmission, error) {
	var sub entities.BookingSubmission
	err := u.withSession(sessionID, func(s *bookingSession) error {
		f := s.flow
		review, err := f.Submission()
		if err != nil {
			return err
		}
		if s.reference == "" {
			s.reference = "BK-" + strings.ToUpper(xid.New().String())
		}
		sub = entities.BookingSubmission{
			Reference:   s.reference,
			SessionID:   sessionID,
			FormType:    entities.FormTypeBooking,
			SubmittedAt: u.now().UTC(),
			Review:      review,
			Contact:     f.State().Contact,
		}
		if u.submitter == nil {
			return fmt.Errorf("%w: submitter not configured", ErrBookingDeliveryFailed)
		}
		if err := u.submitter.Submit(ctx, sub); err != nil {
			metrics.BookingsSubmitted.WithLabelValues("failed").Inc()
			log.Printf("[booking][usecase] submit failed session_id=%s reference=%s err=%v", sessionID, sub.Reference, err)
			return fmt.Errorf("%w: %v", ErrBookingDeliveryFailed, err)
		}
		f.Reset()
		return nil
	})
	if err != nil {
		return entities.BookingSubmission{}, err
	}

	metrics.BookingsSubmitted.WithLabelValues("delivered").Inc()
	log.Printf("[booking][usecase] submitted session_id=%s reference=%s service_id=%s", sessionID, sub.Reference, sub.Review.ServiceID)

	if u.notifier != nil {
		if err := u.notifier.NotifyBooking(ctx, sub); err != nil {
			log.Printf("[booking][usecase] notify failed reference=%s err=%v", sub.Reference, err)
		}
	}

	u.mu.Lock()
	delete(u.sessions, sessionID)
	metrics.BookingSessions.Set(float64(len(u.sessions)))
	u.mu.Unlock()
	return sub, nil
}

// mutate applies fn and returns the resulting view. The view is returned with the
// error as well so clients can re-render after a rejected change.
func (u *BookingUseCase) mutate(sessionID string, fn func(*booking.Flow) error) (BookingView, error) {
	var v BookingView
	err := u.withFlow(sessionID, func(f *booking.Flow) error {
		err := fn(f)
		v = u.view(sessionID, f)
		return err
	})
	return v, err
}

func (u *BookingUseCase) withFlow(sessionID string, fn func(*booking.Flow) error) error {
	return u.withSession(sessionID, func(s *bookingSession) error { return fn(s.flow) })
}

func (u *BookingUseCase) withSession(sessionID string, fn func(*bookingSession) error) error {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return ErrInvalidSessionID
	}
	u.mu.Lock()
	s, ok := u.sessions[sessionID]
	u.mu.Unlock()
	if !ok {
		return ErrBookingSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = u.now()
	return fn(s)
}

func (u *BookingUseCase) view(sessionID string, f *booking.Flow) BookingView {
	st := f.State()
	v := BookingView{
		SessionID:  sessionID,
		State:      st,
		Slots:      f.AvailableSlots(),
		StepErrors: f.StepErrors(),
		CanAdvance: f.CanAdvance(),
	}
	if st.ServiceID != "" {
		est := u.calc.Estimate(st.ServiceID, st.Urgency)
		v.Estimate = &est
	}
	return v
}

// pruneLocked drops sessions idle longer than bookingSessionTTL. u.mu must be held.
func (u *BookingUseCase) pruneLocked() {
	cutoff := u.now().Add(-bookingSessionTTL)
	for id, s := range u.sessions {
		s.mu.Lock()
		idle := s.lastSeen.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(u.sessions, id)
		}
	}
}
