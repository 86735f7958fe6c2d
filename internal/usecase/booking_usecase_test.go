package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"techflow_billing/internal/domain/booking"
	"techflow_billing/internal/domain/catalog"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/domain/validation"
	"techflow_billing/internal/usecase/interfaces"
	mock_interfaces "techflow_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var bookingNow = time.Date(2026, time.October, 16, 10, 0, 0, 0, time.UTC)

func newTestBookingUseCase(submitter interfaces.IBookingSubmitter, notifier interfaces.IBookingNotifier) *BookingUseCase {
	uc := NewBookingUseCase(catalog.Default(), submitter, notifier, time.UTC)
	uc.now = func() time.Time { return bookingNow }
	return uc
}

func validContact() booking.Contact {
	return booking.Contact{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Phone:           "647-572-8321",
		ServiceLocation: "12 Queen St",
	}
}

// driveToReview walks a fresh session through steps 1 to 3.
func driveToReview(t *testing.T, uc *BookingUseCase) string {
	t.Helper()
	ctx := context.Background()
	v, _ := uc.Start(ctx)
	id := v.SessionID

	steps := []func() (BookingView, error){
		func() (BookingView, error) { return uc.SelectService(ctx, id, "ssd-upgrade", "same-day") },
		func() (BookingView, error) { return uc.Next(ctx, id) },
		func() (BookingView, error) { return uc.SelectDate(ctx, id, bookingNow.AddDate(0, 0, 1)) },
		func() (BookingView, error) { return uc.SelectTime(ctx, id, "14:00") },
		func() (BookingView, error) { return uc.Next(ctx, id) },
		func() (BookingView, error) { return uc.UpdateContact(ctx, id, validContact()) },
		func() (BookingView, error) { return uc.Next(ctx, id) },
	}
	for i, step := range steps {
		if _, err := step(); err != nil {
			t.Fatalf("step %d: unexpected error: %v", i, err)
		}
	}
	return id
}

func TestBookingUseCase_Flow(t *testing.T) {
	ctx := context.Background()
	uc := newTestBookingUseCase(nil, nil)

	v, err := uc.Start(ctx)
	if err != nil || v.SessionID == "" || v.State.Step != booking.StepService {
		t.Fatalf("unexpected start view=%+v err=%v", v, err)
	}
	if v.CanAdvance || v.Estimate != nil {
		t.Fatalf("fresh session should not advance or price anything: %+v", v)
	}

	t.Run("next is blocked until a service is picked", func(t *testing.T) {
		_, err := uc.Next(ctx, v.SessionID)
		errs, ok := validation.AsErrors(err)
		if !ok || errs[0].Field != "service_id" {
			t.Fatalf("expected service_id error, got %v", err)
		}
	})

	t.Run("service selection prices the quote", func(t *testing.T) {
		got, err := uc.SelectService(ctx, v.SessionID, "ssd-upgrade", "same-day")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Estimate == nil || got.Estimate.Price.String() != "247.50" || !got.CanAdvance {
			t.Fatalf("unexpected view: %+v", got)
		}
	})

	t.Run("rejected change still returns the view", func(t *testing.T) {
		got, err := uc.SelectService(ctx, v.SessionID, "quantum-repair", "")
		if _, ok := validation.AsErrors(err); !ok {
			t.Fatalf("expected validation error, got %v", err)
		}
		if got.State.ServiceID != "ssd-upgrade" {
			t.Fatalf("expected earlier selection kept, got %q", got.State.ServiceID)
		}
	})

	t.Run("invalid urgency leaves the service unchanged", func(t *testing.T) {
		got, err := uc.SelectService(ctx, v.SessionID, "data-recovery", "rush")
		errs, ok := validation.AsErrors(err)
		if !ok || len(errs) != 1 || errs[0].Field != "urgency" {
			t.Fatalf("expected urgency error, got %v", err)
		}
		if got.State.ServiceID != "ssd-upgrade" || got.State.Urgency != catalog.TierSameDay {
			t.Fatalf("expected earlier selection kept, got %q/%q", got.State.ServiceID, got.State.Urgency)
		}
	})

	t.Run("wrong step", func(t *testing.T) {
		if _, err := uc.SelectTime(ctx, v.SessionID, "09:00"); !errors.Is(err, booking.ErrWrongStep) {
			t.Fatalf("expected ErrWrongStep, got %v", err)
		}
		if _, err := uc.Back(ctx, v.SessionID); !errors.Is(err, booking.ErrNoPreviousStep) {
			t.Fatalf("expected ErrNoPreviousStep, got %v", err)
		}
	})

	t.Run("schedule step with fallback time input", func(t *testing.T) {
		if _, err := uc.Next(ctx, v.SessionID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := uc.SelectDate(ctx, v.SessionID, bookingNow)
		if err != nil || len(got.Slots) != 12 {
			t.Fatalf("expected 12 slots for today, got %d err=%v", len(got.Slots), err)
		}
		got, err = uc.ReportRenderedSlots(ctx, v.SessionID, 0)
		if err != nil || got.State.TimeInput != booking.TimeInputFallback {
			t.Fatalf("expected fallback input, got %v err=%v", got.State.TimeInput, err)
		}
		got, err = uc.SelectTime(ctx, v.SessionID, "13:45")
		if err != nil || got.State.Time != "13:45" || !got.CanAdvance {
			t.Fatalf("unexpected view %+v err=%v", got.State, err)
		}
	})

	t.Run("back keeps data and reset clears it", func(t *testing.T) {
		got, err := uc.Back(ctx, v.SessionID)
		if err != nil || got.State.Step != booking.StepService || got.State.Time != "13:45" {
			t.Fatalf("unexpected view %+v err=%v", got.State, err)
		}
		got, err = uc.Reset(ctx, v.SessionID)
		if err != nil || got.State.ServiceID != "" || got.State.Step != booking.StepService {
			t.Fatalf("expected cleared state, got %+v", got.State)
		}
	})

	t.Run("review only on the last step", func(t *testing.T) {
		if _, err := uc.Review(ctx, v.SessionID); !errors.Is(err, booking.ErrNotInReview) {
			t.Fatalf("expected ErrNotInReview, got %v", err)
		}
	})
}

func TestBookingUseCase_UnknownSession(t *testing.T) {
	ctx := context.Background()
	uc := newTestBookingUseCase(nil, nil)

	if _, err := uc.Get(ctx, " "); !errors.Is(err, ErrInvalidSessionID) {
		t.Fatalf("expected ErrInvalidSessionID, got %v", err)
	}
	if _, err := uc.Get(ctx, "missing"); !errors.Is(err, ErrBookingSessionNotFound) {
		t.Fatalf("expected ErrBookingSessionNotFound, got %v", err)
	}
}

func TestBookingUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("delivers, notifies and closes the session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		submitter := mock_interfaces.NewMockIBookingSubmitter(ctrl)
		notifier := mock_interfaces.NewMockIBookingNotifier(ctrl)
		uc := newTestBookingUseCase(submitter, notifier)
		id := driveToReview(t, uc)

		review, err := uc.Review(ctx, id)
		if err != nil || review.Name != "Ada Lovelace" || review.Description != "No additional details provided." {
			t.Fatalf("unexpected review %+v err=%v", review, err)
		}

		var delivered entities.BookingSubmission
		submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.BookingSubmission) error {
				delivered = s
				return nil
			},
		)
		notifier.EXPECT().NotifyBooking(gomock.Any(), gomock.Any()).Return(errors.New("slack down"))

		sub, err := uc.Submit(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(sub.Reference, "BK-") || sub.Reference != delivered.Reference {
			t.Fatalf("unexpected reference %q delivered=%q", sub.Reference, delivered.Reference)
		}
		if sub.FormType != entities.FormTypeBooking || sub.Review.PriceLabel != "$247.50" || sub.Contact.Email != "ada@example.com" {
			t.Fatalf("unexpected submission %+v", sub)
		}
		if _, err := uc.Get(ctx, id); !errors.Is(err, ErrBookingSessionNotFound) {
			t.Fatalf("expected session closed, got %v", err)
		}
	})

	t.Run("failed delivery keeps the session for retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		submitter := mock_interfaces.NewMockIBookingSubmitter(ctrl)
		uc := newTestBookingUseCase(submitter, nil)
		id := driveToReview(t, uc)

		var refs []string
		record := func(_ context.Context, s entities.BookingSubmission) { refs = append(refs, s.Reference) }
		gomock.InOrder(
			submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Do(record).Return(errors.New("broker down")),
			submitter.EXPECT().Submit(gomock.Any(), gomock.Any()).Do(record).Return(nil),
		)

		if _, err := uc.Submit(ctx, id); !errors.Is(err, ErrBookingDeliveryFailed) {
			t.Fatalf("expected ErrBookingDeliveryFailed, got %v", err)
		}
		v, err := uc.Get(ctx, id)
		if err != nil || v.State.Step != booking.StepReview {
			t.Fatalf("expected session still in review, got %+v err=%v", v.State, err)
		}
		sub, err := uc.Submit(ctx, id)
		if err != nil {
			t.Fatalf("unexpected error on retry: %v", err)
		}
		if len(refs) != 2 || refs[0] != refs[1] || sub.Reference != refs[0] {
			t.Fatalf("expected one reference across retries, got %v returned=%s", refs, sub.Reference)
		}
	})

	t.Run("no submitter configured", func(t *testing.T) {
		uc := newTestBookingUseCase(nil, nil)
		id := driveToReview(t, uc)
		if _, err := uc.Submit(ctx, id); !errors.Is(err, ErrBookingDeliveryFailed) {
			t.Fatalf("expected ErrBookingDeliveryFailed, got %v", err)
		}
	})

	t.Run("not in review", func(t *testing.T) {
		uc := newTestBookingUseCase(nil, nil)
		v, _ := uc.Start(ctx)
		if _, err := uc.Submit(ctx, v.SessionID); !errors.Is(err, booking.ErrNotInReview) {
			t.Fatalf("expected ErrNotInReview, got %v", err)
		}
	})
}

func TestBookingUseCase_PrunesIdleSessions(t *testing.T) {
	ctx := context.Background()
	uc := newTestBookingUseCase(nil, nil)

	old, _ := uc.Start(ctx)
	uc.now = func() time.Time { return bookingNow.Add(3 * time.Hour) }
	_, _ = uc.Start(ctx)

	if _, err := uc.Get(ctx, old.SessionID); !errors.Is(err, ErrBookingSessionNotFound) {
		t.Fatalf("expected idle session pruned, got %v", err)
	}
}
