package booking

import (
	"testing"
	"time"

	"techflow_billing/internal/domain/catalog"
	"techflow_billing/internal/domain/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var toronto = func() *time.Location {
	loc, err := time.LoadLocation("America/Toronto")
	if err != nil {
		return time.FixedZone("EST", -5*60*60)
	}
	return loc
}()

func fixedNow() time.Time {
	return time.Date(2026, time.October, 16, 15, 30, 0, 0, toronto)
}

func newFlow() *Flow {
	return NewFlow(catalog.Default(), WithClock(fixedNow), WithLocation(toronto))
}

func validContact() Contact {
	return Contact{
		FirstName:       "Ada",
		LastName:        "Lovelace",
		Email:           "ada@example.com",
		Phone:           "647-572-8321",
		ServiceLocation: "Home",
	}
}

func advanceToReview(t *testing.T, f *Flow) {
	t.Helper()
	require.NoError(t, f.SelectService("ssd-upgrade"))
	require.NoError(t, f.Next())
	require.NoError(t, f.SelectDate(time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, f.SelectTime("10:00"))
	require.NoError(t, f.Next())
	errs, err := f.UpdateContact(validContact())
	require.NoError(t, err)
	require.Empty(t, errs)
	require.NoError(t, f.Next())
	require.Equal(t, StepReview, f.Step())
}

func TestFlow_StartsAtServiceStep(t *testing.T) {
	f := newFlow()
	assert.Equal(t, StepService, f.Step())
	assert.Equal(t, catalog.TierStandard, f.State().Urgency)
	assert.False(t, f.CanAdvance())

	err := f.Next()
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, "service_id", errs[0].Field)
	assert.Equal(t, StepService, f.Step())
}

func TestFlow_SelectServiceReplacesPrior(t *testing.T) {
	f := newFlow()
	require.NoError(t, f.SelectService("diagnostic"))
	require.NoError(t, f.SelectService("ram-upgrade"))
	assert.Equal(t, "ram-upgrade", f.State().ServiceID)

	err := f.SelectService("teleport")
	_, ok := validation.AsErrors(err)
	assert.True(t, ok)
	assert.Equal(t, "ram-upgrade", f.State().ServiceID)

	assert.Error(t, f.SetUrgency("overnight"))
	require.NoError(t, f.SetUrgency(catalog.TierSameDay))
}

func TestFlow_SelectServiceWithUrgencyIsAllOrNothing(t *testing.T) {
	f := newFlow()
	require.NoError(t, f.SelectServiceWithUrgency("diagnostic", catalog.TierSameDay))

	err := f.SelectServiceWithUrgency("data-recovery", "rush")
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "urgency", errs[0].Field)
	assert.Equal(t, "diagnostic", f.State().ServiceID)
	assert.Equal(t, catalog.TierSameDay, f.State().Urgency)

	err = f.SelectServiceWithUrgency("teleport", "rush")
	errs, _ = validation.AsErrors(err)
	assert.Len(t, errs, 2)

	require.NoError(t, f.SelectServiceWithUrgency("data-recovery", catalog.TierStandard))
	assert.Equal(t, "data-recovery", f.State().ServiceID)
	assert.Equal(t, catalog.TierStandard, f.State().Urgency)
}

func TestFlow_CannotReachContactWithoutSchedule(t *testing.T) {
	f := newFlow()
	require.NoError(t, f.SelectService("diagnostic"))
	require.NoError(t, f.Next())

	require.Error(t, f.Next())
	assert.Equal(t, StepSchedule, f.Step())

	require.NoError(t, f.SelectDate(time.Date(2026, time.October, 16, 0, 0, 0, 0, time.UTC)))
	err := f.Next()
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	require.Len(t, errs, 1)
	assert.Equal(t, "time", errs[0].Field)

	require.NoError(t, f.SelectTime("9:00"))
	require.NoError(t, f.Next())
	assert.Equal(t, StepContact, f.Step())
}

func TestFlow_RejectsPastDate(t *testing.T) {
	f := newFlow()
	require.NoError(t, f.SelectService("diagnostic"))
	require.NoError(t, f.Next())

	err := f.SelectDate(time.Date(2026, time.October, 15, 0, 0, 0, 0, time.UTC))
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, validation.CodePastDate, errs[0].Code)
	assert.True(t, f.State().Date.IsZero())
}

func TestFlow_FieldsBelongToTheirStep(t *testing.T) {
	f := newFlow()
	assert.ErrorIs(t, f.SelectDate(fixedNow()), ErrWrongStep)
	assert.ErrorIs(t, f.SelectTime("10:00"), ErrWrongStep)
	_, err := f.UpdateContact(validContact())
	assert.ErrorIs(t, err, ErrWrongStep)

	require.NoError(t, f.SelectService("diagnostic"))
	require.NoError(t, f.Next())
	assert.ErrorIs(t, f.SelectService("ssd-upgrade"), ErrWrongStep)
	assert.Equal(t, "diagnostic", f.State().ServiceID)
}

func TestFlow_TimeSlots(t *testing.T) {
	f := newFlow()
	require.NoError(t, f.SelectService("diagnostic"))
	require.NoError(t, f.Next())
	assert.Empty(t, f.AvailableSlots())

	require.NoError(t, f.SelectDate(time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)))
	slots := f.AvailableSlots()
	require.Len(t, slots, 12)
	assert.Equal(t, Slot{Value: "09:00", Label: "9:00 AM"}, slots[0])
	assert.Equal(t, Slot{Value: "20:00", Label: "8:00 PM"}, slots[11])

	assert.Error(t, f.SelectTime("09:30"))
	assert.Error(t, f.SelectTime("21:00"))
	assert.Error(t, f.SelectTime("noon"))
	require.NoError(t, f.SelectTime("14:00"))

	t.Run("changing the date clears the time", func(t *testing.T) {
		require.NoError(t, f.SelectDate(time.Date(2026, time.October, 18, 0, 0, 0, 0, time.UTC)))
		assert.Empty(t, f.State().Time)
	})

	t.Run("re-selecting the same date keeps the time", func(t *testing.T) {
		require.NoError(t, f.SelectTime("15:00"))
		require.NoError(t, f.SelectDate(time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)))
		assert.Equal(t, "15:00", f.State().Time)
	})
}

func TestFlow_FallbackTimeInput(t *testing.T) {
	f := newFlow()
	require.NoError(t, f.SelectService("diagnostic"))
	require.NoError(t, f.Next())
	require.NoError(t, f.SelectDate(time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC)))

	mode, err := f.ReportRenderedSlots(0)
	require.NoError(t, err)
	assert.Equal(t, TimeInputFallback, mode)

	require.NoError(t, f.SelectTime("9:45"))
	assert.Equal(t, "09:45", f.State().Time)
	assert.Error(t, f.SelectTime("08:59"))
	assert.Error(t, f.SelectTime("20:01"))
	require.NoError(t, f.Next())

	mode, err = f.ReportRenderedSlots(12)
	assert.ErrorIs(t, err, ErrWrongStep)
	assert.Equal(t, TimeInputFallback, mode)
}

func TestFlow_ContactValidatedContinuously(t *testing.T) {
	f := newFlow()
	require.NoError(t, f.SelectService("diagnostic"))
	require.NoError(t, f.Next())
	require.NoError(t, f.SelectDate(fixedNow()))
	require.NoError(t, f.SelectTime("20:00"))
	require.NoError(t, f.Next())

	errs, err := f.UpdateContact(Contact{FirstName: "Ada", Email: "ada@", Phone: "x"})
	require.NoError(t, err)
	fields := map[string]string{}
	for _, e := range errs {
		fields[e.Field] = e.Code
	}
	assert.Equal(t, map[string]string{
		"last_name":        validation.CodeRequired,
		"email":            validation.CodeInvalidEmail,
		"phone":            validation.CodeInvalidPhone,
		"service_location": validation.CodeRequired,
	}, fields)
	assert.False(t, f.CanAdvance())

	errs, err = f.UpdateContact(validContact())
	require.NoError(t, err)
	assert.Empty(t, errs)
	assert.True(t, f.CanAdvance())
}

func TestFlow_BackKeepsState(t *testing.T) {
	f := newFlow()
	advanceToReview(t, f)
	before := f.State()

	require.NoError(t, f.Back())
	assert.Equal(t, StepContact, f.Step())
	assert.Equal(t, before.Contact, f.State().Contact)

	require.NoError(t, f.Back())
	assert.Equal(t, StepSchedule, f.Step())
	assert.Equal(t, "10:00", f.State().Time)
	assert.True(t, before.Date.Equal(f.State().Date))

	require.NoError(t, f.Back())
	assert.Equal(t, "ssd-upgrade", f.State().ServiceID)
	assert.ErrorIs(t, f.Back(), ErrNoPreviousStep)

	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	require.NoError(t, f.Next())
	assert.Equal(t, StepReview, f.Step())
	assert.ErrorIs(t, f.Next(), ErrNoNextStep)
}

func TestFlow_BackFromIncompleteStepIsAllowed(t *testing.T) {
	f := newFlow()
	require.NoError(t, f.SelectService("diagnostic"))
	require.NoError(t, f.Next())
	require.NoError(t, f.Back())
	assert.Equal(t, StepService, f.Step())
}

func TestFlow_Review(t *testing.T) {
	f := newFlow()
	_, err := f.Review()
	assert.ErrorIs(t, err, ErrNotInReview)

	advanceToReview(t, f)
	r, err := f.Review()
	require.NoError(t, err)

	assert.Equal(t, "SSD Upgrade", r.ServiceName)
	assert.Equal(t, "$225.00", r.PriceLabel)
	assert.Equal(t, "2026-10-20", r.Date)
	assert.Equal(t, "Tuesday, October 20, 2026", r.DateLabel)
	assert.Equal(t, "10:00 AM", r.TimeLabel)
	assert.Equal(t, "Standard", r.UrgencyLabel)
	assert.Equal(t, "Ada Lovelace", r.Name)
	assert.Equal(t, "(647) 572-8321", r.Phone)
	assert.Equal(t, "No additional details provided.", r.Description)

	sub, err := f.Submission()
	require.NoError(t, err)
	assert.Equal(t, r, sub)
}

func TestFlow_SubmissionRechecksDate(t *testing.T) {
	now := fixedNow()
	f := NewFlow(catalog.Default(), WithClock(func() time.Time { return now }), WithLocation(toronto))
	require.NoError(t, f.SelectService("diagnostic"))
	require.NoError(t, f.Next())
	require.NoError(t, f.SelectDate(now))
	require.NoError(t, f.SelectTime("11:00"))
	require.NoError(t, f.Next())
	_, _ = f.UpdateContact(validContact())
	require.NoError(t, f.Next())

	now = now.Add(48 * time.Hour)
	_, err := f.Submission()
	errs, ok := validation.AsErrors(err)
	require.True(t, ok)
	assert.Equal(t, validation.CodePastDate, errs[0].Code)
}

func TestFlow_Reset(t *testing.T) {
	f := newFlow()
	advanceToReview(t, f)
	f.Reset()
	st := f.State()
	assert.Equal(t, StepService, st.Step)
	assert.Empty(t, st.ServiceID)
	assert.True(t, st.Date.IsZero())
	assert.Equal(t, Contact{}, st.Contact)
}
