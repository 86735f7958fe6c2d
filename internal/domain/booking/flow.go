// Package booking is the four-step service booking flow: service, date and time,
// contact details, then review and submit.
//
// The flow only moves one step at a time. Forward moves are gated on the current
// step's validation; backward moves are always allowed and keep every field.
package booking

import (
	"errors"
	"strings"
	"time"

	"techflow_billing/internal/domain/catalog"
	"techflow_billing/internal/domain/quote"
	"techflow_billing/internal/domain/validation"
)

type Step int

const (
	StepService  Step = 1
	StepSchedule Step = 2
	StepContact  Step = 3
	StepReview   Step = 4
)

func (s Step) String() string {
	switch s {
	case StepService:
		return "service"
	case StepSchedule:
		return "schedule"
	case StepContact:
		return "contact"
	case StepReview:
		return "review"
	}
	return "unknown"
}

var (
	ErrWrongStep      = errors.New("field is not editable on the current step")
	ErrNoNextStep     = errors.New("already on the last step")
	ErrNoPreviousStep = errors.New("already on the first step")
	ErrNotInReview    = errors.New("review is only available on the last step")
)

type Contact struct {
	FirstName          string `json:"first_name" validate:"required" label:"First name"`
	LastName           string `json:"last_name" validate:"required" label:"Last name"`
	Email              string `json:"email" validate:"required,contact_email" label:"Email"`
	Phone              string `json:"phone" validate:"required,contact_phone" label:"Phone"`
	ServiceLocation    string `json:"service_location" validate:"required" label:"Service location"`
	ProblemDescription string `json:"problem_description"`
}

func (c Contact) trimmed() Contact {
	return Contact{
		FirstName:          strings.TrimSpace(c.FirstName),
		LastName:           strings.TrimSpace(c.LastName),
		Email:              strings.TrimSpace(c.Email),
		Phone:              strings.TrimSpace(c.Phone),
		ServiceLocation:    strings.TrimSpace(c.ServiceLocation),
		ProblemDescription: strings.TrimSpace(c.ProblemDescription),
	}
}

// State is a snapshot of everything the flow has collected.
type State struct {
	Step      Step
	ServiceID string
	Urgency   catalog.UrgencyTier
	Date      time.Time
	Time      string
	TimeInput TimeInputMode
	Contact   Contact
}

type Option func(*Flow)

// WithClock replaces time.Now, which decides what "today" is.
func WithClock(now func() time.Time) Option {
	return func(f *Flow) { f.now = now }
}

// WithLocation sets the business time zone dates are compared in.
func WithLocation(loc *time.Location) Option {
	return func(f *Flow) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// Flow owns one booking's state. It is not safe for concurrent use.
type Flow struct {
	catalog *catalog.Catalog
	calc    *quote.Calculator
	now     func() time.Time
	loc     *time.Location
	state   State
}

func NewFlow(c *catalog.Catalog, opts ...Option) *Flow {
	f := &Flow{
		catalog: c,
		calc:    quote.NewCalculator(c),
		now:     time.Now,
		loc:     time.Local,
	}
	for _, o := range opts {
		o(f)
	}
	f.Reset()
	return f
}

// Reset discards all collected data and returns to step 1.
func (f *Flow) Reset() {
	f.state = State{Step: StepService, Urgency: catalog.TierStandard, TimeInput: TimeInputSlots}
}

func (f *Flow) State() State { return f.state }

func (f *Flow) Step() Step { return f.state.Step }

// SelectService replaces any earlier selection.
func (f *Flow) SelectService(serviceID string) error {
	if f.state.Step != StepService {
		return ErrWrongStep
	}
	id := strings.TrimSpace(serviceID)
	if _, ok := f.catalog.Lookup(id); !ok {
		return validation.Errors{{Field: "service_id", Code: validation.CodeInvalid, Message: "Please select a service from the list"}}
	}
	f.state.ServiceID = id
	return nil
}

// SelectServiceWithUrgency sets both fields of step 1, or neither when either is invalid.
func (f *Flow) SelectServiceWithUrgency(serviceID string, tier catalog.UrgencyTier) error {
	if f.state.Step != StepService {
		return ErrWrongStep
	}
	var errs validation.Errors
	id := strings.TrimSpace(serviceID)
	if _, ok := f.catalog.Lookup(id); !ok {
		errs = append(errs, validation.Error{Field: "service_id", Code: validation.CodeInvalid, Message: "Please select a service from the list"})
	}
	if !f.catalog.KnownTier(tier) {
		errs = append(errs, validation.Error{Field: "urgency", Code: validation.CodeInvalid, Message: "Please select a valid urgency"})
	}
	if len(errs) > 0 {
		return errs
	}
	f.state.ServiceID = id
	f.state.Urgency = tier
	return nil
}

func (f *Flow) SetUrgency(tier catalog.UrgencyTier) error {
	if f.state.Step != StepService {
		return ErrWrongStep
	}
	if !f.catalog.KnownTier(tier) {
		return validation.Errors{{Field: "urgency", Code: validation.CodeInvalid, Message: "Please select a valid urgency"}}
	}
	f.state.Urgency = tier
	return nil
}

// SelectDate keeps only the calendar day of d. Picking a different day clears the
// chosen time and restores the slot grid.
func (f *Flow) SelectDate(d time.Time) error {
	if f.state.Step != StepSchedule {
		return ErrWrongStep
	}
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, f.loc)
	if day.Before(f.today()) {
		return validation.Errors{{Field: "date", Code: validation.CodePastDate, Message: "Please select today or a future date"}}
	}
	if !day.Equal(f.state.Date) {
		f.state.Time = ""
		f.state.TimeInput = TimeInputSlots
	}
	f.state.Date = day
	return nil
}

// AvailableSlots is empty until a date is chosen.
func (f *Flow) AvailableSlots() []Slot {
	if f.state.Date.IsZero() {
		return nil
	}
	return DailySlots()
}

// ReportRenderedSlots records how many slot controls the client could show. Zero
// switches step 2 to the single time field so the step stays usable.
func (f *Flow) ReportRenderedSlots(visible int) (TimeInputMode, error) {
	if f.state.Step != StepSchedule {
		return f.state.TimeInput, ErrWrongStep
	}
	if visible <= 0 {
		f.state.TimeInput = TimeInputFallback
	} else {
		f.state.TimeInput = TimeInputSlots
	}
	return f.state.TimeInput, nil
}

// SelectTime takes one of the daily slots, or in fallback mode any HH:MM within
// business hours.
func (f *Flow) SelectTime(value string) error {
	if f.state.Step != StepSchedule {
		return ErrWrongStep
	}
	h, m, ok := parseClock(value)
	if !ok {
		return validation.Errors{{Field: "time", Code: validation.CodeInvalid, Message: "Please select a valid time"}}
	}
	normalized := clockValue(h, m)
	switch f.state.TimeInput {
	case TimeInputFallback:
		if !withinBusinessHours(h, m) {
			return validation.Errors{{Field: "time", Code: validation.CodeInvalid, Message: "Please select a time between 9:00 AM and 8:00 PM"}}
		}
	default:
		if !isDailySlot(normalized) {
			return validation.Errors{{Field: "time", Code: validation.CodeInvalid, Message: "Please select one of the available time slots"}}
		}
	}
	f.state.Time = normalized
	return nil
}

// UpdateContact stores the contact fields and returns what is still wrong with them.
func (f *Flow) UpdateContact(c Contact) (validation.Errors, error) {
	if f.state.Step != StepContact {
		return nil, ErrWrongStep
	}
	f.state.Contact = c.trimmed()
	return validation.Struct(f.state.Contact), nil
}

// StepErrors validates the current step only.
func (f *Flow) StepErrors() validation.Errors {
	return f.errorsFor(f.state.Step)
}

func (f *Flow) CanAdvance() bool {
	return f.state.Step < StepReview && len(f.StepErrors()) == 0
}

// Next moves forward one step when the current step is complete. The returned
// validation.Errors lists what blocks it.
func (f *Flow) Next() error {
	if f.state.Step >= StepReview {
		return ErrNoNextStep
	}
	if errs := f.StepErrors(); len(errs) > 0 {
		return errs
	}
	f.state.Step++
	return nil
}

// Back moves to the previous step without validating or clearing anything.
func (f *Flow) Back() error {
	if f.state.Step <= StepService {
		return ErrNoPreviousStep
	}
	f.state.Step--
	return nil
}

func (f *Flow) errorsFor(step Step) validation.Errors {
	var errs validation.Errors
	switch step {
	case StepService:
		if f.state.ServiceID == "" {
			errs = append(errs, validation.Error{Field: "service_id", Code: validation.CodeRequired, Message: "Please select a service"})
		}
	case StepSchedule:
		switch {
		case f.state.Date.IsZero():
			errs = append(errs, validation.Error{Field: "date", Code: validation.CodeRequired, Message: "Please select a date"})
		case f.state.Date.Before(f.today()):
			errs = append(errs, validation.Error{Field: "date", Code: validation.CodePastDate, Message: "Please select today or a future date"})
		}
		if f.state.Time == "" {
			errs = append(errs, validation.Error{Field: "time", Code: validation.CodeRequired, Message: "Please select a time"})
		}
	case StepContact:
		errs = append(errs, validation.Struct(f.state.Contact)...)
	}
	return errs
}

func (f *Flow) today() time.Time {
	now := f.now().In(f.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, f.loc)
}
