package response

import (
	"techflow_billing/internal/domain/booking"
	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/domain/validation"
	"techflow_billing/internal/usecase"
	"time"
)

type BookingViewResponse struct {
	SessionID  string            `json:"session_id"`
	Step       int               `json:"step"`
	StepName   string            `json:"step_name"`
	ServiceID  string            `json:"service_id,omitempty"`
	Urgency    string            `json:"urgency"`
	Date       string            `json:"date,omitempty"`
	Time       string            `json:"time,omitempty"`
	TimeInput  string            `json:"time_input"`
	Contact    booking.Contact   `json:"contact"`
	Slots      []booking.Slot    `json:"slots"`
	StepErrors validation.Errors `json:"step_errors"`
	CanAdvance bool              `json:"can_advance"`
	Estimate   *QuoteResponse    `json:"estimate,omitempty"`
}

type BookingSubmissionResponse struct {
	Reference   string         `json:"reference"`
	FormType    string         `json:"form_type"`
	SubmittedAt time.Time      `json:"submission_date"`
	Review      booking.Review `json:"review"`
}

func FromBookingView(v usecase.BookingView) BookingViewResponse {
	st := v.State
	res := BookingViewResponse{
		SessionID:  v.SessionID,
		Step:       int(st.Step),
		StepName:   st.Step.String(),
		ServiceID:  st.ServiceID,
		Urgency:    string(st.Urgency),
		Date:       formatDate(st.Date),
		Time:       st.Time,
		TimeInput:  string(st.TimeInput),
		Contact:    st.Contact,
		Slots:      v.Slots,
		StepErrors: v.StepErrors,
		CanAdvance: v.CanAdvance,
	}
	if res.Slots == nil {
		res.Slots = []booking.Slot{}
	}
	if res.StepErrors == nil {
		res.StepErrors = validation.Errors{}
	}
	if v.Estimate != nil {
		q := FromEstimate(*v.Estimate)
		res.Estimate = &q
	}
	return res
}

func FromBookingSubmission(s entities.BookingSubmission) BookingSubmissionResponse {
	return BookingSubmissionResponse{
		Reference:   s.Reference,
		FormType:    s.FormType,
		SubmittedAt: s.SubmittedAt,
		Review:      s.Review,
	}
}
