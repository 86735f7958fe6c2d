package request

import (
	"strings"
	"techflow_billing/internal/domain/booking"
	"time"
)

type SelectServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required" example:"diagnostic"`
	Urgency   string `json:"urgency" example:"standard"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required" example:"2026-10-20"`
}

// Parse reads the calendar day in the business time zone.
func (r SelectDateRequest) Parse(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(r.Date), loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

type RenderedSlotsRequest struct {
	Visible *int `json:"visible" binding:"required,min=0" example:"12"`
}

type SelectTimeRequest struct {
	Time string `json:"time" binding:"required" example:"14:00"`
}

type ContactRequest struct {
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Email              string `json:"email"`
	Phone              string `json:"phone"`
	ServiceLocation    string `json:"service_location"`
	ProblemDescription string `json:"problem_description"`
}

func (r ContactRequest) ToContact() booking.Contact {
	return booking.Contact{
		FirstName:          r.FirstName,
		LastName:           r.LastName,
		Email:              r.Email,
		Phone:              r.Phone,
		ServiceLocation:    r.ServiceLocation,
		ProblemDescription: r.ProblemDescription,
	}
}
