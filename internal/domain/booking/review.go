package booking

import (
	"strings"

	"techflow_billing/internal/domain/catalog"
	"techflow_billing/internal/domain/money"
	"techflow_billing/internal/domain/validation"
)

const noDescription = "No additional details provided."

// Review is the read-only summary shown on step 4 and handed to the submitter.
type Review struct {
	ServiceID        string              `json:"service_id"`
	ServiceName      string              `json:"service_name"`
	Urgency          catalog.UrgencyTier `json:"urgency"`
	UrgencyLabel     string              `json:"urgency_label"`
	EstimatedPrice   money.Money         `json:"estimated_price"`
	PriceLabel       string              `json:"price_label"`
	CompletionWindow string              `json:"completion_window"`
	Date             string              `json:"date"`
	DateLabel        string              `json:"date_label"`
	Time             string              `json:"time"`
	TimeLabel        string              `json:"time_label"`
	Location         string              `json:"location"`
	Name             string              `json:"name"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	Description      string              `json:"description"`
}

// Review builds the summary from steps 1 to 3. It is only available on step 4.
func (f *Flow) Review() (Review, error) {
	if f.state.Step != StepReview {
		return Review{}, ErrNotInReview
	}
	return f.synthesize(), nil
}

// Submission returns the review for delivery after re-checking every earlier step,
// so nothing invalid leaves the flow.
func (f *Flow) Submission() (Review, error) {
	if f.state.Step != StepReview {
		return Review{}, ErrNotInReview
	}
	var errs validation.Errors
	for _, s := range []Step{StepService, StepSchedule, StepContact} {
		errs = append(errs, f.errorsFor(s)...)
	}
	if len(errs) > 0 {
		return Review{}, errs
	}
	return f.synthesize(), nil
}

func (f *Flow) synthesize() Review {
	st := f.state
	est := f.calc.Estimate(st.ServiceID, st.Urgency)

	desc := st.Contact.ProblemDescription
	if strings.TrimSpace(desc) == "" {
		desc = noDescription
	}

	r := Review{
		ServiceID:        st.ServiceID,
		ServiceName:      est.ServiceName,
		Urgency:          st.Urgency,
		UrgencyLabel:     st.Urgency.Label(),
		EstimatedPrice:   est.Price,
		PriceLabel:       money.Format(est.Price),
		CompletionWindow: est.CompletionWindow,
		Time:             st.Time,
		TimeLabel:        TimeLabel(st.Time),
		Location:         st.Contact.ServiceLocation,
		Name:             strings.TrimSpace(st.Contact.FirstName + " " + st.Contact.LastName),
		Email:            st.Contact.Email,
		Phone:            validation.FormatPhone(st.Contact.Phone),
		Description:      desc,
	}
	if !st.Date.IsZero() {
		r.Date = st.Date.Format("2006-01-02")
		r.DateLabel = st.Date.Format("Monday, January 2, 2006")
	}
	return r
}
