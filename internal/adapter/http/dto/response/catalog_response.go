package response

import (
	"sort"
	"techflow_billing/internal/domain/catalog"
)

type TierResponse struct {
	Urgency          string `json:"urgency"`
	Label            string `json:"label"`
	Multiplier       string `json:"multiplier"`
	CompletionWindow string `json:"completion_window"`
}

type ServiceResponse struct {
	ServiceID string         `json:"service_id"`
	Name      string         `json:"name"`
	BasePrice Amount         `json:"base_price"`
	FlatRate  bool           `json:"flat_rate"`
	Tiers     []TierResponse `json:"tiers"`
}

type HourlyRateResponse struct {
	ServiceTypeID string `json:"service_type_id"`
	Label         string `json:"label"`
	Rate          Amount `json:"rate"`
}

type SuggestionResponse struct {
	Description  string `json:"description"`
	DefaultHours string `json:"default_hours"`
}

type HourlyRatesResponse struct {
	Rates       []HourlyRateResponse `json:"rates"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

func FromCatalogEntries(entries []catalog.Entry) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(entries))
	for _, e := range entries {
		tiers := make([]TierResponse, 0, len(e.Multipliers))
		for tier, mult := range e.Multipliers {
			tiers = append(tiers, TierResponse{
				Urgency:          string(tier),
				Label:            tier.Label(),
				Multiplier:       mult.String(),
				CompletionWindow: e.CompletionWindows[tier],
			})
		}
		sort.Slice(tiers, func(i, j int) bool { return tiers[i].Multiplier < tiers[j].Multiplier })
		out = append(out, ServiceResponse{
			ServiceID: e.ServiceID,
			Name:      e.Name,
			BasePrice: NewAmount(e.BasePrice),
			FlatRate:  e.FlatRate,
			Tiers:     tiers,
		})
	}
	return out
}

func FromHourlyRates(rates []catalog.HourlyRate, suggestions []catalog.Suggestion) HourlyRatesResponse {
	res := HourlyRatesResponse{
		Rates:       make([]HourlyRateResponse, 0, len(rates)),
		Suggestions: make([]SuggestionResponse, 0, len(suggestions)),
	}
	for _, r := range rates {
		res.Rates = append(res.Rates, HourlyRateResponse{ServiceTypeID: r.ServiceTypeID, Label: r.Label, Rate: NewAmount(r.Rate)})
	}
	for _, s := range suggestions {
		res.Suggestions = append(res.Suggestions, SuggestionResponse{Description: s.Description, DefaultHours: s.DefaultHours.String()})
	}
	return res
}
