package response

import "techflow_billing/internal/domain/quote"

type RecommendationResponse struct {
	ServiceID string `json:"service_id"`
	Name      string `json:"name"`
	Reason    string `json:"reason"`
	Badge     string `json:"badge"`
	BasePrice Amount `json:"base_price"`
}

type QuoteResponse struct {
	ServiceID        string                   `json:"service_id"`
	ServiceName      string                   `json:"service_name"`
	Urgency          string                   `json:"urgency"`
	UrgencyLabel     string                   `json:"urgency_label"`
	BasePrice        Amount                   `json:"base_price"`
	Multiplier       string                   `json:"multiplier"`
	FlatRate         bool                     `json:"flat_rate"`
	Price            Amount                   `json:"price"`
	CompletionWindow string                   `json:"completion_window"`
	CatalogHit       bool                     `json:"catalog_hit"`
	Fallbacks        []string                 `json:"fallbacks"`
	Recommendations  []RecommendationResponse `json:"recommendations"`
}

func FromEstimate(e quote.Estimate) QuoteResponse {
	res := QuoteResponse{
		ServiceID:        e.ServiceID,
		ServiceName:      e.ServiceName,
		Urgency:          string(e.Tier),
		UrgencyLabel:     e.Tier.Label(),
		BasePrice:        NewAmount(e.BasePrice),
		Multiplier:       e.Multiplier.String(),
		FlatRate:         e.FlatRate,
		Price:            NewAmount(e.Price),
		CompletionWindow: e.CompletionWindow,
		CatalogHit:       e.CatalogHit(),
		Fallbacks:        make([]string, 0, len(e.Fallbacks)),
		Recommendations:  make([]RecommendationResponse, 0, len(e.Recommendations)),
	}
	for _, f := range e.Fallbacks {
		res.Fallbacks = append(res.Fallbacks, string(f))
	}
	for _, r := range e.Recommendations {
		res.Recommendations = append(res.Recommendations, RecommendationResponse{
			ServiceID: r.ServiceID,
			Name:      r.Name,
			Reason:    r.Reason,
			Badge:     r.Badge,
			BasePrice: NewAmount(r.BasePrice),
		})
	}
	return res
}
