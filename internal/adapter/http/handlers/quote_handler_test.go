package handlers

import (
	"net/http"
	"testing"

	"techflow_billing/internal/adapter/http/handlers/mocks"
	"techflow_billing/internal/domain/catalog"
	"techflow_billing/internal/domain/quote"
	"techflow_billing/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(uc *mocks.MockIQuoteUseCase) *gin.Engine {
	h := NewQuoteHandler(uc)
	r := gin.New()
	r.GET("/v1/catalog/services", h.ListServices)
	r.GET("/v1/catalog/hourly-rates", h.ListHourlyRates)
	r.POST("/v1/quotes", h.CreateQuote)
	return r
}

func TestQuoteHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)
	calc := quote.NewCalculator(catalog.Default())

	t.Run("missing service_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		w := serve(newQuoteRouter(uc), http.MethodPost, "/v1/quotes", `{"urgency":"standard"}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("blank service from use case", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().Estimate(gomock.Any(), " ", "").Return(quote.Estimate{}, usecase.ErrServiceRequired)

		w := serve(newQuoteRouter(uc), http.MethodPost, "/v1/quotes", `{"service_id":" "}`)
		expectStatus(t, w, http.StatusBadRequest)
	})

	t.Run("fallback quote", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		uc.EXPECT().Estimate(gomock.Any(), "mystery", "same-day").Return(calc.Estimate("mystery", catalog.TierSameDay), nil)

		w := serve(newQuoteRouter(uc), http.MethodPost, "/v1/quotes", `{"service_id":"mystery","urgency":"same-day"}`)
		expectStatus(t, w, http.StatusOK)
		body := decodeBody(t, w)
		if body["catalog_hit"] != false || len(body["fallbacks"].([]any)) != 1 {
			t.Fatalf("unexpected body %v", body)
		}
		price := body["price"].(map[string]any)
		if price["value"] != "110.00" {
			t.Fatalf("unexpected price %v", price)
		}
	})
}

func TestQuoteHandler_Catalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	c := catalog.Default()

	uc.EXPECT().Services(gomock.Any()).Return(c.Services())
	uc.EXPECT().HourlyRates(gomock.Any()).Return(c.HourlyRates(), c.Suggestions())

	r := newQuoteRouter(uc)
	expectStatus(t, serve(r, http.MethodGet, "/v1/catalog/services", ""), http.StatusOK)

	w := serve(r, http.MethodGet, "/v1/catalog/hourly-rates", "")
	expectStatus(t, w, http.StatusOK)
	if body := decodeBody(t, w); len(body["rates"].([]any)) != 3 {
		t.Fatalf("unexpected body %v", body)
	}
}
