package currencies

import (
	"context"
	"net/http"

	"github.com/mkorobeynikov/fintrack/internal/currency"
	"github.com/mkorobeynikov/fintrack/pkg/utils"
)

type RateService interface {
	FetchRates(ctx context.Context) map[string]float64
}

type CurrencyHandler struct {
	rates RateService
}

func New(rates RateService) *CurrencyHandler {
	return &CurrencyHandler{
		rates: rates,
	}
}

// List godoc
//
//	@Summary	List supported currencies
//	@Tags		Currencies
//	@Produce	json
//	@Success	200	{object}	utils.Response{data=[]currency.Currency}
//	@Router		/api/currencies [get]
func (h *CurrencyHandler) List(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, currency.ListCurrencies())
}

// Rates godoc
//
//	@Summary		Current exchange rates
//	@Description	USD-relative rates, refreshed hourly with a static fallback
//	@Tags			Currencies
//	@Produce		json
//	@Success		200	{object}	utils.Response{data=map[string]float64}
//	@Router			/api/currencies/rates [get]
func (h *CurrencyHandler) Rates(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.rates.FetchRates(r.Context()))
}
