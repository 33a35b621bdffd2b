package currency

import (
	"context"
	"net/http"
	"strings"
)

const SecondaryCurrencyHeader = "X-Secondary-Currency"

type contextKey string

const secondaryKey contextKey = "secondaryCurrency"

// Middleware reads the optional secondary display currency from the request
// header and attaches it to the context. Unknown codes are ignored.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(r.Header.Get(SecondaryCurrencyHeader))
		if code != "" && IsValidCurrency(code) {
			ctx := context.WithValue(r.Context(), secondaryKey, code)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}

func SecondaryFromContext(ctx context.Context) string {
	code, _ := ctx.Value(secondaryKey).(string)
	return code
}

// Converted is the secondary-currency view attached to money-bearing
// responses. DTOs embed it as a nil-able pointer so the three fields only
// appear when a secondary currency was requested.
type Converted struct {
	ConvertedAmount   float64 `json:"convertedAmount"`
	ConvertedSymbol   string  `json:"convertedSymbol"`
	ConvertedCurrency string  `json:"convertedCurrency"`
}

type Decorator struct {
	rates *Service
}

func NewDecorator(rates *Service) *Decorator {
	return &Decorator{rates: rates}
}

// Decorate builds the converted view for a single amount. Returns nil when
// the request carries no secondary currency preference. Records without a
// currency are treated as DefaultCurrency.
func (d *Decorator) Decorate(ctx context.Context, amount float64, currencyCode string) *Converted {
	secondary := SecondaryFromContext(ctx)
	if secondary == "" {
		return nil
	}
	if currencyCode == "" {
		currencyCode = DefaultCurrency
	}

	return &Converted{
		ConvertedAmount:   d.rates.Convert(ctx, amount, currencyCode, secondary),
		ConvertedSymbol:   Symbol(secondary),
		ConvertedCurrency: secondary,
	}
}
