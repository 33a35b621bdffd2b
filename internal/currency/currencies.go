package currency

import "strings"

// DefaultCurrency is the baseline used whenever a record carries no
// currency of its own.
const DefaultCurrency = "RUB"

type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

var currencies = []Currency{
	{Code: "RUB", Name: "Russian Ruble", Symbol: "₽"},
	{Code: "USD", Name: "US Dollar", Symbol: "$"},
	{Code: "EUR", Name: "Euro", Symbol: "€"},
	{Code: "GBP", Name: "British Pound", Symbol: "£"},
	{Code: "JPY", Name: "Japanese Yen", Symbol: "¥"},
	{Code: "CNY", Name: "Chinese Yuan", Symbol: "¥"},
}

// staticRates is the last-resort fallback, relative to USD.
var staticRates = map[string]float64{
	"USD": 1,
	"RUB": 92.5,
	"EUR": 0.92,
	"GBP": 0.79,
	"JPY": 149.8,
	"CNY": 7.24,
}

func IsValidCurrency(code string) bool {
	code = strings.ToUpper(code)
	for _, c := range currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

func ListCurrencies() []Currency {
	out := make([]Currency, len(currencies))
	copy(out, currencies)
	return out
}

func Symbol(code string) string {
	code = strings.ToUpper(code)
	for _, c := range currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return code
}
