// market/instruments.go
package market

type InstrumentMeta struct {
	Name             string
	BaseCurrency     string
	QuoteCurrency    string
	PipLocation      int
	MinimumTradeSize float64
}

var Instruments = map[string]InstrumentMeta{
	"EUR_USD": {
		Name:             "EUR_USD",
		BaseCurrency:     "EUR",
		QuoteCurrency:    "USD",
		PipLocation:      -4,
		MinimumTradeSize: 0.01,
	},
	"USD_JPY": {
		Name:             "USD_JPY",
		BaseCurrency:     "USD",
		QuoteCurrency:    "JPY",
		PipLocation:      -2,
		MinimumTradeSize: 0.01,
	},
	"GBP_USD": {
		Name:             "GBP_USD",
		BaseCurrency:     "GBP",
		QuoteCurrency:    "USD",
		PipLocation:      -4,
		MinimumTradeSize: 0.01,
	},
	"USD_CHF": {
		Name:             "USD_CHF",
		BaseCurrency:     "USD",
		QuoteCurrency:    "CHF",
		PipLocation:      -4,
		MinimumTradeSize: 0.01,
	},
	"XAU_USD": {
		Name:             "XAU_USD",
		BaseCurrency:     "XAU",
		QuoteCurrency:    "USD",
		PipLocation:      -1,
		MinimumTradeSize: 0.01,
	},
}

// Known reports whether the instrument is in the tradable set.
func Known(name string) bool {
	_, ok := Instruments[name]
	return ok
}
