package domain

// Currency a currency code
type Currency string

const (
	BRL Currency = "BRL"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	ARS Currency = "ARS"
)

// Base is the currency every rate is expressed against.
const Base = BRL

// Supported lists the closed set of currencies, base first.
var Supported = []Currency{BRL, USD, EUR, GBP, ARS}

// Valid reports whether c belongs to the supported set.
func (c Currency) Valid() bool {
	for _, s := range Supported {
		if c == s {
			return true
		}
	}
	return false
}

// Rate units of base currency per one unit of a currency
type Rate float64

// Rates maps a currency to its rate against Base.
type Rates map[Currency]Rate

// Complete reports whether every supported currency has a positive rate and Base is exactly 1.
func (r Rates) Complete() bool {
	if r == nil || r[Base] != 1 {
		return false
	}
	for _, c := range Supported {
		if rate, ok := r[c]; !ok || !(rate > 0) {
			return false
		}
	}
	return true
}

// Clone returns a copy of r.
func (r Rates) Clone() Rates {
	if r == nil {
		return nil
	}
	out := make(Rates, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Request a single conversion trigger. Amount is the raw user input.
type Request struct {
	Amount string
	From   Currency
	To     Currency
}

// Placeholder is displayed whenever a conversion cannot be computed.
const Placeholder = "—"

// Result the formatted pair shown to the user
type Result struct {
	Source string
	Target string
}

// Unavailable is the placeholder pair.
var Unavailable = Result{Source: Placeholder, Target: Placeholder}

// Available reports whether r carries a computed conversion.
func (r Result) Available() bool {
	return r != Unavailable
}
