package exchange

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"go-currency-converter/domain"
	"go-currency-converter/format"
)

// ErrInvalidAmount the raw input does not read as a number
var ErrInvalidAmount = errors.New("invalid amount")

// decimalLiteral plain decimal notation, no digit separators or hex
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ParseAmount reads a user-typed amount written with "." as thousands separator and
// "," as decimal separator, so "1.234,56" is 1234.56. Every "." is dropped before the
// first "," becomes the decimal point, which means "1234.56" reads as 123456.
func ParseAmount(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.Replace(s, ",", ".", 1)
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidAmount)
	}
	if !decimalLiteral.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}

	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrInvalidAmount, raw)
	}
	return amount, nil
}

// Convert computes raw from one currency to another through the base currency and
// formats both sides. It returns domain.Unavailable when rates is not a complete table
// or raw is not a number. Negative amounts convert like any other.
func Convert(raw string, from domain.Currency, to domain.Currency, rates domain.Rates) domain.Result {
	if !rates.Complete() {
		return domain.Unavailable
	}
	amount, err := ParseAmount(raw)
	if err != nil {
		return domain.Unavailable
	}

	inBase := amount * rateOf(rates, from)
	converted := inBase / rateOf(rates, to)

	return domain.Result{
		Source: format.Format(amount, from),
		Target: format.Format(converted, to),
	}
}

// rateOf treats a missing or non-positive rate as 1.
func rateOf(rates domain.Rates, c domain.Currency) float64 {
	if rate := rates[c]; rate > 0 {
		return float64(rate)
	}
	return 1
}
