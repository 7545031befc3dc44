package rates

import (
	"context"
	"errors"

	"go-currency-converter/domain"
)

var (
	// ErrStatus an upstream answered with a non-success HTTP status
	ErrStatus = errors.New("unexpected http status")

	// ErrMalformed an upstream body was unparsable or lacked a required field
	ErrMalformed = errors.New("malformed response")
)

// Source is one rate tier. Rates returns a table expressed against domain.Base.
type Source interface {
	Name() string
	Rates(ctx context.Context) (domain.Rates, error)
}

// SourceFunc adapts a plain function to a Source.
type SourceFunc func(ctx context.Context) (domain.Rates, error)

type funcSource struct {
	name string
	fn   SourceFunc
}

// NewSource names fn as a Source.
func NewSource(name string, fn SourceFunc) Source {
	return &funcSource{name: name, fn: fn}
}

func (s *funcSource) Name() string {
	return s.name
}

func (s *funcSource) Rates(ctx context.Context) (domain.Rates, error) {
	return s.fn(ctx)
}

// StaticName names the last-resort tier.
const StaticName = "static"

// StaticRates returns the hardcoded table used when every remote tier fails.
func StaticRates() domain.Rates {
	return domain.Rates{
		domain.BRL: 1,
		domain.USD: 5.2,
		domain.EUR: 6.2,
		domain.GBP: 7.3,
		domain.ARS: 0.05,
	}
}

// Static returns the hardcoded tier. It never fails.
func Static() Source {
	return NewSource(StaticName, func(context.Context) (domain.Rates, error) {
		return StaticRates(), nil
	})
}
