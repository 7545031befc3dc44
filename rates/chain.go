package rates

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-converter/domain"
)

// ErrAllFailed every attempt handed to FirstSuccess failed
var ErrAllFailed = errors.New("all attempts failed")

// FirstSuccess runs attempts in order and stops at the first one returning a nil error.
// It returns the winning value and its index. When every attempt fails the index is -1 and
// the error joins ErrAllFailed with each attempt's error.
func FirstSuccess[T any](ctx context.Context, attempts ...func(context.Context) (T, error)) (T, int, error) {
	errs := []error{ErrAllFailed}
	for i, attempt := range attempts {
		v, err := attempt(ctx)
		if err == nil {
			return v, i, nil
		}
		errs = append(errs, err)
	}
	var zero T
	return zero, -1, errors.Join(errs...)
}

// Result a complete rate table and the tier that produced it
type Result struct {
	Source string
	Rates  domain.Rates
}

// Provider fetches rates through an ordered list of tiers, falling back to StaticRates.
type Provider struct {
	// sources tried in order, the first complete table wins
	sources []Source

	logger log.Logger
}

// Chain constructs a Provider trying sources in the given order.
func Chain(logger log.Logger, sources ...Source) *Provider {
	return &Provider{
		sources: sources,
		logger:  logger,
	}
}

// Tiers decorates each source with logging and metrics and chains them in order.
func Tiers(logger log.Logger, metrics *Metrics, sources ...Source) *Provider {
	decorated := make([]Source, 0, len(sources))
	for _, s := range sources {
		s = NewLoggingSource(log.With(logger, "source", s.Name()), s)
		if metrics != nil {
			s = NewInstrumentingSource(metrics, s)
		}
		decorated = append(decorated, s)
	}
	return Chain(logger, decorated...)
}

// Fetch never fails: it returns the first tier's complete table, or the static table.
// Tiers are awaited one after the other and never retried.
func (p *Provider) Fetch(ctx context.Context) Result {
	attempts := make([]func(context.Context) (domain.Rates, error), 0, len(p.sources))
	for _, s := range p.sources {
		attempts = append(attempts, p.attempt(s))
	}

	rates, i, err := FirstSuccess(ctx, attempts...)
	if err != nil {
		level.Warn(p.logger).Log("msg", "using static rates", "err", err)
		return Result{Source: StaticName, Rates: StaticRates()}
	}

	name := p.sources[i].Name()
	level.Info(p.logger).Log("msg", "rates loaded", "source", name)
	return Result{Source: name, Rates: rates}
}

// attempt wraps one tier so that an incomplete table or a panic counts as a failure.
func (p *Provider) attempt(s Source) func(context.Context) (domain.Rates, error) {
	return func(ctx context.Context) (rates domain.Rates, err error) {
		defer func() {
			if r := recover(); r != nil {
				rates, err = nil, fmt.Errorf("%v: panic: %v", s.Name(), r)
			}
			if err != nil {
				level.Warn(p.logger).Log("msg", "rate source failed", "source", s.Name(), "err", err)
			}
		}()

		level.Debug(p.logger).Log("msg", "fetching rates", "source", s.Name())
		rates, err = s.Rates(ctx)
		if err != nil {
			return nil, fmt.Errorf("%v: %w", s.Name(), err)
		}
		if !rates.Complete() {
			return nil, fmt.Errorf("%v: incomplete table: %w", s.Name(), ErrMalformed)
		}
		return rates, nil
	}
}
