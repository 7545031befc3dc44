package rates

import (
	"context"
	"time"

	"github.com/go-kit/log"

	"go-currency-converter/domain"
)

// loggingSource decorates a Source with logging
type loggingSource struct {
	next   Source
	logger log.Logger
}

// NewLoggingSource return a new logging Source
func NewLoggingSource(logger log.Logger, s Source) Source {
	return &loggingSource{
		next:   s,
		logger: logger,
	}
}

func (s *loggingSource) Name() string {
	return s.next.Name()
}

func (s *loggingSource) Rates(ctx context.Context) (rates domain.Rates, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "rates",
			"count", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Rates(ctx)
}
