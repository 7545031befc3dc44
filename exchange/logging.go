package exchange

import (
	"context"
	"time"

	"github.com/go-kit/log"

	"go-currency-converter/domain"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, req domain.Request) (result domain.Result) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", req.Amount,
			"from", req.From,
			"to", req.To,
			"source_amount", result.Source,
			"converted_amount", result.Target,
			"available", result.Available(),
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Convert(ctx, req)
}
