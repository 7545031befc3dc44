package exchange

import (
	"context"

	"go-currency-converter/domain"
	"go-currency-converter/rates"
)

// Service converts user input with the current rate table
type Service interface {
	Convert(ctx context.Context, req domain.Request) domain.Result
}

// service converts against a shared rates.Table
type service struct {
	// table holds the rates; empty until the first fetch resolves
	table *rates.Table
}

// NewService constructs a valid Service
func NewService(table *rates.Table) Service {
	return &service{
		table: table,
	}
}

// Convert returns domain.Unavailable until the table has been loaded.
func (s *service) Convert(_ context.Context, req domain.Request) domain.Result {
	table, ok := s.table.Load()
	if !ok {
		return domain.Unavailable
	}
	return Convert(req.Amount, req.From, req.To, table)
}
