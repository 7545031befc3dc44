package awesomeapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-currency-converter/domain"
	"go-currency-converter/rates"
)

const quotes = `{
	"USDBRL": {"code": "USD", "codein": "BRL", "bid": "5.4321"},
	"EURBRL": {"code": "EUR", "codein": "BRL", "bid": "6.1"},
	"GBPBRL": {"code": "GBP", "codein": "BRL", "bid": "7.25"},
	"ARSBRL": {"code": "ARS", "codein": "BRL", "bid": "0.0061"}
}`

func TestService_Rates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/json/last/USD-BRL,EUR-BRL,GBP-BRL,ARS-BRL", req.URL.Path)
		_, _ = rw.Write([]byte(quotes))
	}))
	defer server.Close()

	s := NewService(server.URL, 0)

	got, err := s.Rates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Rates{
		domain.BRL: 1,
		domain.USD: 5.4321,
		domain.EUR: 6.1,
		domain.GBP: 7.25,
		domain.ARS: 0.0061,
	}, got)
	assert.Equal(t, Name, s.Name())
}

func TestService_RatesNumericBid(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"USDBRL":{"bid":5},"EURBRL":{"bid":6},"GBPBRL":{"bid":7},"ARSBRL":{"bid":0.5}}`))
	}))
	defer server.Close()

	got, err := NewService(server.URL, 0).Rates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Rate(0.5), got[domain.ARS])
}

func TestService_RatesFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, quotes, rates.ErrStatus},
		{"too many requests", http.StatusTooManyRequests, `{}`, rates.ErrStatus},
		{"not json", http.StatusOK, `oops`, rates.ErrMalformed},
		{"missing pair", http.StatusOK, `{"USDBRL":{"bid":"5"},"EURBRL":{"bid":"6"},"GBPBRL":{"bid":"7"}}`, rates.ErrMalformed},
		{"missing bid", http.StatusOK, `{"USDBRL":{"ask":"5"},"EURBRL":{"bid":"6"},"GBPBRL":{"bid":"7"},"ARSBRL":{"bid":"1"}}`, rates.ErrMalformed},
		{"bid not a number", http.StatusOK, `{"USDBRL":{"bid":"five"},"EURBRL":{"bid":"6"},"GBPBRL":{"bid":"7"},"ARSBRL":{"bid":"1"}}`, rates.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				rw.WriteHeader(tt.status)
				_, _ = rw.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := NewService(server.URL, 0).Rates(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}
