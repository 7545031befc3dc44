package exchangeratehost

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-currency-converter/domain"
	"go-currency-converter/rates"
)

func TestService_Rates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/latest", req.URL.Path)
		assert.Equal(t, "BRL", req.URL.Query().Get("base"))
		assert.Equal(t, "USD,EUR,GBP,ARS", req.URL.Query().Get("symbols"))
		assert.False(t, req.URL.Query().Has("access_key"))
		response := `{
			"base": "BRL",
			"rates": {
				"USD": 0.25,
				"EUR": 0.5,
				"GBP": 0.125,
				"ARS": 20
			}
		}`
		_, _ = rw.Write([]byte(response))
	}))
	defer server.Close()

	s := NewService(server.URL, "", 0)

	got, err := s.Rates(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.Rates{
		domain.BRL: 1,
		domain.USD: 4,
		domain.EUR: 2,
		domain.GBP: 8,
		domain.ARS: 0.05,
	}, got)
	assert.True(t, got.Complete())
	assert.Equal(t, Name, s.Name())
}

func TestService_RatesAccessKey(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "secret", req.URL.Query().Get("access_key"))
		_, _ = rw.Write([]byte(`{"rates":{"USD":1,"EUR":1,"GBP":1,"ARS":1}}`))
	}))
	defer server.Close()

	_, err := NewService(server.URL+"/", "secret", 0).Rates(context.Background())

	assert.NoError(t, err)
}

func TestService_RatesFailures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, `{"rates":{}}`, rates.ErrStatus},
		{"not found", http.StatusNotFound, ``, rates.ErrStatus},
		{"not json", http.StatusOK, `<html>`, rates.ErrMalformed},
		{"no rates field", http.StatusOK, `{"success":false,"error":{"code":101}}`, rates.ErrMalformed},
		{"missing symbol", http.StatusOK, `{"rates":{"USD":0.2,"EUR":0.2,"GBP":0.2}}`, rates.ErrMalformed},
		{"zero rate", http.StatusOK, `{"rates":{"USD":0,"EUR":0.2,"GBP":0.2,"ARS":20}}`, rates.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				rw.WriteHeader(tt.status)
				_, _ = rw.Write([]byte(tt.body))
			}))
			defer server.Close()

			got, err := NewService(server.URL, "", 0).Rates(context.Background())

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, got)
		})
	}
}

func TestService_RatesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = rw.Write([]byte("{}"))
	}))
	defer server.Close()

	_, err := NewService(server.URL, "", 1*time.Millisecond).Rates(context.Background())

	assert.Error(t, err)
}

func TestService_RatesUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewService(url, "", 0).Rates(context.Background())

	assert.Error(t, err)
}
