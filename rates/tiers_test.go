package rates_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-currency-converter/awesomeapi"
	"go-currency-converter/domain"
	"go-currency-converter/exchangeratehost"
	"go-currency-converter/rates"
)

func failing(status int) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		rw.WriteHeader(status)
	}))
}

func quoting() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		_, _ = rw.Write([]byte(`{
			"USDBRL": {"bid": "5.5"},
			"EURBRL": {"bid": "6.5"},
			"GBPBRL": {"bid": "7.5"},
			"ARSBRL": {"bid": "0.006"}
		}`))
	}))
}

func TestTiers_PrimaryServerErrorUsesSecondary(t *testing.T) {
	primary := failing(http.StatusInternalServerError)
	defer primary.Close()
	secondary := quoting()
	defer secondary.Close()

	secondarySource := awesomeapi.NewService(secondary.URL, 0)
	want, err := secondarySource.Rates(context.Background())
	require.NoError(t, err)

	got := rates.Tiers(log.NewNopLogger(), nil,
		exchangeratehost.NewService(primary.URL, "", 0),
		secondarySource,
	).Fetch(context.Background())

	assert.Equal(t, awesomeapi.Name, got.Source)
	assert.Equal(t, want, got.Rates)
}

func TestTiers_BothFailUsesStatic(t *testing.T) {
	primary := failing(http.StatusInternalServerError)
	defer primary.Close()
	secondary := failing(http.StatusBadGateway)
	defer secondary.Close()

	got := rates.Tiers(log.NewNopLogger(), nil,
		exchangeratehost.NewService(primary.URL, "", 0),
		awesomeapi.NewService(secondary.URL, 0),
	).Fetch(context.Background())

	assert.Equal(t, rates.StaticName, got.Source)
	assert.Equal(t, domain.Rates{"BRL": 1, "USD": 5.2, "EUR": 6.2, "GBP": 7.3, "ARS": 0.05}, got.Rates)
}
