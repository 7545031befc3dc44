package exchangeratehost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go-currency-converter/domain"
	"go-currency-converter/rates"
)

const ApiUrlBase = "https://api.exchangerate.host"

// Name of this rate tier
const Name = "exchangerate.host"

// service exchangerate.host API
type service struct {
	// url base API url
	url string

	// accessKey optional API access key, sent as the access_key query parameter
	accessKey string

	// client for HTTP requests
	client http.Client
}

// NewService constructs the exchangerate.host rate tier.
// A zero timeout leaves the request bounded only by its context.
func NewService(url, accessKey string, timeout time.Duration) rates.Source {
	if url == "" {
		url = ApiUrlBase
	}
	return &service{
		url:       strings.TrimSuffix(url, "/"),
		accessKey: accessKey,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

func (s *service) Name() string {
	return Name
}

// Rates loads the latest rates for every supported currency against domain.Base.
// The API quotes units of the symbol per one unit of the base, so each value is inverted
// to get units of the base per one unit of the symbol.
func (s *service) Rates(ctx context.Context) (domain.Rates, error) {
	type Response struct {
		Rates map[string]float64 `json:"rates"`
	}

	symbols := make([]string, 0, len(domain.Supported)-1)
	for _, c := range domain.Supported {
		if c != domain.Base {
			symbols = append(symbols, string(c))
		}
	}

	query := url.Values{}
	query.Set("base", string(domain.Base))
	query.Set("symbols", strings.Join(symbols, ","))
	if s.accessKey != "" {
		query.Set("access_key", s.accessKey)
	}
	u := fmt.Sprintf("%v/latest?%v", s.url, query.Encode())

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode < 200 || httpResponse.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %v", rates.ErrStatus, httpResponse.StatusCode)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading json: %w", err)
	}

	var response Response
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return nil, fmt.Errorf("decoding json: %w: %w", rates.ErrMalformed, err)
	}
	if response.Rates == nil {
		return nil, fmt.Errorf("no rates in response: %w", rates.ErrMalformed)
	}

	table := domain.Rates{domain.Base: 1}
	for _, symbol := range symbols {
		v, ok := response.Rates[symbol]
		if !ok || !(v > 0) {
			return nil, fmt.Errorf("bad rate for %v: %w", symbol, rates.ErrMalformed)
		}
		table[domain.Currency(symbol)] = domain.Rate(1 / v)
	}

	return table, nil
}
