package awesomeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go-currency-converter/domain"
	"go-currency-converter/rates"
)

const ApiUrlBase = "https://economia.awesomeapi.com.br"

// Name of this rate tier
const Name = "awesomeapi"

// service AwesomeAPI quotes
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs the AwesomeAPI rate tier.
func NewService(url string, timeout time.Duration) rates.Source {
	if url == "" {
		url = ApiUrlBase
	}
	return &service{
		url: strings.TrimSuffix(url, "/"),
		client: http.Client{
			Timeout: timeout,
		},
	}
}

func (s *service) Name() string {
	return Name
}

// Rates loads the last bid of every supported currency quoted in domain.Base.
func (s *service) Rates(ctx context.Context) (domain.Rates, error) {
	// quote one pair, keyed in the response by the concatenated codes e.g. "USDBRL"
	type quote struct {
		Bid json.Number `json:"bid"`
	}

	pairs := make([]string, 0, len(domain.Supported)-1)
	for _, c := range domain.Supported {
		if c != domain.Base {
			pairs = append(pairs, fmt.Sprintf("%v-%v", c, domain.Base))
		}
	}
	u := fmt.Sprintf("%v/json/last/%v", s.url, strings.Join(pairs, ","))

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

	var response map[string]quote
	err = json.Unmarshal(bytes, &response)
	if err != nil {
		return nil, fmt.Errorf("decoding json: %w: %w", rates.ErrMalformed, err)
	}

	table := domain.Rates{domain.Base: 1}
	for _, c := range domain.Supported {
		if c == domain.Base {
			continue
		}
		key := string(c) + string(domain.Base)
		q, ok := response[key]
		if !ok {
			return nil, fmt.Errorf("missing pair %v: %w", key, rates.ErrMalformed)
		}
		f, err := q.Bid.Float64()
		if err != nil || !(f > 0) {
			return nil, fmt.Errorf("bad bid for %v %q: %w", key, q.Bid, rates.ErrMalformed)
		}
		table[c] = domain.Rate(f)
	}

	return table, nil
}
