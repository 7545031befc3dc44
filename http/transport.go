package http

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go-currency-converter/domain"
	"go-currency-converter/exchange"
	"go-currency-converter/rates"
	"go-currency-converter/ui"
)

// assetsPrefix is where AssetsDir is served
const assetsPrefix = "/assets"

// Settings for the HTTP Server
type Settings struct {
	// AssetsDir directory holding icons, stylesheet and the audio cue
	AssetsDir string

	// DefaultFrom and DefaultTo preselect the page's currencies
	DefaultFrom domain.Currency
	DefaultTo   domain.Currency

	// Gatherer exposed on /metrics, nil disables the endpoint
	Gatherer prometheus.Gatherer
}

// Server dependencies for HTTP Server functions
type Server struct {
	Service  exchange.Service
	Table    *rates.Table
	Settings Settings
	Logger   log.Logger
	router   *http.ServeMux
}

func NewServer(s exchange.Service, table *rates.Table, settings Settings, logger log.Logger) *Server {
	if settings.DefaultFrom == "" {
		settings.DefaultFrom = domain.BRL
	}
	if settings.DefaultTo == "" {
		settings.DefaultTo = domain.USD
	}
	server := &Server{
		Service:  s,
		Table:    table,
		Settings: settings,
		Logger:   logger,
		router:   http.NewServeMux(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/", s.page())
	s.router.Handle("/api/convert", s.convert())
	s.router.Handle("/api/rates", s.rates())
	s.router.Handle("/api/currencies", s.currencies())
	if s.Settings.AssetsDir != "" {
		s.router.Handle(assetsPrefix+"/", http.StripPrefix(assetsPrefix+"/", http.FileServer(http.Dir(s.Settings.AssetsDir))))
	}
	if s.Settings.Gatherer != nil {
		s.router.Handle("/metrics", promhttp.HandlerFor(s.Settings.Gatherer, promhttp.HandlerOpts{}))
	}
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// page renders the converter. Each request replays the form as controller events.
func (s *Server) page() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(rw, r)
			return
		}
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			rw.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		query := r.URL.Query()
		from := domain.Currency(query.Get("from"))
		if from == "" {
			from = s.Settings.DefaultFrom
		}
		to := domain.Currency(query.Get("to"))
		if to == "" {
			to = s.Settings.DefaultTo
		}
		amount := query.Get("amount")

		view := &pageView{}
		sound := &pageSound{}
		controller := ui.New(s.Service, s.Table, view, sound, assetsPrefix, s.Logger)
		controller.Preset(from, to, amount)
		if query.Get("convert") != "" {
			controller.ConvertClicked()
		} else {
			controller.Render()
		}

		model := page{
			State:      controller.State().String(),
			Assets:     assetsPrefix,
			Currencies: options(from, to),
			Amount:     amount,
			View:       view,
			PlaySound:  sound.requested,
			Sound:      ui.SoundPath(assetsPrefix),
		}

		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTemplate.Execute(rw, model); err != nil {
			level.Error(s.Logger).Log("msg", "rendering page", "err", err)
		}
	}
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency domain.Currency
		ToCurrency   domain.Currency
		Amount       string
	}

	// response for marshalling JSON responses to return to clients
	type response struct {
		From string `json:"from"`
		To   string `json:"to"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		rw.Header().Set("Content-Type", "application/json")

		if r.Method != http.MethodPost {
			writeError(rw, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		bytes, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "invalid request")
			return
		}

		var request request
		err = json.Unmarshal(bytes, &request)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "invalid json")
			return
		}

		result := s.Service.Convert(r.Context(), domain.Request{
			Amount: request.Amount,
			From:   request.FromCurrency,
			To:     request.ToCurrency,
		})

		writeJSON(rw, s.Logger, response{From: result.Source, To: result.Target})
	}
}

// rates reports the current table and the tier it came from
func (s *Server) rates() http.HandlerFunc {
	type response struct {
		Source string       `json:"source"`
		Base   string       `json:"base"`
		Rates  domain.Rates `json:"rates"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		table, ok := s.Table.Load()
		if !ok {
			writeError(rw, http.StatusServiceUnavailable, "rates unavailable")
			return
		}
		writeJSON(rw, s.Logger, response{Source: s.Table.Source(), Base: string(domain.Base), Rates: table})
	}
}

// currencies lists the supported currencies with their labels
func (s *Server) currencies() http.HandlerFunc {
	type currency struct {
		Code domain.Currency `json:"code"`
		Name string          `json:"name"`
		Icon string          `json:"icon"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "application/json")

		out := make([]currency, 0, len(domain.Supported))
		for _, c := range domain.Supported {
			label, _ := ui.Describe(c)
			out = append(out, currency{Code: c, Name: label.Name, Icon: assetsPrefix + "/" + label.Icon})
		}
		writeJSON(rw, s.Logger, out)
	}
}

func writeJSON(rw http.ResponseWriter, logger log.Logger, v interface{}) {
	enc := json.NewEncoder(rw)
	if err := enc.Encode(v); err != nil {
		level.Error(logger).Log("msg", "failed json encoding", "err", err)
		writeError(rw, http.StatusInternalServerError, "failed json encoding")
	}
}

func writeError(rw http.ResponseWriter, status int, msg string) {
	rw.WriteHeader(status)
	_ = json.NewEncoder(rw).Encode(map[string]string{"error": msg})
}
