package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"

	"go-currency-converter/awesomeapi"
	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/exchangeratehost"
	"go-currency-converter/http"
	"go-currency-converter/rates"

	nhttp "net/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	w := log.NewSyncWriter(os.Stderr)
	logger := log.NewLogfmtLogger(w)
	logger = level.NewFilter(logger, cfg.LevelOption())
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	metrics := rates.NewMetrics(prometheus.DefaultRegisterer)
	provider := rates.Tiers(log.With(logger, "component", "rates"), metrics,
		exchangeratehost.NewService(cfg.PrimaryURL, cfg.PrimaryAccessKey, cfg.HTTPTimeout),
		awesomeapi.NewService(cfg.SecondaryURL, cfg.HTTPTimeout),
	)

	table := rates.NewTable()

	convertService := exchange.NewService(table)
	convertService = exchange.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	// conversions answer with the placeholder until this resolves
	go table.Refresh(context.Background(), provider)

	handler := http.NewServer(convertService, table, http.Settings{
		AssetsDir:   cfg.AssetsDir,
		DefaultFrom: cfg.DefaultFrom,
		DefaultTo:   cfg.DefaultTo,
		Gatherer:    prometheus.DefaultGatherer,
	}, log.With(logger, "component", "http"))

	level.Info(logger).Log("msg", "listening", "addr", cfg.ListenAddr)
	if err := nhttp.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		level.Error(logger).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
