package main

import (
	"context"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-converter/awesomeapi"
	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/exchangeratehost"
	"go-currency-converter/rates"
	"go-currency-converter/ui"
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
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	provider := rates.Tiers(log.With(logger, "component", "rates"), nil,
		exchangeratehost.NewService(cfg.PrimaryURL, cfg.PrimaryAccessKey, cfg.HTTPTimeout),
		awesomeapi.NewService(cfg.SecondaryURL, cfg.HTTPTimeout),
	)

	table := rates.NewTable()
	convertService := exchange.NewService(table)
	convertService = exchange.NewLoggingService(level.Debug(log.With(logger, "component", "convert")), convertService)

	out := log.NewSyncWriter(os.Stdout)
	controller := ui.New(convertService, table, &terminal{out: out}, &bell{out: out}, cfg.AssetsDir, logger)
	controller.Preset(cfg.DefaultFrom, cfg.DefaultTo, "")

	go controller.Start(context.Background(), provider)

	if err := repl(os.Stdin, out, controller, table); err != nil {
		level.Error(logger).Log("msg", "reading input", "err", err)
		os.Exit(1)
	}
}
