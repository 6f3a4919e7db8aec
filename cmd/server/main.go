package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/numclass/internal/buildinfo"
	"github.com/and161185/numclass/internal/classifier"
	"github.com/and161185/numclass/internal/config"
	"github.com/and161185/numclass/internal/facts"
	"github.com/and161185/numclass/internal/metrics"
	"github.com/and161185/numclass/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewServerConfig()
	defer func() { _ = config.Logger.Sync() }()

	info := buildinfo.Get()
	info.Log(config.Logger)

	m := metrics.New()
	m.SetBuildInfo(info.Version, info.Date, info.Commit)

	var source classifier.FactSource = facts.Disabled{Metrics: m}
	if config.FactsURL != "" {
		source = facts.NewClient(config, m)
	}

	config.Logger.Infof("Server config: Addr=%s, FactsURL=%q, FactsTimeout=%s, FactsRetries=%d, RequestTimeout=%s, TrustedSubnet=%q, Key set=%t",
		config.Addr,
		config.FactsURL,
		config.FactsTimeout,
		config.FactsRetries,
		config.RequestTimeout,
		config.TrustedSubnet,
		config.Key != "",
	)

	srv := server.NewServer(classifier.New(source, config.Logger), config, m)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Fatal(err)
	}
}
