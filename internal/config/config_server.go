// Package config provides application configuration structures and helpers.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// FactsOff in FACTS_URL disables trivia lookups.
const FactsOff = "off"

// ServerConfig holds the configuration settings for the server.
type ServerConfig struct {
	Addr            string // Server address
	Logger          *zap.SugaredLogger
	FactsURL        string        // Trivia service base URL, empty disables lookups
	FactsTimeout    time.Duration // Bound for a single fact lookup, retries included
	FactsRetries    int           // Extra attempts for retriable lookup failures (0 or 1)
	RequestTimeout  time.Duration // Per-request deadline
	ShutdownTimeout time.Duration // Grace period for in-flight requests on shutdown
	Key             string        // Key for response hash signing
	TrustedSubnet   string        // CIDR allowed to scrape /metrics, ex. "10.0.0.0/8"
	LogLevel        string
}

// NewServerConfig creates and returns a new ServerConfig by parsing flags, the optional
// JSON config file and environment variables.
func NewServerConfig() *ServerConfig {
	cfg, err := newServerConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		cfg.Logger.Fatal(err)
	}
	return cfg
}

func newServerConfig(fs *flag.FlagSet, args []string) (*ServerConfig, error) {
	// 0) defaults
	cfg := &ServerConfig{
		Addr:            "localhost:8080",
		FactsURL:        "http://numbersapi.com",
		FactsTimeout:    2 * time.Second,
		FactsRetries:    1,
		RequestTimeout:  10 * time.Second,
		ShutdownTimeout: 10 * time.Second,
		LogLevel:        "info",
	}

	// 1) flags
	fAddr := strFlag{v: cfg.Addr}
	fFacts := strFlag{v: cfg.FactsURL}
	fFactsTO := durFlag{v: cfg.FactsTimeout}
	fRetries := intFlag{v: cfg.FactsRetries}
	fReqTO := durFlag{v: cfg.RequestTimeout}
	fShutTO := durFlag{v: cfg.ShutdownTimeout}
	fLevel := strFlag{v: cfg.LogLevel}
	var fKey, fTrustedSubnet, fConf strFlag

	fs.Var(&fAddr, "a", "HTTP server address")
	fs.Var(&fFacts, "facts-url", "trivia service base URL, empty disables lookups")
	fs.Var(&fFactsTO, "facts-timeout", "fact lookup timeout")
	fs.Var(&fRetries, "facts-retries", "fact lookup retries (0 or 1)")
	fs.Var(&fReqTO, "request-timeout", "per-request timeout")
	fs.Var(&fShutTO, "shutdown-timeout", "graceful shutdown timeout")
	fs.Var(&fKey, "k", "Hash key string")
	fs.Var(&fTrustedSubnet, "t", "trusted subnet for /metrics")
	fs.Var(&fLevel, "l", "log level")
	fs.Var(&fConf, "c", "Path to JSON config file")
	fs.Var(&fConf, "config", "Path to JSON config file (alias)")
	parseErr := fs.Parse(args)

	cfg.Addr = fAddr.v
	cfg.FactsURL = fFacts.v
	cfg.FactsTimeout = fFactsTO.v
	cfg.FactsRetries = fRetries.v
	cfg.RequestTimeout = fReqTO.v
	cfg.ShutdownTimeout = fShutTO.v
	cfg.Key = fKey.v
	cfg.TrustedSubnet = fTrustedSubnet.v
	cfg.LogLevel = fLevel.v

	var warnings []error

	// 2) JSON, only for flags left unset
	if fConf.v == "" {
		fConf.v = os.Getenv("CONFIG")
	}
	if fConf.v != "" {
		js, err := loadServerJSON(fConf.v)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("load config file %q: %w", fConf.v, err))
		} else {
			warnings = append(warnings, applyServerJSON(cfg, js, map[string]bool{
				"address":          fAddr.set,
				"facts_url":        fFacts.set,
				"facts_timeout":    fFactsTO.set,
				"facts_retries":    fRetries.set,
				"request_timeout":  fReqTO.set,
				"shutdown_timeout": fShutTO.set,
				"trusted_subnet":   fTrustedSubnet.set,
				"log_level":        fLevel.set,
			})...)
		}
	}

	// 3) environment, highest priority
	warnings = append(warnings, readServerEnvironment(cfg)...)

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		warnings = append(warnings, err)
		logger, _ = newLogger("info")
	}
	cfg.Logger = logger.Sugar()

	for _, w := range warnings {
		cfg.Logger.Warnf("config: %v", w)
	}

	if parseErr != nil {
		return cfg, fmt.Errorf("parse flags: %w", parseErr)
	}
	return cfg, nil
}

func applyServerJSON(cfg *ServerConfig, js *serverJSON, flagSet map[string]bool) []error {
	var warnings []error
	dur := func(name string, src *string, dst *time.Duration) {
		if src == nil || flagSet[name] {
			return
		}
		d, err := time.ParseDuration(*src)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("invalid %s in config file: %w", name, err))
			return
		}
		*dst = d
	}

	if js.Address != nil && !flagSet["address"] {
		cfg.Addr = *js.Address
	}
	if js.FactsURL != nil && !flagSet["facts_url"] {
		cfg.FactsURL = *js.FactsURL
	}
	if js.FactsRetries != nil && !flagSet["facts_retries"] {
		cfg.FactsRetries = *js.FactsRetries
	}
	if js.TrustedSubnet != nil && !flagSet["trusted_subnet"] {
		cfg.TrustedSubnet = *js.TrustedSubnet
	}
	if js.LogLevel != nil && !flagSet["log_level"] {
		cfg.LogLevel = *js.LogLevel
	}
	dur("facts_timeout", js.FactsTimeout, &cfg.FactsTimeout)
	dur("request_timeout", js.RequestTimeout, &cfg.RequestTimeout)
	dur("shutdown_timeout", js.ShutdownTimeout, &cfg.ShutdownTimeout)
	return warnings
}

func readServerEnvironment(cfg *ServerConfig) []error {
	var warnings []error

	if addr := os.Getenv("ADDRESS"); addr != "" {
		cfg.Addr = addr
	} else if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}

	if facts, ok := os.LookupEnv("FACTS_URL"); ok {
		if facts == FactsOff {
			facts = ""
		}
		cfg.FactsURL = facts
	}

	durEnv := func(name string, dst *time.Duration) {
		v := os.Getenv(name)
		if v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			warnings = append(warnings, fmt.Errorf("invalid %s env var: %w", name, err))
			return
		}
		*dst = d
	}
	durEnv("FACTS_TIMEOUT", &cfg.FactsTimeout)
	durEnv("REQUEST_TIMEOUT", &cfg.RequestTimeout)
	durEnv("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)

	if retries := os.Getenv("FACTS_RETRIES"); retries != "" {
		v, err := strconv.Atoi(retries)
		if err == nil {
			cfg.FactsRetries = v
		} else {
			warnings = append(warnings, fmt.Errorf("invalid FACTS_RETRIES env var: %w", err))
		}
	}

	if key := os.Getenv("KEY"); key != "" {
		cfg.Key = key
	}

	if trustedSubnet := os.Getenv("TRUSTED_SUBNET"); trustedSubnet != "" {
		cfg.TrustedSubnet = trustedSubnet
	}

	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.LogLevel = level
	}

	return warnings
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logCfg := zap.NewProductionConfig()
	logCfg.Level = zap.NewAtomicLevelAt(lvl)
	logCfg.OutputPaths = []string{"stdout"}
	return logCfg.Build()
}
