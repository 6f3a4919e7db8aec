package config

import (
	"encoding/json"
	"os"
)

type serverJSON struct {
	Address         *string `json:"address"`
	FactsURL        *string `json:"facts_url"`
	FactsTimeout    *string `json:"facts_timeout"` // "2s"
	FactsRetries    *int    `json:"facts_retries"`
	RequestTimeout  *string `json:"request_timeout"`
	ShutdownTimeout *string `json:"shutdown_timeout"`
	TrustedSubnet   *string `json:"trusted_subnet"`
	LogLevel        *string `json:"log_level"`
}

func loadServerJSON(path string) (*serverJSON, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg serverJSON
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
