// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/viper"

	"github.com/pdiddy/pubmetric/pkg/types"
)

// loadConfig assembles the runtime configuration. Credential precedence,
// lowest to highest: config file, environment (.env included), .secrets/
// key files.
func loadConfig() types.Config {
	cfg := types.Config{
		HTTP: types.HTTPConfig{
			Timeout:   viper.GetDuration("http.timeout"),
			UserAgent: viper.GetString("http.user_agent"),
		},
		NCBI: types.NCBIConfig{
			Email:  viper.GetString("ncbi.email"),
			APIKey: viper.GetString("ncbi.api_key"),
		},
		Assess: types.AssessConfig{
			TooManyResults: viper.GetInt("assess.too_many_results"),
			UseInitial:     viper.GetBool("assess.use_initial"),
			OutputDir:      viper.GetString("assess.output_dir"),
		},
	}

	if v := os.Getenv("NCBI_EMAIL"); v != "" {
		cfg.NCBI.Email = v
	}
	if v := os.Getenv("NCBI_API_KEY"); v != "" {
		cfg.NCBI.APIKey = v
	}
	if v, ok := loadedSecrets["ncbi-email"]; ok {
		cfg.NCBI.Email = v
	}
	if v, ok := loadedSecrets["ncbi-api-key"]; ok {
		cfg.NCBI.APIKey = v
	}

	cfg.ApplyDefaults()
	return cfg
}
