// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the configuration and record shapes shared across the
// pubmetric stages.
package types

import (
	"fmt"
	"regexp"
	"time"
)

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "pubmetric/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// NCBIConfig holds the E-utilities credentials. NCBI requires a registered
// email and an API key; with a key the request budget rises from 3 to 10
// requests per second.
type NCBIConfig struct {
	// Email is the address registered with NCBI, sent on every request.
	Email string `json:"email" yaml:"email"`

	// APIKey is the NCBI API key from the account settings page.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// emailPattern is deliberately loose: one @, something on both sides, a dot
// in the domain. It catches empty and placeholder values, not RFC violations.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Validate checks the credentials before any roster processing begins.
// A bad credential fails the whole run up front rather than partway through.
func (c NCBIConfig) Validate() error {
	if c.Email == "" || c.Email == "abc@123.com" || !emailPattern.MatchString(c.Email) {
		return fmt.Errorf("a valid NCBI email is required (set ncbi.email, NCBI_EMAIL, or .secrets/ncbi-email)")
	}
	if c.APIKey == "" || c.APIKey == "abc123" {
		return fmt.Errorf("an NCBI API key is required (set ncbi.api_key, NCBI_API_KEY, or .secrets/ncbi-api-key)")
	}
	return nil
}

// AssessConfig holds settings for the assessment stage.
type AssessConfig struct {
	// TooManyResults is the hit-count ceiling above which a trainee's
	// search is considered too unspecific to score (default 50).
	TooManyResults int `json:"too_many_results" yaml:"too_many_results"`

	// UseInitial appends the first initial to last names when building
	// search terms and the trainee's comparison identity ("Joyce J"
	// instead of "Joyce").
	UseInitial bool `json:"use_initial" yaml:"use_initial"`

	// OutputDir is the directory for the timestamped result files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`
}

// Config groups all stage configurations.
type Config struct {
	HTTP   HTTPConfig   `json:"http" yaml:"http"`
	NCBI   NCBIConfig   `json:"ncbi" yaml:"ncbi"`
	Assess AssessConfig `json:"assess" yaml:"assess"`
}

// ApplyDefaults fills unset fields with working values.
func (c *Config) ApplyDefaults() {
	if c.HTTP.Timeout <= 0 {
		c.HTTP.Timeout = 30 * time.Second
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = "pubmetric/0.1"
	}
	if c.Assess.TooManyResults <= 0 {
		c.Assess.TooManyResults = 50
	}
	if c.Assess.OutputDir == "" {
		c.Assess.OutputDir = "."
	}
}
