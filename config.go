package airbridge

import (
	"net/url"
)

// Config consolidates the settings of the relay service.
type Config struct {
	Airtable AirtableConfig `json:"airtable"`
	Server   ServerConfig   `json:"server"`
	Vocab    VocabConfig    `json:"vocab"`
}

// AirtableConfig contains remote store settings.
type AirtableConfig struct {
	BaseURL     string `json:"baseURL"`
	APIKey      string `json:"apiKey"`
	BaseKey     string `json:"baseKey"`
	TableName   string `json:"tableName"`
	SkillsTable string `json:"skillsTable"`
	CausesTable string `json:"causesTable"`
}

// ServerConfig contains HTTP server settings. FormServer is the origin the
// public form is served from; only requests from it are accepted.
type ServerConfig struct {
	Port       int    `json:"port"`
	FormServer string `json:"formServer"`
}

// VocabConfig contains vocabulary override settings.
type VocabConfig struct {
	File string `json:"file"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		Airtable: AirtableConfig{
			BaseURL:     "https://api.airtable.com/v0",
			SkillsTable: "Skills",
			CausesTable: "Causes",
		},
		Server: ServerConfig{
			Port: 5000,
		},
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Airtable.APIKey == "" {
		return &ConfigError{Field: "airtable.apiKey", Message: "must not be empty"}
	}

	if c.Airtable.BaseKey == "" {
		return &ConfigError{Field: "airtable.baseKey", Message: "must not be empty"}
	}

	if c.Airtable.TableName == "" {
		return &ConfigError{Field: "airtable.tableName", Message: "must not be empty"}
	}

	if c.Server.Port <= 0 {
		return &ConfigError{Field: "server.port", Message: "must be greater than 0"}
	}

	if u, err := url.Parse(c.Server.FormServer); err != nil || u.Hostname() == "" {
		return &ConfigError{Field: "server.formServer", Message: "must be a URL with a host"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ConfigError) Error() string {
	return "config validation error for field '" + e.Field + "': " + e.Message
}
