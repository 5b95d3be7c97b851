package idconv

import (
	"fmt"

	"github.com/mongoql/gqlid"
)

// Config holds all configuration options for conversions
type Config struct {
	// Format of the inputs: string, json, bson or cbor.
	// Binary formats are read as hex text.
	From string
	// Format of the outputs. Binary formats are written as hex text.
	To string

	// IDs to convert. When empty, inputs are read line by line.
	Inputs []string

	// Log file path. Logs go to stderr when empty.
	LogPath string
	// Enable verbose logging
	Verbose bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		From: string(gqlid.FormatString),
		To:   string(gqlid.FormatJSON),
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := gqlid.ParseFormat(c.From); err != nil {
		return fmt.Errorf("invalid input format: %w", err)
	}
	if _, err := gqlid.ParseFormat(c.To); err != nil {
		return fmt.Errorf("invalid output format: %w", err)
	}
	return nil
}
