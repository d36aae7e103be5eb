package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig represents rate limiting configuration for a specific endpoint.
type EndpointConfig struct {
	Path   string  // Endpoint path pattern (supports prefix matching)
	Method string  // HTTP method (GET, POST, etc.)
	RPS    float64 // Sustained requests per second; <= 0 means unlimited
	Burst  int     // Burst capacity (defaults to ceil(RPS) if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	RPS             float64 // Default sustained requests per second per client
	Burst           int     // Default burst per client
	CleanupInterval time.Duration
	IdleTTL         time.Duration // Per-client state idle longer than this is dropped
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// LoadConfig builds a configuration with the given defaults, reading the switches
// RATE_LIMIT_ENABLED, RATE_LIMIT_WHITELIST and RATE_LIMIT_BLACKLIST from the environment.
func LoadConfig(rps float64, burst int) *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{
			Enabled: false,
		}
	}

	return &Config{
		Enabled:         enabled,
		RPS:             rps,
		Burst:           burst,
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		IdleTTL:         time.Hour,
		Whitelist:       parseIPList(getEnvString("RATE_LIMIT_WHITELIST", "")),
		Blacklist:       parseIPList(getEnvString("RATE_LIMIT_BLACKLIST", "")),
		EndpointConfigs: DefaultEndpointConfigs(rps, burst),
	}
}

// DefaultEndpointConfigs returns endpoint-specific limits derived from the default rate.
func DefaultEndpointConfigs(rps float64, burst int) []EndpointConfig {
	return []EndpointConfig{
		// Multi-document comparisons cost one extraction per document
		{Path: "/compare", Method: "POST", RPS: rps / 2, Burst: max(1, burst/2)},
		// Reloads hit the taxonomy source; one per minute is plenty
		{Path: "/taxonomy/reload", Method: "POST", RPS: 1.0 / 60, Burst: 1},
	}
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDuration gets an environment variable as a duration with a default value.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// parseIPList parses a comma-separated list of IP addresses into a map.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	if list == "" {
		return result
	}

	for _, ip := range strings.Split(list, ",") {
		ip = strings.TrimSpace(ip)
		if ip != "" {
			result[ip] = true
		}
	}
	return result
}
