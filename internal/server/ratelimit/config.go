package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const envPrefix = "RATE_LIMIT_"

// envSettings reads RATE_LIMIT_* variables, falling back to the given
// default when a variable is unset or does not parse.
type envSettings struct{}

func (envSettings) lookup(name string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(envPrefix + name))
	return v, v != ""
}

func (e envSettings) intVar(name string, def int) int {
	if v, ok := e.lookup(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func (e envSettings) boolVar(name string, def bool) bool {
	if v, ok := e.lookup(name); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func (e envSettings) durationVar(name string, def time.Duration) time.Duration {
	if v, ok := e.lookup(name); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// clients parses a comma-separated client list into a set.
func (e envSettings) clients(name string) map[string]bool {
	set := make(map[string]bool)
	v, _ := e.lookup(name)
	for _, id := range strings.Split(v, ",") {
		if id = strings.TrimSpace(id); id != "" {
			set[id] = true
		}
	}
	return set
}

// LoadConfig builds the limiter configuration from RATE_LIMIT_* variables.
func LoadConfig() *Config {
	var env envSettings
	if !env.boolVar("ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    env.intVar("DEFAULT_LIMIT", 1000),
		DefaultWindow:   env.durationVar("DEFAULT_WINDOW", time.Minute),
		CleanupInterval: env.durationVar("CLEANUP_INTERVAL", 5*time.Minute),
		Whitelist:       env.clients("WHITELIST"),
		Blacklist:       env.clients("BLACKLIST"),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs limits /generate hardest since each call fetches a
// page and makes several model calls.
func DefaultEndpointConfigs() []EndpointConfig {
	var env envSettings
	return []EndpointConfig{{
		Path:   "/generate",
		Method: "POST",
		Limit:  env.intVar("GENERATE_LIMIT", 20),
		Window: env.durationVar("GENERATE_WINDOW", time.Hour),
		Burst:  env.intVar("GENERATE_BURST", 3),
	}}
}
