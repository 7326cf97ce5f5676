package ratelimit

import (
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config := LoadConfig()
	if !config.Enabled {
		t.Fatal("Expected rate limiting to be enabled by default")
	}
	if config.DefaultLimit != 1000 || config.DefaultWindow != time.Minute {
		t.Errorf("Unexpected defaults: %d per %v", config.DefaultLimit, config.DefaultWindow)
	}

	generate := MatchEndpoint("/generate", "POST", config.EndpointConfigs)
	if generate == nil {
		t.Fatal("Expected a /generate endpoint config")
	}
	if generate.Limit != 20 || generate.Window != time.Hour || generate.Burst != 3 {
		t.Errorf("Unexpected /generate config: %+v", *generate)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("RATE_LIMIT_GENERATE_LIMIT", "5")
	t.Setenv("RATE_LIMIT_GENERATE_WINDOW", "10m")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")

	config := LoadConfig()
	generate := MatchEndpoint("/generate", "POST", config.EndpointConfigs)
	if generate.Limit != 5 || generate.Window != 10*time.Minute {
		t.Errorf("Expected env override, got %+v", *generate)
	}
	if !config.Whitelist["10.0.0.2"] {
		t.Error("Expected whitelist to be parsed")
	}
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	if LoadConfig().Enabled {
		t.Error("Expected rate limiting to be disabled")
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/generate", Method: "POST", Limit: 1},
		{Path: "/drafts/", Method: "GET", Limit: 2},
	}

	if got := MatchEndpoint("/health", "GET", configs); got == nil || got.Limit != 0 {
		t.Error("Expected health check to be unlimited")
	}
	if got := MatchEndpoint("/generate", "POST", configs); got == nil || got.Limit != 1 {
		t.Error("Expected exact match for /generate")
	}
	if got := MatchEndpoint("/generate", "GET", configs); got != nil {
		t.Error("Expected method mismatch to return nil")
	}
	if got := MatchEndpoint("/drafts/42", "GET", configs); got == nil || got.Limit != 2 {
		t.Error("Expected prefix match for /drafts/")
	}
}

func TestLoadConfig_InvalidEnvFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "lots")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "soon")
	t.Setenv("RATE_LIMIT_BLACKLIST", " , 10.0.0.9 ,")

	config := LoadConfig()
	if config.DefaultLimit != 1000 || config.DefaultWindow != time.Minute {
		t.Errorf("Expected defaults on unparseable values, got %d per %v", config.DefaultLimit, config.DefaultWindow)
	}
	if len(config.Blacklist) != 1 || !config.Blacklist["10.0.0.9"] {
		t.Errorf("Expected one blacklisted client, got %v", config.Blacklist)
	}
}

func TestMatchEndpoint_ExactBeatsPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/drafts/", Method: "GET", Limit: 2},
		{Path: "/drafts/latest", Method: "GET", Limit: 7},
	}
	if got := MatchEndpoint("/drafts/latest", "GET", configs); got == nil || got.Limit != 7 {
		t.Errorf("Expected exact match to win, got %+v", got)
	}
}
