package ratelimit

import (
	"strings"
	"time"
)

// EndpointConfig is the bucket shape for one route. A Path ending in "/"
// covers every path below it. Limit is requests per Window and 0 disables
// limiting; Burst defaults to Limit.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// unlimited holds routes that never consume tokens, keyed like ServeMux patterns.
var unlimited = map[string]bool{
	"GET /health": true,
}

// MatchEndpoint picks the config for a request. Exact paths win over
// prefixes; nil means the caller's defaults apply.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	if unlimited[method+" "+path] {
		return &EndpointConfig{Path: path, Method: method}
	}

	var prefix *EndpointConfig
	for i := range configs {
		c := &configs[i]
		if c.Method != method {
			continue
		}
		if c.Path == path {
			return c
		}
		if prefix == nil && strings.HasSuffix(c.Path, "/") && strings.HasPrefix(path, c.Path) {
			prefix = c
		}
	}
	return prefix
}
