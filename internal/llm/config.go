// Package llm wraps the language model used to extract jobs and draft emails.
package llm

// ModelTier is the capability level a prompt needs.
type ModelTier string

const (
	// TierLite is for cheap extraction.
	TierLite ModelTier = "lite"
	// TierStandard is for structured output such as the job list.
	TierStandard ModelTier = "standard"
	// TierAdvanced is for long-form writing such as the outreach email.
	TierAdvanced ModelTier = "advanced"
)

// Config maps tiers to Gemini model names.
type Config struct {
	Models      map[ModelTier]string
	Temperature float32
}

// DefaultConfig returns the Gemini models used by the generation service.
// Temperature is zero so repeated runs on one posting agree.
func DefaultConfig() *Config {
	return &Config{
		Models: map[ModelTier]string{
			TierLite:     "gemini-2.5-flash-lite",
			TierStandard: "gemini-2.5-flash",
			TierAdvanced: "gemini-2.5-pro",
		},
		Temperature: 0,
	}
}

// GetModel returns the model for tier, falling back to standard, then lite.
func (c *Config) GetModel(tier ModelTier) string {
	for _, t := range []ModelTier{tier, TierStandard, TierLite} {
		if model, ok := c.Models[t]; ok {
			return model
		}
	}
	return ""
}

// WithModel returns a copy of c with tier mapped to model.
func (c *Config) WithModel(tier ModelTier, model string) *Config {
	out := &Config{Models: make(map[ModelTier]string, len(c.Models)+1), Temperature: c.Temperature}
	for k, v := range c.Models {
		out.Models[k] = v
	}
	out.Models[tier] = model
	return out
}
