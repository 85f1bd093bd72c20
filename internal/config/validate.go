package config

import (
	"fmt"
	"strings"
)

// Supported LLM providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.PasswordHashCost < 4 || c.Auth.PasswordHashCost > 31 {
		return fmt.Errorf("auth.password_hash_cost must be in [4,31] (got %d)", c.Auth.PasswordHashCost)
	}

	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if err := c.Refresh.validate(); err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	if err := c.Voting.validate(); err != nil {
		return fmt.Errorf("voting: %w", err)
	}

	if c.RateLimit.RequestsPerMinute <= 0 {
		return fmt.Errorf("rate_limit.requests_per_minute must be > 0 (got %d)", c.RateLimit.RequestsPerMinute)
	}

	return nil
}

func (l *LLMConfig) validate() error {
	l.Provider = strings.ToLower(strings.TrimSpace(l.Provider))
	switch l.Provider {
	case ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown provider %q", l.Provider)
	}
	if l.APIKey == "" {
		return fmt.Errorf("api_key is required")
	}
	if l.Timeout <= 0 || l.ScoreTimeout <= 0 {
		return fmt.Errorf("timeouts must be > 0")
	}
	if l.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", l.MaxTokens)
	}
	return nil
}

func (g *GenerationConfig) validate() error {
	if g.InitialScore < 0 || g.InitialScore > 1 {
		return fmt.Errorf("initial_score must be in [0,1] (got %v)", g.InitialScore)
	}
	if g.MaxWords <= 0 {
		return fmt.Errorf("max_words must be > 0 (got %d)", g.MaxWords)
	}
	return nil
}

func (r *RefreshConfig) validate() error {
	if r.Threshold < 0 || r.Threshold > 1 {
		return fmt.Errorf("threshold must be in [0,1] (got %v)", r.Threshold)
	}
	if r.BatchSize <= 0 {
		return fmt.Errorf("batch_size must be > 0 (got %d)", r.BatchSize)
	}
	if r.Interval < 0 {
		return fmt.Errorf("interval must be >= 0 (got %v)", r.Interval)
	}
	return nil
}

func (v *VotingConfig) validate() error {
	if v.StartingTokens < 0 {
		return fmt.Errorf("starting_tokens must be >= 0 (got %d)", v.StartingTokens)
	}
	if v.PromoteTop <= 0 {
		return fmt.Errorf("promote_top must be > 0 (got %d)", v.PromoteTop)
	}
	if v.PromotionScore < 0 || v.PromotionScore > 1 {
		return fmt.Errorf("promotion_score must be in [0,1] (got %v)", v.PromotionScore)
	}
	if v.ConsolidateInterval < 0 {
		return fmt.Errorf("consolidate_interval must be >= 0 (got %v)", v.ConsolidateInterval)
	}
	return nil
}
