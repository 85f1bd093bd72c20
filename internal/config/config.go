package config

import (
	"slices"
	"strings"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	CORS       CORSConfig       `yaml:"cors"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Log        LogConfig        `yaml:"log"`
	LLM        LLMConfig        `yaml:"llm"`
	Generation GenerationConfig `yaml:"generation"`
	Refresh    RefreshConfig    `yaml:"refresh"`
	Voting     VotingConfig     `yaml:"voting"`
	Cache      CacheConfig      `yaml:"cache"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"150s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access-token and password settings.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"newsdesk"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"24h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	AdminUsernames   []string      `yaml:"admin_usernames"    env:"AUTH_ADMIN_USERNAMES"    env-separator:","`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LLMConfig selects and configures the generative-text provider.
type LLMConfig struct {
	Provider      string        `yaml:"provider"       env:"LLM_PROVIDER"       env-default:"openai"`
	APIKey        string        `yaml:"api_key"        env:"LLM_API_KEY"`
	BaseURL       string        `yaml:"base_url"       env:"LLM_BASE_URL"`
	GenerateModel string        `yaml:"generate_model" env:"LLM_GENERATE_MODEL" env-default:"gpt-4o"`
	ScoreModel    string        `yaml:"score_model"    env:"LLM_SCORE_MODEL"    env-default:"gpt-4o-mini"`
	MaxTokens     int           `yaml:"max_tokens"     env:"LLM_MAX_TOKENS"     env-default:"1500"`
	Timeout       time.Duration `yaml:"timeout"        env:"LLM_TIMEOUT"        env-default:"60s"`
	ScoreTimeout  time.Duration `yaml:"score_timeout"  env:"LLM_SCORE_TIMEOUT"  env-default:"20s"`
}

// GenerationConfig controls article generation and output limits.
type GenerationConfig struct {
	InitialScore float64  `yaml:"initial_score" env:"GENERATION_INITIAL_SCORE" env-default:"1"`
	MaxWords     int      `yaml:"max_words"     env:"GENERATION_MAX_WORDS"     env-default:"500"`
	Groups       []string `yaml:"groups"        env:"GENERATION_GROUPS"        env-separator:"," env-default:"World,Politics,Business,Technology,Science,Health,Sports,Culture"`
}

// RefreshConfig controls the relevance refresh batch job.
type RefreshConfig struct {
	Threshold float64       `yaml:"threshold"  env:"REFRESH_THRESHOLD"  env-default:"0.5"`
	BatchSize int           `yaml:"batch_size" env:"REFRESH_BATCH_SIZE" env-default:"100"`
	Interval  time.Duration `yaml:"interval"   env:"REFRESH_INTERVAL"   env-default:"6h"`
}

// VotingConfig controls token budgets and weekly promotion.
type VotingConfig struct {
	StartingTokens      int           `yaml:"starting_tokens"      env:"VOTING_STARTING_TOKENS"      env-default:"3"`
	PromoteTop          int           `yaml:"promote_top"          env:"VOTING_PROMOTE_TOP"          env-default:"5"`
	PromotionScore      float64       `yaml:"promotion_score"      env:"VOTING_PROMOTION_SCORE"      env-default:"1"`
	ConsolidateInterval time.Duration `yaml:"consolidate_interval" env:"VOTING_CONSOLIDATE_INTERVAL" env-default:"168h"`
}

// CacheConfig holds the optional Redis feed cache settings.
// An empty RedisURL disables caching.
type CacheConfig struct {
	RedisURL string        `yaml:"redis_url" env:"CACHE_REDIS_URL"`
	FeedTTL  time.Duration `yaml:"feed_ttl"  env:"CACHE_FEED_TTL"  env-default:"2m"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	RequestsPerMinute int           `yaml:"requests_per_minute" env:"RATE_LIMIT_RPM"      env-default:"120"`
	Burst             int           `yaml:"burst"               env:"RATE_LIMIT_BURST"    env-default:"20"`
	IdleTTL           time.Duration `yaml:"idle_ttl"            env:"RATE_LIMIT_IDLE_TTL" env-default:"10m"`
}

// IsAdmin reports whether username is configured as an administrator.
func (c AuthConfig) IsAdmin(username string) bool {
	return slices.ContainsFunc(c.AdminUsernames, func(a string) bool {
		return strings.EqualFold(strings.TrimSpace(a), username)
	})
}

// HasGroup reports whether name is one of the configured groups (case-insensitive)
// and returns its canonical spelling.
func (c GenerationConfig) HasGroup(name string) (string, bool) {
	name = strings.TrimSpace(name)
	for _, g := range c.Groups {
		if strings.EqualFold(strings.TrimSpace(g), name) {
			return strings.TrimSpace(g), true
		}
	}
	return "", false
}
