// Package app is the composition root: it builds every adapter, service and
// handler from a Config and runs them.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/newsdesk-backend/internal/adapter/cache"
	"github.com/heartmarshall/newsdesk-backend/internal/adapter/llm"
	"github.com/heartmarshall/newsdesk-backend/internal/adapter/llm/anthropic"
	"github.com/heartmarshall/newsdesk-backend/internal/adapter/llm/openai"
	"github.com/heartmarshall/newsdesk-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/newsdesk-backend/internal/adapter/postgres/audit"
	candidaterepo "github.com/heartmarshall/newsdesk-backend/internal/adapter/postgres/candidate"
	topicrepo "github.com/heartmarshall/newsdesk-backend/internal/adapter/postgres/topic"
	updaterepo "github.com/heartmarshall/newsdesk-backend/internal/adapter/postgres/update"
	userrepo "github.com/heartmarshall/newsdesk-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/newsdesk-backend/internal/auth"
	"github.com/heartmarshall/newsdesk-backend/internal/config"
	"github.com/heartmarshall/newsdesk-backend/internal/metrics"
	"github.com/heartmarshall/newsdesk-backend/internal/service/feed"
	"github.com/heartmarshall/newsdesk-backend/internal/service/generation"
	"github.com/heartmarshall/newsdesk-backend/internal/service/refresh"
	"github.com/heartmarshall/newsdesk-backend/internal/service/scoring"
	"github.com/heartmarshall/newsdesk-backend/internal/service/topic"
	"github.com/heartmarshall/newsdesk-backend/internal/service/user"
	"github.com/heartmarshall/newsdesk-backend/internal/service/voting"
	"github.com/heartmarshall/newsdesk-backend/internal/transport/middleware"
	"github.com/heartmarshall/newsdesk-backend/internal/transport/rest"
)

// A score reply is a single number.
const scoreMaxTokens = 16

// feedCache is the page cache shared by the feed reader and the generation
// pipeline. Either *cache.Redis or cache.Noop.
type feedCache interface {
	Get(ctx context.Context, name string) ([]byte, bool, error)
	Set(ctx context.Context, name string, data []byte) error
	Invalidate(ctx context.Context) error
	Ping(ctx context.Context) error
	Close() error
}

// App holds the wired dependency graph.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	pool     *pgxpool.Pool
	cache    feedCache
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	Users      *user.Service
	Topics     *topic.Service
	Feed       *feed.Service
	Scoring    *scoring.Service
	Generation *generation.Service
	Refresh    *refresh.Service
	Voting     *voting.Service

	jwt *auth.JWTManager
}

// New connects to the database and cache and builds every service.
// The caller must Close the returned App.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	fc, err := newCache(ctx, cfg.Cache, logger)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("app: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	a := &App{
		cfg:      cfg,
		log:      logger,
		pool:     pool,
		cache:    fc,
		registry: reg,
		metrics:  m,
		jwt:      auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
	a.wire()
	return a, nil
}

func newCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (feedCache, error) {
	if cfg.RedisURL == "" {
		logger.Info("feed cache disabled")
		return cache.Noop{}, nil
	}
	c, err := cache.NewRedis(ctx, cfg.RedisURL, cfg.FeedTTL)
	if err != nil {
		return nil, err
	}
	logger.Info("feed cache enabled", slog.Duration("ttl", cfg.FeedTTL))
	return c, nil
}

func newProvider(cfg config.LLMConfig) llm.Provider {
	if cfg.Provider == config.ProviderAnthropic {
		return anthropic.New(cfg.APIKey, cfg.BaseURL)
	}
	return openai.New(cfg.APIKey, cfg.BaseURL)
}

func (a *App) wire() {
	cfg := a.cfg

	topics := topicrepo.New(a.pool)
	updates := updaterepo.New(a.pool)
	candidates := candidaterepo.New(a.pool)
	users := userrepo.New(a.pool)
	auditLog := auditrepo.New(a.pool)
	tx := postgres.NewTxManager(a.pool)

	provider := newProvider(cfg.LLM)
	generateLLM := llm.NewClient(provider, llm.Options{
		Purpose:   metrics.PurposeGenerate,
		Model:     cfg.LLM.GenerateModel,
		MaxTokens: cfg.LLM.MaxTokens,
		Timeout:   cfg.LLM.Timeout,
	}, a.metrics, a.log)
	scoreLLM := llm.NewClient(provider, llm.Options{
		Purpose:   metrics.PurposeScore,
		Model:     cfg.LLM.ScoreModel,
		MaxTokens: scoreMaxTokens,
		Timeout:   cfg.LLM.ScoreTimeout,
	}, a.metrics, a.log)

	a.Users = user.NewService(a.log, users, a.jwt, cfg.Auth, cfg.Voting.StartingTokens)
	a.Topics = topic.NewService(a.log, topics, auditLog, tx)
	a.Feed = feed.NewService(a.log, updates, a.cache, a.metrics)
	a.Scoring = scoring.NewService(a.log, updates, scoreLLM)
	a.Generation = generation.NewService(a.log, cfg.Generation, a.Topics, updates, a.Scoring, generateLLM, a.cache, a.metrics)
	a.Refresh = refresh.NewService(a.log, cfg.Refresh, a.Topics, a.Scoring, a.Generation, a.metrics)
	a.Voting = voting.NewService(a.log, cfg.Voting, candidates, users, a.Generation, auditLog, tx, a.metrics)
}

// Close releases the database pool and cache connection.
func (a *App) Close() {
	if err := a.cache.Close(); err != nil {
		a.log.Warn("close cache", slog.String("error", err.Error()))
	}
	a.pool.Close()
}

// Handler builds the HTTP handler with the full middleware chain. The
// returned stop function releases the rate limiter's janitor.
func (a *App) Handler() (http.Handler, func()) {
	limiter := middleware.NewRateLimiter(a.cfg.RateLimit)

	router := rest.NewRouter(rest.Handlers{
		Health:  rest.NewHealthHandler(a.pool, a.cache, BuildVersion()),
		Auth:    rest.NewAuthHandler(a.Users, a.log),
		News:    rest.NewNewsHandler(a.Feed, a.Generation, a.log),
		Voting:  rest.NewVotingHandler(a.Voting, a.cfg.Voting.PromoteTop, a.log),
		Admin:   rest.NewAdminHandler(a.Refresh, a.Voting, a.log),
		Metrics: promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{}),
	})

	chain := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(a.log, a.metrics),
		middleware.Recovery(a.log),
		middleware.CORS(a.cfg.CORS),
		limiter.Limit(),
		middleware.Auth(a.jwt, a.log),
	)
	return chain(router), limiter.Stop
}

// Serve runs the HTTP server and the maintenance scheduler until ctx is
// cancelled, then shuts the server down gracefully.
func (a *App) Serve(ctx context.Context) error {
	handler, stop := a.Handler()
	defer stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		a.log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return runScheduler(gctx, a.log, a.jobs())
	})

	return g.Wait()
}

func (a *App) jobs() []job {
	return []job{
		{
			name:  "refresh",
			every: a.cfg.Refresh.Interval,
			run: func(ctx context.Context) error {
				_, err := a.Refresh.Run(ctx)
				return err
			},
		},
		{
			name:  "consolidate",
			every: a.cfg.Voting.ConsolidateInterval,
			run: func(ctx context.Context) error {
				_, err := a.Voting.Consolidate(ctx)
				return err
			},
		},
	}
}

// Migrate applies pending database migrations.
func Migrate(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	return postgres.Migrate(ctx, cfg.Database.DSN, logger)
}

// Run loads configuration, optionally migrates, and serves until ctx is done.
func Run(ctx context.Context, migrate bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	if migrate {
		if err := Migrate(ctx, cfg, logger); err != nil {
			return err
		}
	}

	a, err := New(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return a.Serve(ctx)
}
