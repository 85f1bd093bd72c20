// Package llm wraps a generative text provider with the guarantees the
// newsdesk core relies on: one call per Generate, a hard per-call timeout,
// and a single failure sentinel (domain.ErrGenerationFailed) for every way a
// call can go wrong, including an empty reply.
package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/metrics"
)

// Request is one chat-style completion request.
type Request struct {
	Model     string
	System    string
	User      string
	MaxTokens int
}

// Provider is a concrete generative service SDK binding.
type Provider interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Options configures a Client.
type Options struct {
	Purpose   string // metrics label, see metrics.Purpose*
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client issues timeout-bounded calls to a Provider.
type Client struct {
	provider Provider
	opts     Options
	metrics  *metrics.Metrics
	log      *slog.Logger
}

// NewClient creates a Client. m may be nil.
func NewClient(p Provider, opts Options, m *metrics.Metrics, logger *slog.Logger) *Client {
	return &Client{
		provider: p,
		opts:     opts,
		metrics:  m,
		log:      logger.With("adapter", "llm", "purpose", opts.Purpose),
	}
}

// Generate sends system and user prompts and returns the trimmed reply text.
// Any provider error, timeout or empty reply wraps domain.ErrGenerationFailed.
func (c *Client) Generate(ctx context.Context, system, user string) (string, error) {
	callCtx := ctx
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := c.provider.Complete(callCtx, Request{
		Model:     c.opts.Model,
		System:    system,
		User:      user,
		MaxTokens: c.opts.MaxTokens,
	})
	elapsed := time.Since(start)

	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			outcome = metrics.OutcomeTimeout
		}
		c.metrics.ObserveLLMCall(c.opts.Purpose, outcome, elapsed)
		c.log.WarnContext(ctx, "llm call failed",
			slog.String("model", c.opts.Model),
			slog.String("outcome", outcome),
			slog.Duration("elapsed", elapsed),
			slog.String("error", err.Error()),
		)
		return "", fmt.Errorf("llm %s: %w: %w", c.opts.Purpose, domain.ErrGenerationFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		c.metrics.ObserveLLMCall(c.opts.Purpose, metrics.OutcomeEmpty, elapsed)
		c.log.WarnContext(ctx, "llm returned empty text", slog.String("model", c.opts.Model))
		return "", fmt.Errorf("llm %s: empty reply: %w", c.opts.Purpose, domain.ErrGenerationFailed)
	}

	c.metrics.ObserveLLMCall(c.opts.Purpose, metrics.OutcomeSuccess, elapsed)
	c.log.DebugContext(ctx, "llm call done",
		slog.String("model", c.opts.Model),
		slog.Duration("elapsed", elapsed),
		slog.Int("chars", len(text)),
	)
	return text, nil
}
