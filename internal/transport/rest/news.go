package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/service/generation"
	"github.com/heartmarshall/newsdesk-backend/internal/validate"
	"github.com/heartmarshall/newsdesk-backend/pkg/ctxutil"
)

type feedService interface {
	Page(ctx context.Context, filter domain.UpdateFilter) ([]domain.Article, error)
	Search(ctx context.Context, rawKeyword string) ([]domain.Article, error)
	Article(ctx context.Context, rawID string) (*domain.Article, error)
}

type topicGenerator interface {
	Generate(ctx context.Context, in generation.GenerateInput) (*domain.Update, error)
}

// NewsHandler serves the news feed, search, article and topic submission endpoints.
type NewsHandler struct {
	feed      feedService
	generator topicGenerator
	log       *slog.Logger
}

// NewNewsHandler creates a NewsHandler.
func NewNewsHandler(feed feedService, generator topicGenerator, logger *slog.Logger) *NewsHandler {
	return &NewsHandler{
		feed:      feed,
		generator: generator,
		log:       logger.With("handler", "news"),
	}
}

type feedResponse struct {
	Page     int              `json:"page"`
	Group    string           `json:"group,omitempty"`
	Sort     string           `json:"sort"`
	Articles []updateResponse `json:"articles"`
}

// Feed handles GET /api/news?page=&group=&sort=.
func (h *NewsHandler) Feed(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if v := q.Get("page"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil || p < 1 || p > domain.MaxFeedPage {
			handleError(h.log, w, r, domain.NewValidationError("page",
				fmt.Sprintf("must be an integer between 1 and %d", domain.MaxFeedPage)))
			return
		}
		page = p
	}

	filter := domain.UpdateFilter{
		SortBy: q.Get("sort"),
		Skip:   (page - 1) * domain.DefaultPageSize,
		Limit:  domain.DefaultPageSize,
	}
	if g := q.Get("group"); g != "" {
		filter.Group = &g
	}
	filter = filter.Normalized()

	articles, err := h.feed.Page(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := feedResponse{Page: page, Sort: filter.SortBy, Articles: toArticleResponses(articles)}
	if filter.Group != nil {
		resp.Group = *filter.Group
	}
	writeJSON(w, http.StatusOK, resp)
}

// Search handles GET /api/search?keyword=.
func (h *NewsHandler) Search(w http.ResponseWriter, r *http.Request) {
	articles, err := h.feed.Search(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toArticleResponses(articles))
}

// Article handles GET /api/articles/{id}.
func (h *NewsHandler) Article(w http.ResponseWriter, r *http.Request) {
	a, err := h.feed.Article(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUpdateResponse(a.Update, a.Topic.Keywords))
}

type submitTopicRequest struct {
	Keywords string `json:"keywords"`
}

// SubmitTopic handles POST /api/topics. Authentication is optional; a
// logged-in submitter is recorded as the creator.
func (h *NewsHandler) SubmitTopic(w http.ResponseWriter, r *http.Request) {
	var req submitTopicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	keywords, err := validate.TopicList(req.Keywords)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	in := generation.GenerateInput{Keywords: keywords, Trigger: generation.TriggerSubmit}
	if username, ok := ctxutil.UsernameFromCtx(r.Context()); ok {
		in.CreatedBy = &username
	}

	upd, err := h.generator.Generate(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toUpdateResponse(*upd, keywords))
}
