package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

var _ feedService = &feedServiceMock{}

type feedServiceMock struct {
	ArticleFunc func(ctx context.Context, rawID string) (*domain.Article, error)
	PageFunc    func(ctx context.Context, filter domain.UpdateFilter) ([]domain.Article, error)
	SearchFunc  func(ctx context.Context, rawKeyword string) ([]domain.Article, error)

	calls struct {
		Article []struct {
			Ctx   context.Context
			RawID string
		}
		Page []struct {
			Ctx    context.Context
			Filter domain.UpdateFilter
		}
		Search []struct {
			Ctx        context.Context
			RawKeyword string
		}
	}
	lockArticle sync.RWMutex
	lockPage    sync.RWMutex
	lockSearch  sync.RWMutex
}

func (mock *feedServiceMock) Article(ctx context.Context, rawID string) (*domain.Article, error) {
	if mock.ArticleFunc == nil {
		panic("feedServiceMock.ArticleFunc: method is nil but feedService.Article was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		RawID string
	}{Ctx: ctx, RawID: rawID}
	mock.lockArticle.Lock()
	mock.calls.Article = append(mock.calls.Article, callInfo)
	mock.lockArticle.Unlock()
	return mock.ArticleFunc(ctx, rawID)
}

func (mock *feedServiceMock) ArticleCalls() []struct {
	Ctx   context.Context
	RawID string
} {
	mock.lockArticle.RLock()
	calls := mock.calls.Article
	mock.lockArticle.RUnlock()
	return calls
}

func (mock *feedServiceMock) Page(ctx context.Context, filter domain.UpdateFilter) ([]domain.Article, error) {
	if mock.PageFunc == nil {
		panic("feedServiceMock.PageFunc: method is nil but feedService.Page was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Filter domain.UpdateFilter
	}{Ctx: ctx, Filter: filter}
	mock.lockPage.Lock()
	mock.calls.Page = append(mock.calls.Page, callInfo)
	mock.lockPage.Unlock()
	return mock.PageFunc(ctx, filter)
}

func (mock *feedServiceMock) PageCalls() []struct {
	Ctx    context.Context
	Filter domain.UpdateFilter
} {
	mock.lockPage.RLock()
	calls := mock.calls.Page
	mock.lockPage.RUnlock()
	return calls
}

func (mock *feedServiceMock) Search(ctx context.Context, rawKeyword string) ([]domain.Article, error) {
	if mock.SearchFunc == nil {
		panic("feedServiceMock.SearchFunc: method is nil but feedService.Search was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		RawKeyword string
	}{Ctx: ctx, RawKeyword: rawKeyword}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, rawKeyword)
}

func (mock *feedServiceMock) SearchCalls() []struct {
	Ctx        context.Context
	RawKeyword string
} {
	mock.lockSearch.RLock()
	calls := mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
