package feed

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

var _ updateReader = &updateReaderMock{}

type updateReaderMock struct {
	FindByKeywordFunc func(ctx context.Context, keyword string) ([]domain.Article, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	PageFunc          func(ctx context.Context, filter domain.UpdateFilter) ([]domain.Article, error)

	calls struct {
		FindByKeyword []struct {
			Ctx     context.Context
			Keyword string
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		Page []struct {
			Ctx    context.Context
			Filter domain.UpdateFilter
		}
	}
	lockFindByKeyword sync.RWMutex
	lockGetByID       sync.RWMutex
	lockPage          sync.RWMutex
}

func (mock *updateReaderMock) FindByKeyword(ctx context.Context, keyword string) ([]domain.Article, error) {
	if mock.FindByKeywordFunc == nil {
		panic("updateReaderMock.FindByKeywordFunc: method is nil but updateReader.FindByKeyword was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		Keyword string
	}{Ctx: ctx, Keyword: keyword}
	mock.lockFindByKeyword.Lock()
	mock.calls.FindByKeyword = append(mock.calls.FindByKeyword, callInfo)
	mock.lockFindByKeyword.Unlock()
	return mock.FindByKeywordFunc(ctx, keyword)
}

func (mock *updateReaderMock) FindByKeywordCalls() []struct {
	Ctx     context.Context
	Keyword string
} {
	mock.lockFindByKeyword.RLock()
	calls := mock.calls.FindByKeyword
	mock.lockFindByKeyword.RUnlock()
	return calls
}

func (mock *updateReaderMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if mock.GetByIDFunc == nil {
		panic("updateReaderMock.GetByIDFunc: method is nil but updateReader.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *updateReaderMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *updateReaderMock) Page(ctx context.Context, filter domain.UpdateFilter) ([]domain.Article, error) {
	if mock.PageFunc == nil {
		panic("updateReaderMock.PageFunc: method is nil but updateReader.Page was just called")
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

func (mock *updateReaderMock) PageCalls() []struct {
	Ctx    context.Context
	Filter domain.UpdateFilter
} {
	mock.lockPage.RLock()
	calls := mock.calls.Page
	mock.lockPage.RUnlock()
	return calls
}
