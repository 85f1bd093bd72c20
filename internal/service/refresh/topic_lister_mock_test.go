package refresh

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

var _ topicLister = &topicListerMock{}

type topicListerMock struct {
	ListFunc func(ctx context.Context, offset int, limit int) ([]domain.Topic, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			Offset int
			Limit  int
		}
	}
	lockList sync.RWMutex
}

func (mock *topicListerMock) List(ctx context.Context, offset int, limit int) ([]domain.Topic, error) {
	if mock.ListFunc == nil {
		panic("topicListerMock.ListFunc: method is nil but topicLister.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Offset int
		Limit  int
	}{Ctx: ctx, Offset: offset, Limit: limit}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, offset, limit)
}

func (mock *topicListerMock) ListCalls() []struct {
	Ctx    context.Context
	Offset int
	Limit  int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
