package generation

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

var _ topicRegistry = &topicRegistryMock{}

type topicRegistryMock struct {
	GetOrCreateFunc func(ctx context.Context, keywords []string, createdBy *string) (*domain.Topic, bool, error)

	calls struct {
		GetOrCreate []struct {
			Ctx       context.Context
			Keywords  []string
			CreatedBy *string
		}
	}
	lockGetOrCreate sync.RWMutex
}

func (mock *topicRegistryMock) GetOrCreate(ctx context.Context, keywords []string, createdBy *string) (*domain.Topic, bool, error) {
	if mock.GetOrCreateFunc == nil {
		panic("topicRegistryMock.GetOrCreateFunc: method is nil but topicRegistry.GetOrCreate was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Keywords  []string
		CreatedBy *string
	}{Ctx: ctx, Keywords: keywords, CreatedBy: createdBy}
	mock.lockGetOrCreate.Lock()
	mock.calls.GetOrCreate = append(mock.calls.GetOrCreate, callInfo)
	mock.lockGetOrCreate.Unlock()
	return mock.GetOrCreateFunc(ctx, keywords, createdBy)
}

func (mock *topicRegistryMock) GetOrCreateCalls() []struct {
	Ctx       context.Context
	Keywords  []string
	CreatedBy *string
} {
	mock.lockGetOrCreate.RLock()
	calls := mock.calls.GetOrCreate
	mock.lockGetOrCreate.RUnlock()
	return calls
}
