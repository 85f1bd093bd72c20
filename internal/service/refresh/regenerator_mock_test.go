package refresh

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

var _ regenerator = &regeneratorMock{}

type regeneratorMock struct {
	RegenerateFunc func(ctx context.Context, topic domain.Topic) (*domain.Update, error)

	calls struct {
		Regenerate []struct {
			Ctx   context.Context
			Topic domain.Topic
		}
	}
	lockRegenerate sync.RWMutex
}

func (mock *regeneratorMock) Regenerate(ctx context.Context, topic domain.Topic) (*domain.Update, error) {
	if mock.RegenerateFunc == nil {
		panic("regeneratorMock.RegenerateFunc: method is nil but regenerator.Regenerate was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Topic domain.Topic
	}{Ctx: ctx, Topic: topic}
	mock.lockRegenerate.Lock()
	mock.calls.Regenerate = append(mock.calls.Regenerate, callInfo)
	mock.lockRegenerate.Unlock()
	return mock.RegenerateFunc(ctx, topic)
}

func (mock *regeneratorMock) RegenerateCalls() []struct {
	Ctx   context.Context
	Topic domain.Topic
} {
	mock.lockRegenerate.RLock()
	calls := mock.calls.Regenerate
	mock.lockRegenerate.RUnlock()
	return calls
}
