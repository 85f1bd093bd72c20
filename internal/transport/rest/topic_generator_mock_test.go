package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/service/generation"
)

var _ topicGenerator = &topicGeneratorMock{}

type topicGeneratorMock struct {
	GenerateFunc func(ctx context.Context, in generation.GenerateInput) (*domain.Update, error)

	calls struct {
		Generate []struct {
			Ctx context.Context
			In  generation.GenerateInput
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *topicGeneratorMock) Generate(ctx context.Context, in generation.GenerateInput) (*domain.Update, error) {
	if mock.GenerateFunc == nil {
		panic("topicGeneratorMock.GenerateFunc: method is nil but topicGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  generation.GenerateInput
	}{Ctx: ctx, In: in}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, in)
}

func (mock *topicGeneratorMock) GenerateCalls() []struct {
	Ctx context.Context
	In  generation.GenerateInput
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
