package generation

import (
	"context"
	"sync"
)

var _ textGenerator = &textGeneratorMock{}

type textGeneratorMock struct {
	GenerateFunc func(ctx context.Context, system string, user string) (string, error)

	calls struct {
		Generate []struct {
			Ctx    context.Context
			System string
			User   string
		}
	}
	lockGenerate sync.RWMutex
}

func (mock *textGeneratorMock) Generate(ctx context.Context, system string, user string) (string, error) {
	if mock.GenerateFunc == nil {
		panic("textGeneratorMock.GenerateFunc: method is nil but textGenerator.Generate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		System string
		User   string
	}{Ctx: ctx, System: system, User: user}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, system, user)
}

func (mock *textGeneratorMock) GenerateCalls() []struct {
	Ctx    context.Context
	System string
	User   string
} {
	mock.lockGenerate.RLock()
	calls := mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}
