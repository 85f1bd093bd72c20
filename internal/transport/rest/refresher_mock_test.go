package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsdesk-backend/internal/service/refresh"
)

var _ refresher = &refresherMock{}

type refresherMock struct {
	RunFunc func(ctx context.Context) (refresh.Report, error)

	calls struct {
		Run []struct {
			Ctx context.Context
		}
	}
	lockRun sync.RWMutex
}

func (mock *refresherMock) Run(ctx context.Context) (refresh.Report, error) {
	if mock.RunFunc == nil {
		panic("refresherMock.RunFunc: method is nil but refresher.Run was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockRun.Lock()
	mock.calls.Run = append(mock.calls.Run, callInfo)
	mock.lockRun.Unlock()
	return mock.RunFunc(ctx)
}

func (mock *refresherMock) RunCalls() []struct {
	Ctx context.Context
} {
	mock.lockRun.RLock()
	calls := mock.calls.Run
	mock.lockRun.RUnlock()
	return calls
}
