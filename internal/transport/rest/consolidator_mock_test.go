package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsdesk-backend/internal/service/voting"
)

var _ consolidator = &consolidatorMock{}

type consolidatorMock struct {
	ConsolidateFunc func(ctx context.Context) (voting.ConsolidationReport, error)

	calls struct {
		Consolidate []struct {
			Ctx context.Context
		}
	}
	lockConsolidate sync.RWMutex
}

func (mock *consolidatorMock) Consolidate(ctx context.Context) (voting.ConsolidationReport, error) {
	if mock.ConsolidateFunc == nil {
		panic("consolidatorMock.ConsolidateFunc: method is nil but consolidator.Consolidate was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockConsolidate.Lock()
	mock.calls.Consolidate = append(mock.calls.Consolidate, callInfo)
	mock.lockConsolidate.Unlock()
	return mock.ConsolidateFunc(ctx)
}

func (mock *consolidatorMock) ConsolidateCalls() []struct {
	Ctx context.Context
} {
	mock.lockConsolidate.RLock()
	calls := mock.calls.Consolidate
	mock.lockConsolidate.RUnlock()
	return calls
}
