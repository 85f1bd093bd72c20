package generation

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

var _ updateStore = &updateStoreMock{}

type updateStoreMock struct {
	AppendFunc func(ctx context.Context, u *domain.Update) (*domain.Update, error)

	calls struct {
		Append []struct {
			Ctx context.Context
			U   *domain.Update
		}
	}
	lockAppend sync.RWMutex
}

func (mock *updateStoreMock) Append(ctx context.Context, u *domain.Update) (*domain.Update, error) {
	if mock.AppendFunc == nil {
		panic("updateStoreMock.AppendFunc: method is nil but updateStore.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		U   *domain.Update
	}{Ctx: ctx, U: u}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, u)
}

func (mock *updateStoreMock) AppendCalls() []struct {
	Ctx context.Context
	U   *domain.Update
} {
	mock.lockAppend.RLock()
	calls := mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
