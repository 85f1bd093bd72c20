package feed

import (
	"context"
	"sync"
)

var _ pageCache = &pageCacheMock{}

type pageCacheMock struct {
	GetFunc func(ctx context.Context, name string) ([]byte, bool, error)
	SetFunc func(ctx context.Context, name string, data []byte) error

	calls struct {
		Get []struct {
			Ctx  context.Context
			Name string
		}
		Set []struct {
			Ctx  context.Context
			Name string
			Data []byte
		}
	}
	lockGet sync.RWMutex
	lockSet sync.RWMutex
}

func (mock *pageCacheMock) Get(ctx context.Context, name string) ([]byte, bool, error) {
	if mock.GetFunc == nil {
		panic("pageCacheMock.GetFunc: method is nil but pageCache.Get was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
	}{Ctx: ctx, Name: name}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, name)
}

func (mock *pageCacheMock) GetCalls() []struct {
	Ctx  context.Context
	Name string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *pageCacheMock) Set(ctx context.Context, name string, data []byte) error {
	if mock.SetFunc == nil {
		panic("pageCacheMock.SetFunc: method is nil but pageCache.Set was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Name string
		Data []byte
	}{Ctx: ctx, Name: name, Data: data}
	mock.lockSet.Lock()
	mock.calls.Set = append(mock.calls.Set, callInfo)
	mock.lockSet.Unlock()
	return mock.SetFunc(ctx, name, data)
}

func (mock *pageCacheMock) SetCalls() []struct {
	Ctx  context.Context
	Name string
	Data []byte
} {
	mock.lockSet.RLock()
	calls := mock.calls.Set
	mock.lockSet.RUnlock()
	return calls
}
