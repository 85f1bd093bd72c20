package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	GetFunc      func(ctx context.Context, username string) (*domain.User, error)
	LoginFunc    func(ctx context.Context, input user.LoginInput) (*user.LoginResult, error)
	RegisterFunc func(ctx context.Context, input user.RegisterInput) (*domain.User, error)

	calls struct {
		Get []struct {
			Ctx      context.Context
			Username string
		}
		Login []struct {
			Ctx   context.Context
			Input user.LoginInput
		}
		Register []struct {
			Ctx   context.Context
			Input user.RegisterInput
		}
	}
	lockGet      sync.RWMutex
	lockLogin    sync.RWMutex
	lockRegister sync.RWMutex
}

func (mock *userServiceMock) Get(ctx context.Context, username string) (*domain.User, error) {
	if mock.GetFunc == nil {
		panic("userServiceMock.GetFunc: method is nil but userService.Get was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, username)
}

func (mock *userServiceMock) GetCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *userServiceMock) Login(ctx context.Context, input user.LoginInput) (*user.LoginResult, error) {
	if mock.LoginFunc == nil {
		panic("userServiceMock.LoginFunc: method is nil but userService.Login was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.LoginInput
	}{Ctx: ctx, Input: input}
	mock.lockLogin.Lock()
	mock.calls.Login = append(mock.calls.Login, callInfo)
	mock.lockLogin.Unlock()
	return mock.LoginFunc(ctx, input)
}

func (mock *userServiceMock) LoginCalls() []struct {
	Ctx   context.Context
	Input user.LoginInput
} {
	mock.lockLogin.RLock()
	calls := mock.calls.Login
	mock.lockLogin.RUnlock()
	return calls
}

func (mock *userServiceMock) Register(ctx context.Context, input user.RegisterInput) (*domain.User, error) {
	if mock.RegisterFunc == nil {
		panic("userServiceMock.RegisterFunc: method is nil but userService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *userServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input user.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}
