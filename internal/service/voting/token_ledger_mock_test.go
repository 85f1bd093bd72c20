package voting

import (
	"context"
	"sync"
)

var _ tokenLedger = &tokenLedgerMock{}

type tokenLedgerMock struct {
	ResetAllFunc func(ctx context.Context, tokens int) (int64, error)
	UseTokenFunc func(ctx context.Context, username string) (int, error)

	calls struct {
		ResetAll []struct {
			Ctx    context.Context
			Tokens int
		}
		UseToken []struct {
			Ctx      context.Context
			Username string
		}
	}
	lockResetAll sync.RWMutex
	lockUseToken sync.RWMutex
}

func (mock *tokenLedgerMock) ResetAll(ctx context.Context, tokens int) (int64, error) {
	if mock.ResetAllFunc == nil {
		panic("tokenLedgerMock.ResetAllFunc: method is nil but tokenLedger.ResetAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Tokens int
	}{Ctx: ctx, Tokens: tokens}
	mock.lockResetAll.Lock()
	mock.calls.ResetAll = append(mock.calls.ResetAll, callInfo)
	mock.lockResetAll.Unlock()
	return mock.ResetAllFunc(ctx, tokens)
}

func (mock *tokenLedgerMock) ResetAllCalls() []struct {
	Ctx    context.Context
	Tokens int
} {
	mock.lockResetAll.RLock()
	calls := mock.calls.ResetAll
	mock.lockResetAll.RUnlock()
	return calls
}

func (mock *tokenLedgerMock) UseToken(ctx context.Context, username string) (int, error) {
	if mock.UseTokenFunc == nil {
		panic("tokenLedgerMock.UseTokenFunc: method is nil but tokenLedger.UseToken was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Username string
	}{Ctx: ctx, Username: username}
	mock.lockUseToken.Lock()
	mock.calls.UseToken = append(mock.calls.UseToken, callInfo)
	mock.lockUseToken.Unlock()
	return mock.UseTokenFunc(ctx, username)
}

func (mock *tokenLedgerMock) UseTokenCalls() []struct {
	Ctx      context.Context
	Username string
} {
	mock.lockUseToken.RLock()
	calls := mock.calls.UseToken
	mock.lockUseToken.RUnlock()
	return calls
}
