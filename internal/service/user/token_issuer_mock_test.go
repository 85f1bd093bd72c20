package user

import (
	"sync"
)

var _ tokenIssuer = &tokenIssuerMock{}

type tokenIssuerMock struct {
	GenerateAccessTokenFunc func(username string, role string) (string, error)

	calls struct {
		GenerateAccessToken []struct {
			Username string
			Role     string
		}
	}
	lockGenerateAccessToken sync.RWMutex
}

func (mock *tokenIssuerMock) GenerateAccessToken(username string, role string) (string, error) {
	if mock.GenerateAccessTokenFunc == nil {
		panic("tokenIssuerMock.GenerateAccessTokenFunc: method is nil but tokenIssuer.GenerateAccessToken was just called")
	}
	callInfo := struct {
		Username string
		Role     string
	}{Username: username, Role: role}
	mock.lockGenerateAccessToken.Lock()
	mock.calls.GenerateAccessToken = append(mock.calls.GenerateAccessToken, callInfo)
	mock.lockGenerateAccessToken.Unlock()
	return mock.GenerateAccessTokenFunc(username, role)
}

func (mock *tokenIssuerMock) GenerateAccessTokenCalls() []struct {
	Username string
	Role     string
} {
	mock.lockGenerateAccessToken.RLock()
	calls := mock.calls.GenerateAccessToken
	mock.lockGenerateAccessToken.RUnlock()
	return calls
}
