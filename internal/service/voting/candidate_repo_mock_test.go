package voting

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

var _ candidateRepo = &candidateRepoMock{}

type candidateRepoMock struct {
	CreateFunc         func(ctx context.Context, keyword string, createdBy string) (*domain.VotingCandidate, error)
	DeleteAllFunc      func(ctx context.Context) (int64, error)
	IncrementVotesFunc func(ctx context.Context, id uuid.UUID) (*domain.VotingCandidate, error)
	ListFunc           func(ctx context.Context) ([]domain.VotingCandidate, error)
	TopFunc            func(ctx context.Context, n int) ([]domain.VotingCandidate, error)

	calls struct {
		Create []struct {
			Ctx       context.Context
			Keyword   string
			CreatedBy string
		}
		DeleteAll []struct {
			Ctx context.Context
		}
		IncrementVotes []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		Top []struct {
			Ctx context.Context
			N   int
		}
	}
	lockCreate         sync.RWMutex
	lockDeleteAll      sync.RWMutex
	lockIncrementVotes sync.RWMutex
	lockList           sync.RWMutex
	lockTop            sync.RWMutex
}

func (mock *candidateRepoMock) Create(ctx context.Context, keyword string, createdBy string) (*domain.VotingCandidate, error) {
	if mock.CreateFunc == nil {
		panic("candidateRepoMock.CreateFunc: method is nil but candidateRepo.Create was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Keyword   string
		CreatedBy string
	}{Ctx: ctx, Keyword: keyword, CreatedBy: createdBy}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, keyword, createdBy)
}

func (mock *candidateRepoMock) CreateCalls() []struct {
	Ctx       context.Context
	Keyword   string
	CreatedBy string
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *candidateRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	if mock.DeleteAllFunc == nil {
		panic("candidateRepoMock.DeleteAllFunc: method is nil but candidateRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx)
}

func (mock *candidateRepoMock) DeleteAllCalls() []struct {
	Ctx context.Context
} {
	mock.lockDeleteAll.RLock()
	calls := mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

func (mock *candidateRepoMock) IncrementVotes(ctx context.Context, id uuid.UUID) (*domain.VotingCandidate, error) {
	if mock.IncrementVotesFunc == nil {
		panic("candidateRepoMock.IncrementVotesFunc: method is nil but candidateRepo.IncrementVotes was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockIncrementVotes.Lock()
	mock.calls.IncrementVotes = append(mock.calls.IncrementVotes, callInfo)
	mock.lockIncrementVotes.Unlock()
	return mock.IncrementVotesFunc(ctx, id)
}

func (mock *candidateRepoMock) IncrementVotesCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockIncrementVotes.RLock()
	calls := mock.calls.IncrementVotes
	mock.lockIncrementVotes.RUnlock()
	return calls
}

func (mock *candidateRepoMock) List(ctx context.Context) ([]domain.VotingCandidate, error) {
	if mock.ListFunc == nil {
		panic("candidateRepoMock.ListFunc: method is nil but candidateRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *candidateRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *candidateRepoMock) Top(ctx context.Context, n int) ([]domain.VotingCandidate, error) {
	if mock.TopFunc == nil {
		panic("candidateRepoMock.TopFunc: method is nil but candidateRepo.Top was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   int
	}{Ctx: ctx, N: n}
	mock.lockTop.Lock()
	mock.calls.Top = append(mock.calls.Top, callInfo)
	mock.lockTop.Unlock()
	return mock.TopFunc(ctx, n)
}

func (mock *candidateRepoMock) TopCalls() []struct {
	Ctx context.Context
	N   int
} {
	mock.lockTop.RLock()
	calls := mock.calls.Top
	mock.lockTop.RUnlock()
	return calls
}
