package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

var _ votingService = &votingServiceMock{}

type votingServiceMock struct {
	ListFunc          func(ctx context.Context) ([]domain.VotingCandidate, error)
	ProposeFunc       func(ctx context.Context, username string, rawKeyword string) (*domain.VotingCandidate, error)
	TopCandidatesFunc func(ctx context.Context, n int) ([]domain.VotingCandidate, error)
	VoteFunc          func(ctx context.Context, username string, candidateID uuid.UUID) (*domain.VotingCandidate, error)

	calls struct {
		List []struct {
			Ctx context.Context
		}
		Propose []struct {
			Ctx        context.Context
			Username   string
			RawKeyword string
		}
		TopCandidates []struct {
			Ctx context.Context
			N   int
		}
		Vote []struct {
			Ctx         context.Context
			Username    string
			CandidateID uuid.UUID
		}
	}
	lockList          sync.RWMutex
	lockPropose       sync.RWMutex
	lockTopCandidates sync.RWMutex
	lockVote          sync.RWMutex
}

func (mock *votingServiceMock) List(ctx context.Context) ([]domain.VotingCandidate, error) {
	if mock.ListFunc == nil {
		panic("votingServiceMock.ListFunc: method is nil but votingService.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *votingServiceMock) ListCalls() []struct {
	Ctx context.Context
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *votingServiceMock) Propose(ctx context.Context, username string, rawKeyword string) (*domain.VotingCandidate, error) {
	if mock.ProposeFunc == nil {
		panic("votingServiceMock.ProposeFunc: method is nil but votingService.Propose was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Username   string
		RawKeyword string
	}{Ctx: ctx, Username: username, RawKeyword: rawKeyword}
	mock.lockPropose.Lock()
	mock.calls.Propose = append(mock.calls.Propose, callInfo)
	mock.lockPropose.Unlock()
	return mock.ProposeFunc(ctx, username, rawKeyword)
}

func (mock *votingServiceMock) ProposeCalls() []struct {
	Ctx        context.Context
	Username   string
	RawKeyword string
} {
	mock.lockPropose.RLock()
	calls := mock.calls.Propose
	mock.lockPropose.RUnlock()
	return calls
}

func (mock *votingServiceMock) TopCandidates(ctx context.Context, n int) ([]domain.VotingCandidate, error) {
	if mock.TopCandidatesFunc == nil {
		panic("votingServiceMock.TopCandidatesFunc: method is nil but votingService.TopCandidates was just called")
	}
	callInfo := struct {
		Ctx context.Context
		N   int
	}{Ctx: ctx, N: n}
	mock.lockTopCandidates.Lock()
	mock.calls.TopCandidates = append(mock.calls.TopCandidates, callInfo)
	mock.lockTopCandidates.Unlock()
	return mock.TopCandidatesFunc(ctx, n)
}

func (mock *votingServiceMock) TopCandidatesCalls() []struct {
	Ctx context.Context
	N   int
} {
	mock.lockTopCandidates.RLock()
	calls := mock.calls.TopCandidates
	mock.lockTopCandidates.RUnlock()
	return calls
}

func (mock *votingServiceMock) Vote(ctx context.Context, username string, candidateID uuid.UUID) (*domain.VotingCandidate, error) {
	if mock.VoteFunc == nil {
		panic("votingServiceMock.VoteFunc: method is nil but votingService.Vote was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Username    string
		CandidateID uuid.UUID
	}{Ctx: ctx, Username: username, CandidateID: candidateID}
	mock.lockVote.Lock()
	mock.calls.Vote = append(mock.calls.Vote, callInfo)
	mock.lockVote.Unlock()
	return mock.VoteFunc(ctx, username, candidateID)
}

func (mock *votingServiceMock) VoteCalls() []struct {
	Ctx         context.Context
	Username    string
	CandidateID uuid.UUID
} {
	mock.lockVote.RLock()
	calls := mock.calls.Vote
	mock.lockVote.RUnlock()
	return calls
}
