package scoring

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
)

var _ updateRepo = &updateRepoMock{}

type updateRepoMock struct {
	LatestFunc   func(ctx context.Context, topicID uuid.UUID) (*domain.Update, error)
	SetScoreFunc func(ctx context.Context, updateID uuid.UUID, score float64) error

	calls struct {
		Latest []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
		SetScore []struct {
			Ctx      context.Context
			UpdateID uuid.UUID
			Score    float64
		}
	}
	lockLatest   sync.RWMutex
	lockSetScore sync.RWMutex
}

func (mock *updateRepoMock) Latest(ctx context.Context, topicID uuid.UUID) (*domain.Update, error) {
	if mock.LatestFunc == nil {
		panic("updateRepoMock.LatestFunc: method is nil but updateRepo.Latest was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockLatest.Lock()
	mock.calls.Latest = append(mock.calls.Latest, callInfo)
	mock.lockLatest.Unlock()
	return mock.LatestFunc(ctx, topicID)
}

func (mock *updateRepoMock) LatestCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockLatest.RLock()
	calls := mock.calls.Latest
	mock.lockLatest.RUnlock()
	return calls
}

func (mock *updateRepoMock) SetScore(ctx context.Context, updateID uuid.UUID, score float64) error {
	if mock.SetScoreFunc == nil {
		panic("updateRepoMock.SetScoreFunc: method is nil but updateRepo.SetScore was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		UpdateID uuid.UUID
		Score    float64
	}{Ctx: ctx, UpdateID: updateID, Score: score}
	mock.lockSetScore.Lock()
	mock.calls.SetScore = append(mock.calls.SetScore, callInfo)
	mock.lockSetScore.Unlock()
	return mock.SetScoreFunc(ctx, updateID, score)
}

func (mock *updateRepoMock) SetScoreCalls() []struct {
	Ctx      context.Context
	UpdateID uuid.UUID
	Score    float64
} {
	mock.lockSetScore.RLock()
	calls := mock.calls.SetScore
	mock.lockSetScore.RUnlock()
	return calls
}
