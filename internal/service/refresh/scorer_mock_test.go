package refresh

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ scorer = &scorerMock{}

type scorerMock struct {
	ScoreFunc func(ctx context.Context, topicID uuid.UUID) (float64, error)

	calls struct {
		Score []struct {
			Ctx     context.Context
			TopicID uuid.UUID
		}
	}
	lockScore sync.RWMutex
}

func (mock *scorerMock) Score(ctx context.Context, topicID uuid.UUID) (float64, error) {
	if mock.ScoreFunc == nil {
		panic("scorerMock.ScoreFunc: method is nil but scorer.Score was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID uuid.UUID
	}{Ctx: ctx, TopicID: topicID}
	mock.lockScore.Lock()
	mock.calls.Score = append(mock.calls.Score, callInfo)
	mock.lockScore.Unlock()
	return mock.ScoreFunc(ctx, topicID)
}

func (mock *scorerMock) ScoreCalls() []struct {
	Ctx     context.Context
	TopicID uuid.UUID
} {
	mock.lockScore.RLock()
	calls := mock.calls.Score
	mock.lockScore.RUnlock()
	return calls
}
