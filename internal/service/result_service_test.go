package service

import (
	"testing"
	"time"

	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultService(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	topic := seedTopic(t, db, fx.Block1.ID, 3, false)
	user := seedUser(t, db, "ana")
	svc := NewResultService(repository.NewResultRepository(db), repository.NewTopicRepository(db)).(*resultService)
	clock := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	first, err := svc.Create(identityFor(user), dto.CreateResultRequest{TopicID: topic.ID, Correct: 7, Total: 10})
	require.NoError(t, err)
	assert.Equal(t, topic.Slug, first.TopicSlug)
	assert.Equal(t, "Tema 3", first.TopicName)

	clock = clock.Add(time.Hour)
	_, err = svc.Create(identityFor(user), dto.CreateResultRequest{TopicSlug: topic.Slug, Correct: 10, Total: 10})
	require.NoError(t, err)

	list, err := svc.List(identityFor(user))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 10, list[0].Correct)
	assert.Equal(t, 7, list[1].Correct)

	tests := []struct {
		name    string
		req     dto.CreateResultRequest
		wantErr error
	}{
		{"correct above total", dto.CreateResultRequest{TopicID: topic.ID, Correct: 11, Total: 10}, ErrValidation},
		{"negative", dto.CreateResultRequest{TopicID: topic.ID, Correct: -1, Total: 10}, ErrValidation},
		{"no topic", dto.CreateResultRequest{Correct: 1, Total: 2}, ErrValidation},
		{"unknown topic", dto.CreateResultRequest{TopicSlug: "nope", Correct: 1, Total: 2}, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(identityFor(user), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
