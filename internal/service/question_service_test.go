package service

import (
	"testing"

	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForTopicPremiumGate(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	premium := seedTopic(t, db, fx.Block1.ID, 1, true)
	free := seedTopic(t, db, fx.Block1.ID, 2, false)
	seeded := seedQuestions(t, db, premium.ID, 30)
	seedQuestions(t, db, free.ID, 8)

	svc := NewQuestionService(repository.NewTopicRepository(db), repository.NewQuestionRepository(db))

	tests := []struct {
		name        string
		slug        string
		caller      *auth.Identity
		wantPreview bool
		wantCount   int
	}{
		{"anonymous on premium topic", premium.Slug, nil, true, FreePreviewSize},
		{"unsubscribed user on premium topic", premium.Slug, &auth.Identity{UserID: 7}, true, FreePreviewSize},
		{"subscriber on premium topic", premium.Slug, &auth.Identity{UserID: 7, Subscribed: true}, false, MaxTopicQuestions},
		{"anonymous on free topic", free.Slug, nil, false, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.ForTopic(tt.slug, tt.caller)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPreview, resp.Preview)
			assert.Len(t, resp.Questions, tt.wantCount)
			assert.Equal(t, tt.slug, resp.Topic.Slug)
		})
	}

	resp, err := svc.ForTopic(premium.Slug, nil)
	require.NoError(t, err)
	for i, q := range resp.Questions {
		assert.Equal(t, seeded[i].ID, q.ID, "preview keeps id order")
		assert.Len(t, q.Answers, 4)
	}
}

func TestForTopicUnknownSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewQuestionService(repository.NewTopicRepository(db), repository.NewQuestionRepository(db))
	_, err := svc.ForTopic("missing", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReviewKeepsRequestedOrderAndShowsCorrect(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	topic := seedTopic(t, db, fx.Block1.ID, 1, false)
	qs := seedQuestions(t, db, topic.ID, 3)
	svc := NewQuestionService(repository.NewTopicRepository(db), repository.NewQuestionRepository(db))

	out, err := svc.Review([]uint{qs[2].ID, qs[0].ID})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, qs[2].ID, out[0].ID)
	assert.Equal(t, qs[0].ID, out[1].ID)
	assert.True(t, out[0].Answers[0].IsCorrect)
	assert.False(t, out[0].Answers[1].IsCorrect)
}

func TestDemoClampsCount(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	topic := seedTopic(t, db, fx.Block1.ID, 1, true)
	seedQuestions(t, db, topic.ID, 20)
	svc := NewQuestionService(repository.NewTopicRepository(db), repository.NewQuestionRepository(db))

	for n, want := range map[int]int{0: 1, 3: 3, 99: MaxDemoQuestions} {
		out, err := svc.Demo(n)
		require.NoError(t, err)
		assert.Len(t, out, want, "n=%d", n)
	}
}
