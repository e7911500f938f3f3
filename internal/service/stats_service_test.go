package service

import (
	"testing"
	"time"

	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStatsService(db *gorm.DB, at time.Time) *statsService {
	svc := NewStatsService(repository.NewResultRepository(db)).(*statsService)
	svc.now = fixedClock(at)
	return svc
}

func TestStatsWithoutResults(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	svc := newStatsService(db, time.Now())

	_, err := svc.Stats(identityFor(user))
	assert.ErrorIs(t, err, ErrNoResults)

	_, err = svc.Reinforcement(identityFor(user))
	assert.ErrorIs(t, err, ErrNoResults)

	_, err = svc.Stats(nil)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestStatsAggregatesResults(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	t1 := seedTopic(t, db, fx.Block1.ID, 1, false)
	t2 := seedTopic(t, db, fx.Block1.ID, 2, false)
	user := seedUser(t, db, "ana")
	base := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	seedResult(t, db, user.ID, t1.ID, 9, 10, base)
	seedResult(t, db, user.ID, t2.ID, 4, 10, base.Add(24*time.Hour))

	svc := newStatsService(db, base)
	stats, err := svc.Stats(identityFor(user))
	require.NoError(t, err)

	assert.Equal(t, 65.0, stats.GlobalAccuracy)
	assert.Equal(t, 13, stats.Summary.Correct)
	assert.Equal(t, 7, stats.Summary.Incorrect)

	require.Len(t, stats.PerCategory, 1)
	assert.Equal(t, "auxiliar-administrativo", stats.PerCategory[0].Slug)
	assert.Equal(t, 65.0, stats.PerCategory[0].Accuracy)

	require.Len(t, stats.History, 2)
	assert.Equal(t, "03/03/2025", stats.History[0].Date)
	assert.Equal(t, "04/03/2025", stats.History[1].Date)
	assert.Equal(t, 90.0, *stats.History[0].Accuracy)

	require.Len(t, stats.Strengths, 2)
	assert.Equal(t, t1.ID, stats.Strengths[0].TopicID)
	require.Len(t, stats.Weaknesses, 2)
	assert.Equal(t, t2.ID, stats.Weaknesses[0].TopicID)

	reinforcement, err := svc.Reinforcement(identityFor(user))
	require.NoError(t, err)
	assert.Empty(t, reinforcement.Mastered)
	require.Len(t, reinforcement.Review, 1)
	assert.Equal(t, t1.ID, reinforcement.Review[0].TopicID)
	require.Len(t, reinforcement.Deepen, 1)
	assert.Equal(t, t2.ID, reinforcement.Deepen[0].TopicID)
}

func TestStatsHistoryKeepsLatestResults(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	topic := seedTopic(t, db, fx.Block1.ID, 1, false)
	user := seedUser(t, db, "ana")
	base := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 20; i++ {
		seedResult(t, db, user.ID, topic.ID, i%5, 5, base.AddDate(0, 0, i))
	}
	seedResult(t, db, user.ID, topic.ID, 0, 0, base.AddDate(0, 0, 30))

	stats, err := newStatsService(db, base).Stats(identityFor(user))
	require.NoError(t, err)
	require.Len(t, stats.History, historySize)
	assert.Equal(t, "07/01/2025", stats.History[0].Date)
	assert.Nil(t, stats.History[historySize-1].Accuracy)
}

func TestWeeklyRanking(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	topic := seedTopic(t, db, fx.Block1.ID, 1, false)
	ana := seedUser(t, db, "ana")
	bea := seedUser(t, db, "bea")
	carlos := seedUser(t, db, "carlos")
	dani := seedUser(t, db, "dani")

	// Wednesday; the week started on Monday 2025-03-10.
	current := time.Date(2025, 3, 12, 18, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	seedResult(t, db, ana.ID, topic.ID, 8, 10, monday.Add(time.Hour))
	seedResult(t, db, ana.ID, topic.ID, 10, 10, monday.Add(-time.Minute))
	seedResult(t, db, bea.ID, topic.ID, 8, 10, monday.Add(2*time.Hour))
	seedResult(t, db, carlos.ID, topic.ID, 9, 10, monday.Add(3*time.Hour))
	seedResult(t, db, dani.ID, topic.ID, 1, 10, monday.Add(4*time.Hour))

	svc := newStatsService(db, current)
	ranking, err := svc.Ranking(identityFor(dani))
	require.NoError(t, err)

	assert.True(t, ranking.WeekStart.Equal(monday))
	require.Len(t, ranking.Podium, podiumSize)
	assert.Equal(t, "carlos", ranking.Podium[0].Username)
	assert.Equal(t, "ana", ranking.Podium[1].Username)
	assert.Equal(t, 80.0, ranking.Podium[1].Accuracy)
	assert.Equal(t, "bea", ranking.Podium[2].Username)
	assert.Equal(t, 3, ranking.Podium[2].Rank)

	require.NotNil(t, ranking.Me)
	assert.Equal(t, 4, ranking.Me.Rank)
	assert.Equal(t, 10.0, ranking.Me.Accuracy)

	anonymous, err := svc.Ranking(nil)
	require.NoError(t, err)
	assert.Nil(t, anonymous.Me)
	assert.Len(t, anonymous.Podium, podiumSize)

	outsider, err := svc.Ranking(&auth.Identity{UserID: 999, Username: "nadie"})
	require.NoError(t, err)
	assert.Nil(t, outsider.Me)
}
