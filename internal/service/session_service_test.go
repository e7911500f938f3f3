package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func newSessionService(db *gorm.DB) *sessionService {
	svc := NewSessionService(
		db,
		repository.NewSessionRepository(db),
		repository.NewQuestionRepository(db),
		repository.NewAnswerRepository(db),
		repository.NewTopicRepository(db),
	).(*sessionService)
	svc.now = fixedClock(time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC))
	return svc
}

func TestCreateSessionAcceptsLegacyField(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	topic := seedTopic(t, db, fx.Block1.ID, 1, false)
	qs := seedQuestions(t, db, topic.ID, 3)
	user := seedUser(t, db, "ana")
	svc := newSessionService(db)

	resp, err := svc.Create(identityFor(user), dto.CreateSessionRequest{
		LegacyQuestionIDs: []uint{qs[1].ID, qs[0].ID, qs[1].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, model.SessionTypeTopic, resp.Type)
	assert.Equal(t, model.SessionInProgress, resp.State)
	assert.Equal(t, []uint{qs[1].ID, qs[0].ID}, resp.QuestionIDs)
	assert.JSONEq(t, `{}`, string(resp.Config))
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestCreateSessionValidation(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	topic := seedTopic(t, db, fx.Block1.ID, 1, false)
	qs := seedQuestions(t, db, topic.ID, 2)
	user := seedUser(t, db, "ana")
	svc := newSessionService(db)

	tests := []struct {
		name    string
		req     dto.CreateSessionRequest
		wantErr error
	}{
		{"no questions", dto.CreateSessionRequest{}, ErrValidation},
		{"unknown type", dto.CreateSessionRequest{Type: "quiz", QuestionIDs: []uint{qs[0].ID}}, ErrValidation},
		{"unknown question", dto.CreateSessionRequest{QuestionIDs: []uint{qs[0].ID, 9999}}, ErrValidation},
		{"answer outside session", dto.CreateSessionRequest{
			QuestionIDs: []uint{qs[0].ID},
			Answers:     map[uint]uint{qs[1].ID: qs[1].Answers[0].ID},
		}, ErrValidation},
		{"answer of another question", dto.CreateSessionRequest{
			QuestionIDs: []uint{qs[0].ID, qs[1].ID},
			Answers:     map[uint]uint{qs[0].ID: qs[1].Answers[0].ID},
		}, ErrValidation},
		{"config not an object", dto.CreateSessionRequest{
			QuestionIDs: []uint{qs[0].ID},
			Config:      json.RawMessage(`[1,2]`),
		}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(identityFor(user), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := svc.Create(nil, dto.CreateSessionRequest{QuestionIDs: []uint{qs[0].ID}})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSessionsAreScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	topic := seedTopic(t, db, fx.Block1.ID, 1, false)
	qs := seedQuestions(t, db, topic.ID, 1)
	ana := seedUser(t, db, "ana")
	luis := seedUser(t, db, "luis")
	svc := newSessionService(db)

	created, err := svc.Create(identityFor(ana), dto.CreateSessionRequest{QuestionIDs: []uint{qs[0].ID}})
	require.NoError(t, err)

	_, err = svc.Get(identityFor(luis), created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(identityFor(luis), dto.SessionListQuery{})
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = svc.List(identityFor(ana), dto.SessionListQuery{Pending: true, Type: "topic"})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestUpdateSessionMergesAnswers(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	topic := seedTopic(t, db, fx.Block1.ID, 1, false)
	qs := seedQuestions(t, db, topic.ID, 3)
	user := seedUser(t, db, "ana")
	svc := newSessionService(db)

	created, err := svc.Create(identityFor(user), dto.CreateSessionRequest{
		QuestionIDs: []uint{qs[0].ID, qs[1].ID, qs[2].ID},
		Answers:     map[uint]uint{qs[0].ID: qs[0].Answers[1].ID},
	})
	require.NoError(t, err)

	idx, remaining := 2, 300
	updated, err := svc.Update(identityFor(user), created.ID, dto.UpdateSessionRequest{
		CurrentIndex:     &idx,
		RemainingSeconds: &remaining,
		Answers:          map[uint]uint{qs[1].ID: qs[1].Answers[0].ID},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.CurrentIndex)
	assert.Equal(t, 300, *updated.RemainingSeconds)
	assert.Equal(t, map[uint]uint{
		qs[0].ID: qs[0].Answers[1].ID,
		qs[1].ID: qs[1].Answers[0].ID,
	}, updated.Answers)

	tooFar := 9
	_, err = svc.Update(identityFor(user), created.ID, dto.UpdateSessionRequest{CurrentIndex: &tooFar})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateRejectsTerminalSession(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	topic := seedTopic(t, db, fx.Block1.ID, 1, false)
	qs := seedQuestions(t, db, topic.ID, 1)
	user := seedUser(t, db, "ana")
	svc := newSessionService(db)

	created, err := svc.Create(identityFor(user), dto.CreateSessionRequest{QuestionIDs: []uint{qs[0].ID}})
	require.NoError(t, err)
	abandoned := model.SessionAbandoned
	_, err = svc.Update(identityFor(user), created.ID, dto.UpdateSessionRequest{State: &abandoned})
	require.NoError(t, err)

	idx := 1
	_, err = svc.Update(identityFor(user), created.ID, dto.UpdateSessionRequest{CurrentIndex: &idx})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestCompletingSessionWithoutQuestionsIsRejected(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "ana")
	svc := newSessionService(db)

	empty := model.TestSession{
		ID:          uuid.New(),
		UserID:      user.ID,
		Type:        model.SessionTypeReview,
		QuestionIDs: datatypes.NewJSONType([]uint{}),
		Answers:     datatypes.NewJSONType(map[uint]uint{}),
		State:       model.SessionInProgress,
		Config:      datatypes.JSON("{}"),
	}
	require.NoError(t, db.Create(&empty).Error)

	completed := model.SessionCompleted
	_, err := svc.Update(identityFor(user), empty.ID, dto.UpdateSessionRequest{State: &completed})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Complete(identityFor(user), empty.ID)
	assert.ErrorIs(t, err, ErrValidation)

	stored, err := repository.NewSessionRepository(db).FindForUser(empty.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SessionInProgress, stored.State)
}

func TestCompleteScoresAndRecordsResultsPerTopic(t *testing.T) {
	db := newTestDB(t)
	fx := seedCatalog(t, db)
	t1 := seedTopic(t, db, fx.Block1.ID, 1, false)
	t2 := seedTopic(t, db, fx.Block2.ID, 1, false)
	q1 := seedQuestions(t, db, t1.ID, 2)
	q2 := seedQuestions(t, db, t2.ID, 2)
	user := seedUser(t, db, "ana")
	svc := newSessionService(db)

	created, err := svc.Create(identityFor(user), dto.CreateSessionRequest{
		QuestionIDs: []uint{q1[0].ID, q1[1].ID, q2[0].ID, q2[1].ID},
		Answers: map[uint]uint{
			q1[0].ID: q1[0].Answers[0].ID,
			q1[1].ID: q1[1].Answers[2].ID,
			q2[0].ID: q2[0].Answers[0].ID,
		},
	})
	require.NoError(t, err)

	resp, err := svc.Complete(identityFor(user), created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Correct)
	assert.Equal(t, 4, resp.Total)
	assert.Equal(t, 50.0, resp.Percentage)
	assert.Equal(t, model.SessionCompleted, resp.Session.State)
	require.Len(t, resp.Topics, 2)
	assert.Equal(t, dto.TopicScore{TopicID: t1.ID, TopicSlug: t1.Slug, Correct: 1, Total: 2}, resp.Topics[0])
	assert.Equal(t, dto.TopicScore{TopicID: t2.ID, TopicSlug: t2.Slug, Correct: 1, Total: 2}, resp.Topics[1])

	var results []model.Result
	require.NoError(t, db.Order("topic_id").Find(&results).Error)
	require.Len(t, results, 2)
	assert.Equal(t, user.ID, results[0].UserID)

	_, err = svc.Complete(identityFor(user), created.ID)
	assert.ErrorIs(t, err, ErrConflict)
}
