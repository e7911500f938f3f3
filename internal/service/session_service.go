package service

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SessionService interface {
	Create(caller *auth.Identity, req dto.CreateSessionRequest) (*dto.SessionResponse, error)
	Get(caller *auth.Identity, id uuid.UUID) (*dto.SessionResponse, error)
	List(caller *auth.Identity, query dto.SessionListQuery) ([]dto.SessionResponse, error)
	// Update applies a partial update. Concurrent updates are last-write-wins.
	Update(caller *auth.Identity, id uuid.UUID, req dto.UpdateSessionRequest) (*dto.SessionResponse, error)
	// Complete scores the answers, finishes the session and records one Result per topic.
	Complete(caller *auth.Identity, id uuid.UUID) (*dto.CompleteSessionResponse, error)
}

type sessionService struct {
	db           *gorm.DB
	sessionRepo  repository.SessionRepository
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	topicRepo    repository.TopicRepository
	now          func() time.Time
}

func NewSessionService(
	db *gorm.DB,
	sessionRepo repository.SessionRepository,
	questionRepo repository.QuestionRepository,
	answerRepo repository.AnswerRepository,
	topicRepo repository.TopicRepository,
) SessionService {
	return &sessionService{
		db:           db,
		sessionRepo:  sessionRepo,
		questionRepo: questionRepo,
		answerRepo:   answerRepo,
		topicRepo:    topicRepo,
		now:          time.Now,
	}
}

func (s *sessionService) Create(caller *auth.Identity, req dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	req.Normalize()
	if !req.Type.Valid() {
		return nil, newError(ErrValidation, "unknown session type %q", req.Type)
	}
	ids := dedupeIDs(req.QuestionIDs)
	if len(ids) == 0 {
		return nil, newError(ErrValidation, "a session needs at least one question")
	}
	if err := s.checkQuestionsExist(ids); err != nil {
		return nil, err
	}
	config, err := normalizeConfig(req.Config)
	if err != nil {
		return nil, err
	}

	session := model.TestSession{
		ID:               uuid.New(),
		UserID:           caller.UserID,
		Type:             req.Type,
		QuestionIDs:      datatypes.NewJSONType(ids),
		CurrentIndex:     req.CurrentIndex,
		Answers:          datatypes.NewJSONType(nonNilAnswers(req.Answers)),
		RemainingSeconds: req.RemainingSeconds,
		State:            model.SessionInProgress,
		Config:           config,
	}
	if err := validateSessionShape(&session); err != nil {
		return nil, err
	}
	if err := s.checkAnswersBelong(req.Answers); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Create(&session); err != nil {
		log.Error().Err(err).Uint("userID", caller.UserID).Msg("CreateSession: insert failed")
		return nil, err
	}
	resp := toSessionResponse(&session)
	return &resp, nil
}

func (s *sessionService) Get(caller *auth.Identity, id uuid.UUID) (*dto.SessionResponse, error) {
	session, err := s.load(caller, id)
	if err != nil {
		return nil, err
	}
	resp := toSessionResponse(session)
	return &resp, nil
}

func (s *sessionService) List(caller *auth.Identity, query dto.SessionListQuery) ([]dto.SessionResponse, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	sessions, err := s.sessionRepo.ListForUser(caller.UserID, repository.SessionFilter{
		Pending: query.Pending,
		Type:    query.Type,
		Limit:   query.Limit,
	})
	if err != nil {
		log.Error().Err(err).Uint("userID", caller.UserID).Msg("ListSessions: repository error")
		return nil, err
	}
	out := make([]dto.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, toSessionResponse(&sessions[i]))
	}
	return out, nil
}

func (s *sessionService) Update(caller *auth.Identity, id uuid.UUID, req dto.UpdateSessionRequest) (*dto.SessionResponse, error) {
	session, err := s.load(caller, id)
	if err != nil {
		return nil, err
	}
	if session.State.Terminal() {
		return nil, newError(ErrConflict, "session is already %s", session.State)
	}
	req.Normalize()

	if len(req.QuestionIDs) > 0 {
		ids := dedupeIDs(req.QuestionIDs)
		if err := s.checkQuestionsExist(ids); err != nil {
			return nil, err
		}
		session.QuestionIDs = datatypes.NewJSONType(ids)
	}
	if req.CurrentIndex != nil {
		session.CurrentIndex = *req.CurrentIndex
	}
	if len(req.Answers) > 0 {
		if err := s.checkAnswersBelong(req.Answers); err != nil {
			return nil, err
		}
		merged := nonNilAnswers(session.Answers.Data())
		for q, a := range req.Answers {
			merged[q] = a
		}
		session.Answers = datatypes.NewJSONType(merged)
	}
	if req.RemainingSeconds != nil {
		session.RemainingSeconds = req.RemainingSeconds
	}
	if len(req.Config) > 0 {
		if session.Config, err = normalizeConfig(req.Config); err != nil {
			return nil, err
		}
	}
	if req.State != nil {
		if !req.State.Valid() {
			return nil, newError(ErrValidation, "unknown state %q", *req.State)
		}
		if *req.State == model.SessionCompleted && len(session.QuestionIDs.Data()) == 0 {
			return nil, newError(ErrValidation, "a session without questions cannot be completed")
		}
		session.State = *req.State
	}
	if err := validateSessionShape(session); err != nil {
		return nil, err
	}

	if err := s.sessionRepo.Save(session); err != nil {
		log.Error().Err(err).Str("sessionID", id.String()).Msg("UpdateSession: save failed")
		return nil, err
	}
	resp := toSessionResponse(session)
	return &resp, nil
}

func (s *sessionService) Complete(caller *auth.Identity, id uuid.UUID) (*dto.CompleteSessionResponse, error) {
	session, err := s.load(caller, id)
	if err != nil {
		return nil, err
	}
	if session.State.Terminal() {
		return nil, newError(ErrConflict, "session is already %s", session.State)
	}
	ids := session.QuestionIDs.Data()
	if len(ids) == 0 {
		return nil, newError(ErrValidation, "a session without questions cannot be completed")
	}

	questions, err := s.questionRepo.FindByIDsWithAnswers(ids)
	if err != nil {
		log.Error().Err(err).Str("sessionID", id.String()).Msg("CompleteSession: loading questions failed")
		return nil, err
	}
	scores := scoreAnswers(questions, session.Answers.Data())

	takenAt := s.now()
	results := make([]model.Result, 0, len(scores))
	resp := &dto.CompleteSessionResponse{Topics: make([]dto.TopicScore, 0, len(scores))}
	for _, sc := range scores {
		if topic, err := s.topicRepo.FindByID(sc.TopicID); err == nil {
			sc.TopicSlug = topic.Slug
		}
		resp.Correct += sc.Correct
		resp.Total += sc.Total
		resp.Topics = append(resp.Topics, sc)
		results = append(results, model.Result{
			UserID:  caller.UserID,
			TopicID: sc.TopicID,
			Correct: sc.Correct,
			Total:   sc.Total,
			TakenAt: takenAt,
		})
	}
	resp.Percentage = percentage(resp.Correct, resp.Total)

	session.State = model.SessionCompleted
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := repository.NewSessionRepository(tx).Save(session); err != nil {
			return err
		}
		return repository.NewResultRepository(tx).CreateBatch(results)
	})
	if err != nil {
		log.Error().Err(err).Str("sessionID", id.String()).Msg("CompleteSession: transaction failed")
		return nil, err
	}

	log.Info().
		Str("sessionID", id.String()).
		Uint("userID", caller.UserID).
		Int("correct", resp.Correct).
		Int("total", resp.Total).
		Msg("Session completed")
	resp.Session = toSessionResponse(session)
	return resp, nil
}

func (s *sessionService) load(caller *auth.Identity, id uuid.UUID) (*model.TestSession, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	session, err := s.sessionRepo.FindForUser(id, caller.UserID)
	if err != nil {
		return nil, notFoundOr(err, "session")
	}
	return session, nil
}

func (s *sessionService) checkQuestionsExist(ids []uint) error {
	found, err := s.questionRepo.ExistingIDs(ids)
	if err != nil {
		return err
	}
	if len(found) != len(ids) {
		return newError(ErrValidation, "%d of the requested questions do not exist", len(ids)-len(found))
	}
	return nil
}

// checkAnswersBelong rejects answer ids that are unknown or belong to another question.
func (s *sessionService) checkAnswersBelong(answers map[uint]uint) error {
	if len(answers) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(answers))
	for _, a := range answers {
		ids = append(ids, a)
	}
	found, err := s.answerRepo.FindByIDs(ids)
	if err != nil {
		return err
	}
	for q, a := range answers {
		if ans, ok := found[a]; !ok || ans.QuestionID != q {
			return newError(ErrValidation, "answer %d does not belong to question %d", a, q)
		}
	}
	return nil
}

// scoreAnswers groups by topic in first-seen order. Unanswered questions count as wrong.
func scoreAnswers(questions []model.Question, answers map[uint]uint) []dto.TopicScore {
	byTopic := make(map[uint]*dto.TopicScore)
	var order []uint
	for i := range questions {
		q := &questions[i]
		sc, ok := byTopic[q.TopicID]
		if !ok {
			sc = &dto.TopicScore{TopicID: q.TopicID}
			byTopic[q.TopicID] = sc
			order = append(order, q.TopicID)
		}
		sc.Total++
		if correct := q.CorrectAnswer(); correct != nil && answers[q.ID] == correct.ID {
			sc.Correct++
		}
	}
	out := make([]dto.TopicScore, 0, len(order))
	for _, id := range order {
		out = append(out, *byTopic[id])
	}
	return out
}

func validateSessionShape(session *model.TestSession) error {
	ids := session.QuestionIDs.Data()
	if session.CurrentIndex < 0 || session.CurrentIndex > len(ids) {
		return newError(ErrValidation, "current_index %d is out of range", session.CurrentIndex)
	}
	inSession := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		inSession[id] = struct{}{}
	}
	var stray []uint
	for q := range session.Answers.Data() {
		if _, ok := inSession[q]; !ok {
			stray = append(stray, q)
		}
	}
	if len(stray) > 0 {
		sort.Slice(stray, func(i, j int) bool { return stray[i] < stray[j] })
		return newError(ErrValidation, "answers reference questions outside the session: %v", stray)
	}
	return nil
}

func normalizeConfig(raw json.RawMessage) (datatypes.JSON, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return datatypes.JSON("{}"), nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, newError(ErrValidation, "config must be a JSON object")
	}
	return datatypes.JSON(raw), nil
}

func dedupeIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func nonNilAnswers(m map[uint]uint) map[uint]uint {
	if m == nil {
		return map[uint]uint{}
	}
	return m
}

func toSessionResponse(session *model.TestSession) dto.SessionResponse {
	ids := session.QuestionIDs.Data()
	if ids == nil {
		ids = []uint{}
	}
	config := json.RawMessage(session.Config)
	if len(config) == 0 {
		config = json.RawMessage("{}")
	}
	return dto.SessionResponse{
		ID:               session.ID,
		Type:             session.Type,
		QuestionIDs:      ids,
		CurrentIndex:     session.CurrentIndex,
		Answers:          nonNilAnswers(session.Answers.Data()),
		RemainingSeconds: session.RemainingSeconds,
		State:            session.State,
		Config:           config,
		CreatedAt:        session.CreatedAt,
		UpdatedAt:        session.UpdatedAt,
	}
}
