package service

import (
	"time"

	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type ResultService interface {
	List(caller *auth.Identity) ([]dto.ResultDTO, error)
	Create(caller *auth.Identity, req dto.CreateResultRequest) (*dto.ResultDTO, error)
}

type resultService struct {
	resultRepo repository.ResultRepository
	topicRepo  repository.TopicRepository
	now        func() time.Time
}

func NewResultService(resultRepo repository.ResultRepository, topicRepo repository.TopicRepository) ResultService {
	return &resultService{
		resultRepo: resultRepo,
		topicRepo:  topicRepo,
		now:        time.Now,
	}
}

// List returns the caller's results, newest first.
func (s *resultService) List(caller *auth.Identity) ([]dto.ResultDTO, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	results, err := s.resultRepo.ListForUser(caller.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", caller.UserID).Msg("ListResults: repository error")
		return nil, err
	}
	out := make([]dto.ResultDTO, 0, len(results))
	for i := len(results) - 1; i >= 0; i-- {
		out = append(out, toResultDTO(&results[i]))
	}
	return out, nil
}

func (s *resultService) Create(caller *auth.Identity, req dto.CreateResultRequest) (*dto.ResultDTO, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	if req.Correct < 0 || req.Total < 0 || req.Correct > req.Total {
		return nil, newError(ErrValidation, "correct must be between 0 and total")
	}

	var (
		topic *model.Topic
		err   error
	)
	switch {
	case req.TopicID != 0:
		topic, err = s.topicRepo.FindByID(req.TopicID)
	case req.TopicSlug != "":
		topic, err = s.topicRepo.FindBySlug(req.TopicSlug)
	default:
		return nil, newError(ErrValidation, "topic_id or topic_slug is required")
	}
	if err != nil {
		return nil, notFoundOr(err, "topic")
	}

	result := model.Result{
		UserID:  caller.UserID,
		TopicID: topic.ID,
		Correct: req.Correct,
		Total:   req.Total,
		TakenAt: s.now(),
	}
	if err := s.resultRepo.Create(&result); err != nil {
		log.Error().Err(err).Uint("userID", caller.UserID).Uint("topicID", topic.ID).Msg("CreateResult: insert failed")
		return nil, err
	}
	result.Topic = *topic
	out := toResultDTO(&result)
	return &out, nil
}

func toResultDTO(r *model.Result) dto.ResultDTO {
	return dto.ResultDTO{
		ID:        r.ID,
		TopicID:   r.TopicID,
		TopicSlug: r.Topic.Slug,
		TopicName: r.Topic.OfficialName,
		Correct:   r.Correct,
		Total:     r.Total,
		TakenAt:   r.TakenAt,
	}
}
