package service

import (
	"github.com/jinzhu/copier"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	// FreePreviewSize is how many questions of a premium topic a non-subscriber sees.
	FreePreviewSize = 5

	MaxTopicQuestions = 20
	MaxDemoQuestions  = 15
)

type QuestionService interface {
	// ForTopic applies the premium gate for the caller (nil is anonymous).
	ForTopic(topicSlug string, caller *auth.Identity) (*dto.TopicQuestionsResponse, error)
	Details(ids []uint) ([]dto.QuestionDTO, error)
	Review(ids []uint) ([]dto.QuestionDetailDTO, error)
	Demo(n int) ([]dto.QuestionDTO, error)
}

type questionService struct {
	topicRepo    repository.TopicRepository
	questionRepo repository.QuestionRepository
}

func NewQuestionService(topicRepo repository.TopicRepository, questionRepo repository.QuestionRepository) QuestionService {
	return &questionService{topicRepo: topicRepo, questionRepo: questionRepo}
}

func (s *questionService) ForTopic(topicSlug string, caller *auth.Identity) (*dto.TopicQuestionsResponse, error) {
	topic, err := s.topicRepo.FindBySlug(topicSlug)
	if err != nil {
		return nil, notFoundOr(err, "topic")
	}

	preview := topic.Premium && !caller.HasPremium()
	var questions []model.Question
	if preview {
		questions, err = s.questionRepo.FindByTopicOrdered(topic.ID, FreePreviewSize)
	} else {
		questions, err = s.questionRepo.FindByTopicRandom(topic.ID, MaxTopicQuestions)
	}
	if err != nil {
		log.Error().Err(err).Uint("topicID", topic.ID).Bool("preview", preview).Msg("ForTopic: repository error")
		return nil, err
	}

	resp := &dto.TopicQuestionsResponse{Preview: preview}
	if err := copier.Copy(&resp.Topic, topic); err != nil {
		return nil, err
	}
	if resp.Questions, err = toQuestionDTOs(questions); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *questionService) Details(ids []uint) ([]dto.QuestionDTO, error) {
	questions, err := s.questionRepo.FindByIDsWithAnswers(ids)
	if err != nil {
		log.Error().Err(err).Int("count", len(ids)).Msg("Details: repository error")
		return nil, err
	}
	return toQuestionDTOs(questions)
}

func (s *questionService) Review(ids []uint) ([]dto.QuestionDetailDTO, error) {
	questions, err := s.questionRepo.FindByIDsWithAnswers(ids)
	if err != nil {
		log.Error().Err(err).Int("count", len(ids)).Msg("Review: repository error")
		return nil, err
	}
	out := make([]dto.QuestionDetailDTO, 0, len(questions))
	if err := copier.Copy(&out, &questions); err != nil {
		return nil, err
	}
	return out, nil
}

// Demo returns n random questions, n clamped to 1..MaxDemoQuestions.
func (s *questionService) Demo(n int) ([]dto.QuestionDTO, error) {
	questions, err := s.questionRepo.FindRandom(clamp(n, 1, MaxDemoQuestions))
	if err != nil {
		log.Error().Err(err).Msg("Demo: repository error")
		return nil, err
	}
	return toQuestionDTOs(questions)
}

func toQuestionDTOs(questions []model.Question) ([]dto.QuestionDTO, error) {
	out := make([]dto.QuestionDTO, 0, len(questions))
	if err := copier.Copy(&out, &questions); err != nil {
		return nil, err
	}
	return out, nil
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
