package service

import (
	"errors"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/opostest/backend/internal/slug"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AdminCatalogService interface {
	CreateCategory(req dto.CreateCategoryRequest) (*dto.CategorySummary, error)
	CreateBlock(req dto.CreateBlockRequest) (*dto.BlockDTO, error)
	CreateTopic(req dto.CreateTopicRequest) (*dto.TopicDTO, error)
	DeleteTopic(id uint) error
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionDetailDTO, error)
}

type adminCatalogService struct {
	categoryRepo repository.CategoryRepository
	blockRepo    repository.BlockRepository
	topicRepo    repository.TopicRepository
	questionRepo repository.QuestionRepository
}

func NewAdminCatalogService(
	categoryRepo repository.CategoryRepository,
	blockRepo repository.BlockRepository,
	topicRepo repository.TopicRepository,
	questionRepo repository.QuestionRepository,
) AdminCatalogService {
	return &adminCatalogService{
		categoryRepo: categoryRepo,
		blockRepo:    blockRepo,
		topicRepo:    topicRepo,
		questionRepo: questionRepo,
	}
}

func (s *adminCatalogService) CreateCategory(req dto.CreateCategoryRequest) (*dto.CategorySummary, error) {
	base := req.Slug
	if strings.TrimSpace(base) == "" {
		base = req.Name
	}
	categorySlug, err := slug.Unique(slug.Make(base, 0), 0, s.categoryRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	var category model.ExamCategory
	if err := copier.Copy(&category, &req); err != nil {
		return nil, err
	}
	category.Name = strings.TrimSpace(req.Name)
	category.Slug = categorySlug

	if err := s.categoryRepo.Create(&category); err != nil {
		log.Error().Err(err).Str("name", category.Name).Msg("CreateCategory: insert failed")
		return nil, newError(ErrConflict, "a category named %q already exists", category.Name)
	}
	return &dto.CategorySummary{ID: category.ID, Name: category.Name, Slug: category.Slug}, nil
}

func (s *adminCatalogService) CreateBlock(req dto.CreateBlockRequest) (*dto.BlockDTO, error) {
	if _, err := s.categoryRepo.FindByID(req.CategoryID); err != nil {
		return nil, notFoundOr(err, "category")
	}
	block := model.Block{CategoryID: req.CategoryID, Number: req.Number, Name: strings.TrimSpace(req.Name)}
	if err := s.blockRepo.Create(&block); err != nil {
		log.Error().Err(err).Uint("categoryID", req.CategoryID).Int("number", req.Number).Msg("CreateBlock: insert failed")
		return nil, newError(ErrConflict, "block %d already exists in this category", req.Number)
	}
	return &dto.BlockDTO{ID: block.ID, CategoryID: block.CategoryID, Number: block.Number, Name: block.Name}, nil
}

func (s *adminCatalogService) CreateTopic(req dto.CreateTopicRequest) (*dto.TopicDTO, error) {
	if _, err := s.blockRepo.FindByID(req.BlockID); err != nil {
		return nil, notFoundOr(err, "block")
	}
	base := req.Slug
	if strings.TrimSpace(base) == "" {
		base = req.OfficialName
	}
	topicSlug, err := slug.Unique(slug.Make(base, 255), 255, s.topicRepo.SlugExists)
	if err != nil {
		return nil, err
	}

	topic := model.Topic{
		BlockID:      req.BlockID,
		Number:       req.Number,
		OfficialName: strings.TrimSpace(req.OfficialName),
		Slug:         topicSlug,
		Premium:      true,
		SourceURL:    req.SourceURL,
	}
	if req.Premium != nil {
		topic.Premium = *req.Premium
	}
	if err := s.topicRepo.Create(&topic); err != nil {
		log.Error().Err(err).Uint("blockID", req.BlockID).Int("number", req.Number).Msg("CreateTopic: insert failed")
		return nil, newError(ErrConflict, "topic %d already exists in this block", req.Number)
	}

	var out dto.TopicDTO
	if err := copier.Copy(&out, &topic); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *adminCatalogService) DeleteTopic(id uint) error {
	if err := s.topicRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return newError(ErrNotFound, "topic not found")
		}
		log.Error().Err(err).Uint("topicID", id).Msg("DeleteTopic: failed")
		return err
	}
	log.Info().Uint("topicID", id).Msg("Topic deleted with its questions")
	return nil
}

// CreateQuestion requires exactly one correct answer.
func (s *adminCatalogService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionDetailDTO, error) {
	if _, err := s.topicRepo.FindByID(req.TopicID); err != nil {
		return nil, notFoundOr(err, "topic")
	}
	correct := 0
	for _, a := range req.Answers {
		if a.IsCorrect {
			correct++
		}
	}
	if correct != 1 {
		return nil, newError(ErrValidation, "a question needs exactly one correct answer, got %d", correct)
	}

	question := model.Question{
		TopicID:        req.TopicID,
		Text:           strings.TrimSpace(req.Text),
		OriginalSource: req.OriginalSource,
	}
	if err := copier.Copy(&question.Answers, &req.Answers); err != nil {
		return nil, err
	}
	if err := s.questionRepo.Create(&question); err != nil {
		log.Error().Err(err).Uint("topicID", req.TopicID).Msg("CreateQuestion: insert failed")
		return nil, err
	}

	var out dto.QuestionDetailDTO
	if err := copier.Copy(&out, &question); err != nil {
		return nil, err
	}
	return &out, nil
}
