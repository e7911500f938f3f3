package service

import (
	"github.com/jinzhu/copier"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

type CatalogService interface {
	ListCategories() ([]dto.CategorySummary, error)
	GetCategory(slug string) (*dto.CategoryDetail, error)
	ListBlocks(categorySlug string) ([]dto.BlockDTO, error)
	ListTopics(categorySlug string, blockNumber int) ([]dto.TopicDTO, error)
	GetTopic(slug string) (*dto.TopicDTO, error)
}

type catalogService struct {
	categoryRepo repository.CategoryRepository
	blockRepo    repository.BlockRepository
	topicRepo    repository.TopicRepository
}

func NewCatalogService(
	categoryRepo repository.CategoryRepository,
	blockRepo repository.BlockRepository,
	topicRepo repository.TopicRepository,
) CatalogService {
	return &catalogService{categoryRepo: categoryRepo, blockRepo: blockRepo, topicRepo: topicRepo}
}

func (s *catalogService) ListCategories() ([]dto.CategorySummary, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("ListCategories: repository error")
		return nil, err
	}
	out := make([]dto.CategorySummary, 0, len(categories))
	if err := copier.Copy(&out, &categories); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *catalogService) GetCategory(slug string) (*dto.CategoryDetail, error) {
	category, err := s.categoryRepo.FindBySlugWithTopics(slug)
	if err != nil {
		return nil, notFoundOr(err, "category")
	}
	var out dto.CategoryDetail
	if err := copier.Copy(&out, category); err != nil {
		return nil, err
	}
	if out.Blocks == nil {
		out.Blocks = []dto.BlockDTO{}
	}
	return &out, nil
}

func (s *catalogService) ListBlocks(categorySlug string) ([]dto.BlockDTO, error) {
	blocks, err := s.blockRepo.FindByCategorySlug(categorySlug)
	if err != nil {
		log.Error().Err(err).Str("category", categorySlug).Msg("ListBlocks: repository error")
		return nil, err
	}
	out := make([]dto.BlockDTO, 0, len(blocks))
	if err := copier.Copy(&out, &blocks); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *catalogService) ListTopics(categorySlug string, blockNumber int) ([]dto.TopicDTO, error) {
	topics, err := s.topicRepo.List(repository.TopicFilter{CategorySlug: categorySlug, BlockNumber: blockNumber})
	if err != nil {
		log.Error().Err(err).Str("category", categorySlug).Int("block", blockNumber).Msg("ListTopics: repository error")
		return nil, err
	}
	out := make([]dto.TopicDTO, 0, len(topics))
	if err := copier.Copy(&out, &topics); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *catalogService) GetTopic(slug string) (*dto.TopicDTO, error) {
	topic, err := s.topicRepo.FindBySlug(slug)
	if err != nil {
		return nil, notFoundOr(err, "topic")
	}
	var out dto.TopicDTO
	if err := copier.Copy(&out, topic); err != nil {
		return nil, err
	}
	return &out, nil
}
