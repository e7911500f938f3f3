package repository

import (
	"strings"

	"github.com/opostest/backend/internal/model"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.ExamCategory) error
	FindAll() ([]model.ExamCategory, error)
	FindByID(id uint) (*model.ExamCategory, error)
	FindBySlugWithTopics(slug string) (*model.ExamCategory, error)
	// FindBySlugOrName matches the slug exactly, then the name case-insensitively.
	FindBySlugOrName(value string) (*model.ExamCategory, error)
	SlugExists(slug string) (bool, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.ExamCategory) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) FindAll() ([]model.ExamCategory, error) {
	var categories []model.ExamCategory
	err := r.db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *categoryRepository) FindByID(id uint) (*model.ExamCategory, error) {
	var category model.ExamCategory
	if err := r.db.First(&category, id).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlugWithTopics(slug string) (*model.ExamCategory, error) {
	var category model.ExamCategory
	err := r.db.
		Preload("Blocks", func(db *gorm.DB) *gorm.DB { return db.Order("blocks.number ASC") }).
		Preload("Blocks.Topics", func(db *gorm.DB) *gorm.DB { return db.Order("topics.number ASC") }).
		Where("slug = ?", slug).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindBySlugOrName(value string) (*model.ExamCategory, error) {
	value = strings.TrimSpace(value)
	var category model.ExamCategory
	err := r.db.Where("slug = ?", value).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}
	if err := r.db.Where("LOWER(name) = ?", strings.ToLower(value)).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.ExamCategory{}).Where("LOWER(slug) = ?", strings.ToLower(slug)).Count(&count).Error
	return count > 0, err
}
