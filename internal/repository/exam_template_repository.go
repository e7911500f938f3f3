package repository

import (
	"strings"

	"github.com/opostest/backend/internal/model"
	"gorm.io/gorm"
)

type ExamTemplateRepository interface {
	Create(template *model.ExamTemplate) error
	ListActive(categorySlug string) ([]model.ExamTemplate, error)
	FindActiveBySlug(slug string) (*model.ExamTemplate, error)
	SlugExists(slug string) (bool, error)
}

type examTemplateRepository struct {
	db *gorm.DB
}

func NewExamTemplateRepository(db *gorm.DB) ExamTemplateRepository {
	return &examTemplateRepository{db: db}
}

func (r *examTemplateRepository) Create(template *model.ExamTemplate) error {
	return r.db.Omit("Category").Create(template).Error
}

func (r *examTemplateRepository) ListActive(categorySlug string) ([]model.ExamTemplate, error) {
	q := r.db.Preload("Category").
		Where("exam_templates.active = ?", true).
		Order("exam_templates.name ASC")
	if categorySlug != "" {
		q = q.Joins("JOIN exam_categories ON exam_categories.id = exam_templates.category_id").
			Where("exam_categories.slug = ?", categorySlug)
	}
	var templates []model.ExamTemplate
	err := q.Find(&templates).Error
	return templates, err
}

func (r *examTemplateRepository) FindActiveBySlug(slug string) (*model.ExamTemplate, error) {
	var template model.ExamTemplate
	err := r.db.Preload("Category").
		Where("slug = ? AND active = ?", slug, true).
		First(&template).Error
	if err != nil {
		return nil, err
	}
	return &template, nil
}

func (r *examTemplateRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Unscoped().Model(&model.ExamTemplate{}).Where("LOWER(slug) = ?", strings.ToLower(slug)).Count(&count).Error
	return count > 0, err
}
