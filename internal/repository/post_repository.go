package repository

import (
	"strings"

	"github.com/opostest/backend/internal/model"
	"gorm.io/gorm"
)

type PostRepository interface {
	Create(post *model.Post) error
	Save(post *model.Post) error
	FindByID(id uint) (*model.Post, error)
	FindPublished() ([]model.Post, error)
	FindPublishedBySlug(slug string) (*model.Post, error)
	SlugExists(slug string) (bool, error)
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(post *model.Post) error {
	return r.db.Omit("Author").Create(post).Error
}

func (r *postRepository) Save(post *model.Post) error {
	return r.db.Omit("Author").Save(post).Error
}

func (r *postRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) FindPublished() ([]model.Post, error) {
	var posts []model.Post
	err := r.db.Preload("Author").
		Where("status = ?", model.PostPublished).
		Order("created_at DESC").
		Find(&posts).Error
	return posts, err
}

func (r *postRepository) FindPublishedBySlug(slug string) (*model.Post, error) {
	var post model.Post
	err := r.db.Preload("Author").
		Where("slug = ? AND status = ?", slug, model.PostPublished).
		First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Unscoped().Model(&model.Post{}).Where("LOWER(slug) = ?", strings.ToLower(slug)).Count(&count).Error
	return count > 0, err
}
