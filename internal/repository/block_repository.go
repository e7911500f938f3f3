package repository

import (
	"github.com/opostest/backend/internal/model"
	"gorm.io/gorm"
)

type BlockRepository interface {
	Create(block *model.Block) error
	FindByID(id uint) (*model.Block, error)
	FindByCategorySlug(slug string) ([]model.Block, error)
	// GetOrCreate returns the block with this number, creating it with name when missing.
	GetOrCreate(categoryID uint, number int, name string) (*model.Block, error)
}

type blockRepository struct {
	db *gorm.DB
}

func NewBlockRepository(db *gorm.DB) BlockRepository {
	return &blockRepository{db: db}
}

func (r *blockRepository) Create(block *model.Block) error {
	return r.db.Create(block).Error
}

func (r *blockRepository) FindByID(id uint) (*model.Block, error) {
	var block model.Block
	if err := r.db.First(&block, id).Error; err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *blockRepository) FindByCategorySlug(slug string) ([]model.Block, error) {
	var blocks []model.Block
	q := r.db.Model(&model.Block{}).Order("blocks.category_id ASC, blocks.number ASC")
	if slug != "" {
		q = q.Joins("JOIN exam_categories ON exam_categories.id = blocks.category_id").
			Where("exam_categories.slug = ?", slug)
	}
	err := q.Find(&blocks).Error
	return blocks, err
}

func (r *blockRepository) GetOrCreate(categoryID uint, number int, name string) (*model.Block, error) {
	block := model.Block{CategoryID: categoryID, Number: number}
	err := r.db.Where(model.Block{CategoryID: categoryID, Number: number}).
		Attrs(model.Block{Name: name}).
		FirstOrCreate(&block).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}
