package repository

import (
	"strings"

	"github.com/opostest/backend/internal/model"
	"gorm.io/gorm"
)

type TopicFilter struct {
	CategorySlug string
	BlockNumber  int
}

type TopicRepository interface {
	Create(topic *model.Topic) error
	FindByID(id uint) (*model.Topic, error)
	FindBySlug(slug string) (*model.Topic, error)
	List(filter TopicFilter) ([]model.Topic, error)
	GetOrCreateBySlug(topic *model.Topic) error
	// Delete removes the topic with its questions and answers.
	Delete(id uint) error
	SlugExists(slug string) (bool, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(topic *model.Topic) error {
	return r.db.Create(topic).Error
}

func (r *topicRepository) FindByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) FindBySlug(slug string) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.Where("slug = ?", slug).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) List(filter TopicFilter) ([]model.Topic, error) {
	q := r.db.Model(&model.Topic{}).
		Joins("JOIN blocks ON blocks.id = topics.block_id").
		Order("blocks.number ASC, topics.number ASC")
	if filter.CategorySlug != "" {
		q = q.Joins("JOIN exam_categories ON exam_categories.id = blocks.category_id").
			Where("exam_categories.slug = ?", filter.CategorySlug)
	}
	if filter.BlockNumber > 0 {
		q = q.Where("blocks.number = ?", filter.BlockNumber)
	}
	var topics []model.Topic
	err := q.Find(&topics).Error
	return topics, err
}

func (r *topicRepository) GetOrCreateBySlug(topic *model.Topic) error {
	return r.db.Where(model.Topic{Slug: topic.Slug}).
		Attrs(model.Topic{BlockID: topic.BlockID, Number: topic.Number, OfficialName: topic.OfficialName, Premium: topic.Premium}).
		FirstOrCreate(topic).Error
}

func (r *topicRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		questionIDs := tx.Model(&model.Question{}).Select("id").Where("topic_id = ?", id)
		if err := tx.Where("question_id IN (?)", questionIDs).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id = ?", id).Delete(&model.Result{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Topic{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *topicRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Topic{}).Where("LOWER(slug) = ?", strings.ToLower(slug)).Count(&count).Error
	return count > 0, err
}
