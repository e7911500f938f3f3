package repository

import (
	"github.com/opostest/backend/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	// Create inserts the question together with its answers.
	Create(question *model.Question) error
	FindByIDWithAnswers(id uint) (*model.Question, error)
	// FindByIDsWithAnswers returns the questions in the order of ids; unknown ids are dropped.
	FindByIDsWithAnswers(ids []uint) ([]model.Question, error)
	FindByTopicOrdered(topicID uint, limit int) ([]model.Question, error)
	FindByTopicRandom(topicID uint, limit int) ([]model.Question, error)
	FindRandom(limit int) ([]model.Question, error)
	RandomIDsByBlock(categoryID uint, blockNumber int, limit int) ([]uint, error)
	TextsByTopic(topicID uint) ([]string, error)
	ExistingIDs(ids []uint) ([]uint, error)
	CountByTopic(topicID uint) (int64, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Omit("Topic").Create(question).Error
}

func preloadAnswers(db *gorm.DB) *gorm.DB {
	return db.Preload("Answers", func(db *gorm.DB) *gorm.DB { return db.Order("answers.id ASC") })
}

func (r *questionRepository) FindByIDWithAnswers(id uint) (*model.Question, error) {
	var question model.Question
	if err := preloadAnswers(r.db).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByIDsWithAnswers(ids []uint) ([]model.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var found []model.Question
	if err := preloadAnswers(r.db).Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}
	byID := make(map[uint]model.Question, len(found))
	for _, q := range found {
		byID[q.ID] = q
	}
	ordered := make([]model.Question, 0, len(found))
	for _, id := range ids {
		if q, ok := byID[id]; ok {
			ordered = append(ordered, q)
			delete(byID, id)
		}
	}
	return ordered, nil
}

func (r *questionRepository) FindByTopicOrdered(topicID uint, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := preloadAnswers(r.db).Where("topic_id = ?", topicID).Order("id ASC").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindByTopicRandom(topicID uint, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := preloadAnswers(r.db).Where("topic_id = ?", topicID).Order("RANDOM()").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) FindRandom(limit int) ([]model.Question, error) {
	var questions []model.Question
	err := preloadAnswers(r.db).Order("RANDOM()").Limit(limit).Find(&questions).Error
	return questions, err
}

func (r *questionRepository) RandomIDsByBlock(categoryID uint, blockNumber int, limit int) ([]uint, error) {
	var ids []uint
	if limit <= 0 {
		return ids, nil
	}
	err := r.db.Model(&model.Question{}).
		Joins("JOIN topics ON topics.id = questions.topic_id").
		Joins("JOIN blocks ON blocks.id = topics.block_id").
		Where("blocks.category_id = ? AND blocks.number = ?", categoryID, blockNumber).
		Order("RANDOM()").
		Limit(limit).
		Pluck("questions.id", &ids).Error
	return ids, err
}

func (r *questionRepository) TextsByTopic(topicID uint) ([]string, error) {
	var texts []string
	err := r.db.Model(&model.Question{}).Where("topic_id = ?", topicID).Pluck("text", &texts).Error
	return texts, err
}

func (r *questionRepository) ExistingIDs(ids []uint) ([]uint, error) {
	var found []uint
	if len(ids) == 0 {
		return found, nil
	}
	err := r.db.Model(&model.Question{}).Where("id IN ?", ids).Pluck("id", &found).Error
	return found, err
}

func (r *questionRepository) CountByTopic(topicID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Question{}).Where("topic_id = ?", topicID).Count(&count).Error
	return count, err
}
