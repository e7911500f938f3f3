package model

import "time"

type Question struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	TopicID        uint      `json:"topic_id" gorm:"not null;index"`
	Topic          Topic     `json:"-" gorm:"foreignKey:TopicID"`
	Text           string    `json:"text" gorm:"type:text;not null"`
	OriginalSource string    `json:"original_source" gorm:"size:255"`
	Answers        []Answer  `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`
	CreatedAt      time.Time `json:"created_at"`
}

// CorrectAnswer returns the first answer flagged as correct, or nil.
func (q *Question) CorrectAnswer() *Answer {
	for i := range q.Answers {
		if q.Answers[i].IsCorrect {
			return &q.Answers[i]
		}
	}
	return nil
}
