package model

import "time"

// Result is the immutable score of one finished test on a topic.
type Result struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    uint      `json:"user_id" gorm:"not null;index:idx_result_user_taken"`
	User      User      `json:"-" gorm:"foreignKey:UserID"`
	TopicID   uint      `json:"topic_id" gorm:"not null;index"`
	Topic     Topic     `json:"-" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE;"`
	Correct   int       `json:"correct" gorm:"not null"`
	Total     int       `json:"total" gorm:"not null"`
	TakenAt   time.Time `json:"taken_at" gorm:"not null;index:idx_result_user_taken"`
	CreatedAt time.Time `json:"created_at"`
}
