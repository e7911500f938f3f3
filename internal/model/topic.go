package model

import "time"

type Topic struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	BlockID      uint       `json:"block_id" gorm:"not null;uniqueIndex:idx_topic_block_number"`
	Block        Block      `json:"-" gorm:"foreignKey:BlockID"`
	Number       int        `json:"number" gorm:"not null;uniqueIndex:idx_topic_block_number"`
	OfficialName string     `json:"official_name" gorm:"size:500;not null"`
	Slug         string     `json:"slug" gorm:"size:255;not null;uniqueIndex"`
	Premium      bool       `json:"premium" gorm:"not null"`
	SourceURL    string     `json:"source_url" gorm:"size:500"`
	Questions    []Question `json:"questions,omitempty" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE;"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
