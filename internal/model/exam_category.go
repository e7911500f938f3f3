package model

import "time"

// ExamCategory is a target exam track ("oposición") with its guide texts.
type ExamCategory struct {
	ID                  uint      `gorm:"primarykey" json:"id"`
	Name                string    `json:"name" gorm:"size:200;not null;uniqueIndex"`
	Slug                string    `json:"slug" gorm:"size:200;not null;uniqueIndex"`
	GeneralDescription  string    `json:"general_description" gorm:"type:text"`
	CallInformation     string    `json:"call_information" gorm:"type:text"`
	OfficialBulletinURL string    `json:"official_bulletin_url" gorm:"size:500"`
	Requirements        string    `json:"requirements" gorm:"type:text"`
	AdditionalInfo      string    `json:"additional_info" gorm:"type:text"`
	Blocks              []Block   `json:"blocks,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE;"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type Block struct {
	ID         uint         `gorm:"primarykey" json:"id"`
	CategoryID uint         `json:"category_id" gorm:"not null;uniqueIndex:idx_block_category_number"`
	Category   ExamCategory `json:"-" gorm:"foreignKey:CategoryID"`
	Number     int          `json:"number" gorm:"not null;uniqueIndex:idx_block_category_number"`
	Name       string       `json:"name" gorm:"size:200;not null"`
	Topics     []Topic      `json:"topics,omitempty" gorm:"foreignKey:BlockID;constraint:OnDelete:CASCADE;"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
