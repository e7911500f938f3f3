package model

type Answer struct {
	ID                     uint   `gorm:"primarykey" json:"id"`
	QuestionID             uint   `json:"question_id" gorm:"not null;index"`
	Text                   string `json:"text" gorm:"type:text;not null"`
	IsCorrect              bool   `json:"is_correct" gorm:"not null;default:false"`
	JustificationText      string `json:"justification_text" gorm:"type:text"`
	JustificationArticle   string `json:"justification_article" gorm:"size:255"`
	JustificationSourceURL string `json:"justification_source_url" gorm:"size:500"`
}
