package dto

type CreateCategoryRequest struct {
	Name                string `json:"name" binding:"required,max=200"`
	Slug                string `json:"slug" binding:"omitempty,max=200"`
	GeneralDescription  string `json:"general_description"`
	CallInformation     string `json:"call_information"`
	OfficialBulletinURL string `json:"official_bulletin_url" binding:"omitempty,url"`
	Requirements        string `json:"requirements"`
	AdditionalInfo      string `json:"additional_info"`
}

type CreateBlockRequest struct {
	CategoryID uint   `json:"category_id" binding:"required"`
	Number     int    `json:"number" binding:"required,min=1"`
	Name       string `json:"name" binding:"required,max=200"`
}

type CreateTopicRequest struct {
	BlockID      uint   `json:"block_id" binding:"required"`
	Number       int    `json:"number" binding:"required,min=1"`
	OfficialName string `json:"official_name" binding:"required,max=500"`
	Slug         string `json:"slug" binding:"omitempty,max=255"`
	Premium      *bool  `json:"premium"`
	SourceURL    string `json:"source_url" binding:"omitempty,url"`
}

type AnswerInput struct {
	Text                   string `json:"text" binding:"required"`
	IsCorrect              bool   `json:"is_correct"`
	JustificationText      string `json:"justification_text"`
	JustificationArticle   string `json:"justification_article"`
	JustificationSourceURL string `json:"justification_source_url"`
}

type CreateQuestionRequest struct {
	TopicID        uint          `json:"topic_id" binding:"required"`
	Text           string        `json:"text" binding:"required"`
	OriginalSource string        `json:"original_source"`
	Answers        []AnswerInput `json:"answers" binding:"required,min=2,max=6,dive"`
}

type CreateExamTemplateRequest struct {
	CategoryID      uint   `json:"category_id" binding:"required"`
	Name            string `json:"name" binding:"required,max=200"`
	Slug            string `json:"slug" binding:"omitempty,max=200"`
	Block1Questions int    `json:"block1_questions" binding:"min=0,max=500"`
	Block2Questions int    `json:"block2_questions" binding:"min=0,max=500"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=1,max=600"`
	Active          *bool  `json:"active"`
}

type ImportRowError struct {
	Line  int    `json:"line"`
	Error string `json:"error"`
}

type ImportResult struct {
	Category      CategorySummary  `json:"category"`
	Created       int              `json:"created"`
	CreatedBlock1 int              `json:"created_block1"`
	CreatedBlock2 int              `json:"created_block2"`
	Skipped       int              `json:"skipped"`
	Errors        int              `json:"errors"`
	ErrorDetails  []ImportRowError `json:"error_details"`
}
