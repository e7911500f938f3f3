package dto

type CategorySummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CategoryDetail struct {
	ID                  uint       `json:"id"`
	Name                string     `json:"name"`
	Slug                string     `json:"slug"`
	GeneralDescription  string     `json:"general_description"`
	CallInformation     string     `json:"call_information"`
	OfficialBulletinURL string     `json:"official_bulletin_url"`
	Requirements        string     `json:"requirements"`
	AdditionalInfo      string     `json:"additional_info"`
	Blocks              []BlockDTO `json:"blocks"`
}

type BlockDTO struct {
	ID         uint       `json:"id"`
	CategoryID uint       `json:"category_id"`
	Number     int        `json:"number"`
	Name       string     `json:"name"`
	Topics     []TopicDTO `json:"topics,omitempty"`
}

type TopicDTO struct {
	ID           uint   `json:"id"`
	BlockID      uint   `json:"block_id"`
	Number       int    `json:"number"`
	OfficialName string `json:"official_name"`
	Slug         string `json:"slug"`
	Premium      bool   `json:"premium"`
	SourceURL    string `json:"source_url"`
}

// AnswerDTO is an option as shown while the test is running.
type AnswerDTO struct {
	ID   uint   `json:"id"`
	Text string `json:"text"`
}

type QuestionDTO struct {
	ID             uint        `json:"id"`
	TopicID        uint        `json:"topic_id"`
	Text           string      `json:"text"`
	OriginalSource string      `json:"original_source"`
	Answers        []AnswerDTO `json:"answers"`
}

// AnswerDetailDTO exposes correctness and justification, used for review.
type AnswerDetailDTO struct {
	ID                     uint   `json:"id"`
	Text                   string `json:"text"`
	IsCorrect              bool   `json:"is_correct"`
	JustificationText      string `json:"justification_text"`
	JustificationArticle   string `json:"justification_article"`
	JustificationSourceURL string `json:"justification_source_url"`
}

type QuestionDetailDTO struct {
	ID             uint              `json:"id"`
	TopicID        uint              `json:"topic_id"`
	Text           string            `json:"text"`
	OriginalSource string            `json:"original_source"`
	Answers        []AnswerDetailDTO `json:"answers"`
}

type TopicQuestionsResponse struct {
	Topic     TopicDTO      `json:"topic"`
	Preview   bool          `json:"preview"`
	Questions []QuestionDTO `json:"questions"`
}

type QuestionIDsRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1,max=200"`
}

type ExplanationResponse struct {
	QuestionID  uint   `json:"question_id"`
	Explanation string `json:"explanation"`

	// Source is "stored", "generated" or "none".
	Source string `json:"source"`
}
