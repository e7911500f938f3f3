package dto

import "time"

type CreateResultRequest struct {
	TopicID   uint   `json:"topic_id"`
	TopicSlug string `json:"topic_slug"`
	Correct   int    `json:"correct" binding:"min=0"`
	Total     int    `json:"total" binding:"min=0"`
}

type ResultDTO struct {
	ID        uint      `json:"id"`
	TopicID   uint      `json:"topic_id"`
	TopicSlug string    `json:"topic_slug"`
	TopicName string    `json:"topic_name"`
	Correct   int       `json:"correct"`
	Total     int       `json:"total"`
	TakenAt   time.Time `json:"taken_at"`
}

type AnswerSummary struct {
	Correct   int `json:"correct"`
	Incorrect int `json:"incorrect"`
}

type CategoryAccuracy struct {
	CategoryID uint    `json:"category_id"`
	Slug       string  `json:"slug"`
	Name       string  `json:"name"`
	Correct    int     `json:"correct"`
	Total      int     `json:"total"`
	Accuracy   float64 `json:"accuracy"`
}

type HistoryPoint struct {
	Date      string   `json:"date"`
	TopicName string   `json:"topic_name"`
	Correct   int      `json:"correct"`
	Total     int      `json:"total"`
	Accuracy  *float64 `json:"accuracy"`
}

type TopicAccuracy struct {
	TopicID  uint    `json:"topic_id"`
	Slug     string  `json:"slug"`
	Name     string  `json:"name"`
	Accuracy float64 `json:"accuracy"`
}

type StatsResponse struct {
	GlobalAccuracy float64            `json:"global_accuracy"`
	Summary        AnswerSummary      `json:"summary"`
	PerCategory    []CategoryAccuracy `json:"per_category"`
	History        []HistoryPoint     `json:"history"`
	Strengths      []TopicAccuracy    `json:"strengths"`
	Weaknesses     []TopicAccuracy    `json:"weaknesses"`
}

type ReinforcementResponse struct {
	Mastered []TopicAccuracy `json:"mastered"`
	Review   []TopicAccuracy `json:"review"`
	Deepen   []TopicAccuracy `json:"deepen"`
}

type RankingEntry struct {
	Rank     int     `json:"rank"`
	UserID   uint    `json:"-"`
	Username string  `json:"username"`
	Correct  int     `json:"correct"`
	Total    int     `json:"total"`
	Accuracy float64 `json:"accuracy"`
}

type RankingResponse struct {
	WeekStart time.Time      `json:"week_start"`
	Podium    []RankingEntry `json:"podium"`
	Me        *RankingEntry  `json:"me"`
}
