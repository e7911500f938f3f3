package service

import (
	"sort"
	"time"

	"github.com/jinzhu/now"
	"github.com/opostest/backend/internal/auth"
	"github.com/opostest/backend/internal/dto"
	"github.com/opostest/backend/internal/model"
	"github.com/opostest/backend/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	historySize     = 15
	topicListSize   = 5
	podiumSize      = 3
	historyDateForm = "02/01/2006"
)

type StatsService interface {
	// Stats returns ErrNoResults when the caller has not finished any test.
	Stats(caller *auth.Identity) (*dto.StatsResponse, error)
	Reinforcement(caller *auth.Identity) (*dto.ReinforcementResponse, error)
	Ranking(caller *auth.Identity) (*dto.RankingResponse, error)
}

type statsService struct {
	resultRepo repository.ResultRepository
	now        func() time.Time
	weekConfig *now.Config
}

func NewStatsService(resultRepo repository.ResultRepository) StatsService {
	return &statsService{
		resultRepo: resultRepo,
		now:        time.Now,
		weekConfig: &now.Config{WeekStartDay: time.Monday},
	}
}

func (s *statsService) Stats(caller *auth.Identity) (*dto.StatsResponse, error) {
	results, err := s.userResults(caller)
	if err != nil {
		return nil, err
	}

	var correct, total int
	categories := make(map[uint]*dto.CategoryAccuracy)
	var categoryOrder []uint
	for i := range results {
		r := &results[i]
		correct += r.Correct
		total += r.Total

		cat := r.Topic.Block.Category
		acc, ok := categories[cat.ID]
		if !ok {
			acc = &dto.CategoryAccuracy{CategoryID: cat.ID, Slug: cat.Slug, Name: cat.Name}
			categories[cat.ID] = acc
			categoryOrder = append(categoryOrder, cat.ID)
		}
		acc.Correct += r.Correct
		acc.Total += r.Total
	}

	resp := &dto.StatsResponse{
		GlobalAccuracy: percentage(correct, total),
		Summary:        dto.AnswerSummary{Correct: correct, Incorrect: total - correct},
		PerCategory:    make([]dto.CategoryAccuracy, 0, len(categoryOrder)),
	}
	for _, id := range categoryOrder {
		acc := categories[id]
		acc.Accuracy = percentage(acc.Correct, acc.Total)
		resp.PerCategory = append(resp.PerCategory, *acc)
	}

	recent := results
	if len(recent) > historySize {
		recent = recent[len(recent)-historySize:]
	}
	resp.History = make([]dto.HistoryPoint, 0, len(recent))
	for _, r := range recent {
		resp.History = append(resp.History, dto.HistoryPoint{
			Date:      r.TakenAt.Format(historyDateForm),
			TopicName: r.Topic.OfficialName,
			Correct:   r.Correct,
			Total:     r.Total,
			Accuracy:  optionalPercentage(r.Correct, r.Total),
		})
	}

	ranked := rankTopics(tallyTopics(results))
	resp.Strengths = capTopics(ranked, topicListSize)
	weakest := make([]dto.TopicAccuracy, len(ranked))
	copy(weakest, ranked)
	reverse(weakest)
	resp.Weaknesses = capTopics(weakest, topicListSize)
	return resp, nil
}

func (s *statsService) Reinforcement(caller *auth.Identity) (*dto.ReinforcementResponse, error) {
	results, err := s.userResults(caller)
	if err != nil {
		return nil, err
	}
	resp := reinforcementBuckets(rankTopics(tallyTopics(results)), topicListSize)
	return &resp, nil
}

// Ranking covers results taken since Monday 00:00 of the current week.
func (s *statsService) Ranking(caller *auth.Identity) (*dto.RankingResponse, error) {
	weekStart := s.weekConfig.With(s.now()).BeginningOfWeek()
	totals, err := s.resultRepo.TotalsSince(weekStart)
	if err != nil {
		log.Error().Err(err).Time("weekStart", weekStart).Msg("Ranking: repository error")
		return nil, err
	}

	entries := make([]dto.RankingEntry, 0, len(totals))
	for _, t := range totals {
		entries = append(entries, dto.RankingEntry{
			UserID:   t.UserID,
			Username: t.Username,
			Correct:  t.Correct,
			Total:    t.Total,
			Accuracy: percentage(t.Correct, t.Total),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Accuracy != entries[j].Accuracy {
			return entries[i].Accuracy > entries[j].Accuracy
		}
		return entries[i].Username < entries[j].Username
	})

	resp := &dto.RankingResponse{WeekStart: weekStart, Podium: []dto.RankingEntry{}}
	for i := range entries {
		entries[i].Rank = i + 1
		if i < podiumSize {
			resp.Podium = append(resp.Podium, entries[i])
		}
		if caller.Authenticated() && entries[i].UserID == caller.UserID {
			me := entries[i]
			resp.Me = &me
		}
	}
	return resp, nil
}

func (s *statsService) userResults(caller *auth.Identity) ([]model.Result, error) {
	if !caller.Authenticated() {
		return nil, newError(ErrUnauthorized, "login required")
	}
	results, err := s.resultRepo.ListForUser(caller.UserID)
	if err != nil {
		log.Error().Err(err).Uint("userID", caller.UserID).Msg("Stats: repository error")
		return nil, err
	}
	if len(results) == 0 {
		return nil, newError(ErrNoResults, "you have not completed any test yet")
	}
	return results, nil
}

func tallyTopics(results []model.Result) map[uint]*topicTally {
	tallies := make(map[uint]*topicTally)
	for i := range results {
		r := &results[i]
		t, ok := tallies[r.TopicID]
		if !ok {
			t = &topicTally{TopicID: r.TopicID, Slug: r.Topic.Slug, Name: r.Topic.OfficialName}
			tallies[r.TopicID] = t
		}
		t.Correct += r.Correct
		t.Total += r.Total
	}
	return tallies
}
