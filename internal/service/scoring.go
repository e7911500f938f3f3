package service

import (
	"math"
	"sort"

	"github.com/opostest/backend/internal/dto"
)

// round2 rounds to two decimals, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentage is 100*correct/total rounded to two decimals; 0 when total is 0.
func percentage(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return round2(100 * float64(correct) / float64(total))
}

// optionalPercentage is nil when there is nothing to divide by.
func optionalPercentage(correct, total int) *float64 {
	if total <= 0 {
		return nil
	}
	p := percentage(correct, total)
	return &p
}

type topicTally struct {
	TopicID uint
	Slug    string
	Name    string
	Correct int
	Total   int
}

func (t topicTally) accuracy() dto.TopicAccuracy {
	return dto.TopicAccuracy{TopicID: t.TopicID, Slug: t.Slug, Name: t.Name, Accuracy: percentage(t.Correct, t.Total)}
}

// rankTopics returns per-topic accuracy for topics with a positive total,
// best first. Ties keep topic id order.
func rankTopics(tallies map[uint]*topicTally) []dto.TopicAccuracy {
	out := make([]dto.TopicAccuracy, 0, len(tallies))
	for _, t := range tallies {
		if t.Total <= 0 {
			continue
		}
		out = append(out, t.accuracy())
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy > out[j].Accuracy
		}
		return out[i].TopicID < out[j].TopicID
	})
	return out
}

// reinforcementBuckets partitions ranked topics: mastered (>90) best first,
// review (60..90) and deepen (<60) weakest first, each capped at limit.
func reinforcementBuckets(ranked []dto.TopicAccuracy, limit int) dto.ReinforcementResponse {
	resp := dto.ReinforcementResponse{
		Mastered: []dto.TopicAccuracy{},
		Review:   []dto.TopicAccuracy{},
		Deepen:   []dto.TopicAccuracy{},
	}
	for _, t := range ranked {
		switch {
		case t.Accuracy > 90:
			resp.Mastered = append(resp.Mastered, t)
		case t.Accuracy >= 60:
			resp.Review = append(resp.Review, t)
		default:
			resp.Deepen = append(resp.Deepen, t)
		}
	}
	reverse(resp.Review)
	reverse(resp.Deepen)
	resp.Mastered = capTopics(resp.Mastered, limit)
	resp.Review = capTopics(resp.Review, limit)
	resp.Deepen = capTopics(resp.Deepen, limit)
	return resp
}

func reverse(s []dto.TopicAccuracy) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

func capTopics(s []dto.TopicAccuracy, n int) []dto.TopicAccuracy {
	if len(s) > n {
		return s[:n]
	}
	return s
}
