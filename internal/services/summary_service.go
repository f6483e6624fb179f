package services

import (
	"encoding/json"
	"sort"
	"time"

	"wm-genai-governance/internal/database"
	"wm-genai-governance/internal/metrics"
	"wm-genai-governance/internal/models"
	"wm-genai-governance/pkg/logger"

	"go.uber.org/zap"
)

const SummaryCacheKey = "governance:summary"

// Set from configuration at start-up.
var (
	SummaryCacheDuration = 5 * time.Minute
	RecertWindowDays     = 90
)

// RecertificationDue is a model whose recertification falls inside the look-ahead window.
type RecertificationDue struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	NextRecertification models.Date `json:"next_recertification"`
	DaysRemaining       int         `json:"days_remaining"`
}

// GovernanceSummary is the portfolio-level roll-up shown on the dashboard.
type GovernanceSummary struct {
	TotalModels              int                  `json:"total_models"`
	ByStatus                 map[string]int       `json:"by_status"`
	ByRisk                   map[string]int       `json:"by_risk"`
	AvgPassRate              float64              `json:"avg_pass_rate"`
	TotalOpenFindings        int                  `json:"total_open_findings"`
	TotalFindings            int                  `json:"total_findings"`
	TotalEvalRuns            int                  `json:"total_eval_runs"`
	TotalTestsRun            int                  `json:"total_tests_run"`
	CertifiedCount           int                  `json:"certified_count"`
	ClientFacingCount        int                  `json:"client_facing_count"`
	PIICount                 int                  `json:"pii_count"`
	UpcomingRecertifications []RecertificationDue `json:"upcoming_recertifications"`
	GeneratedAt              time.Time            `json:"generated_at"`
}

// ComputeSummary aggregates the inventory. Recertifications already overdue are
// reported with a negative DaysRemaining.
func ComputeSummary(list []models.GovernedModel, evals []models.EvaluationRun, now time.Time, windowDays int) GovernanceSummary {
	s := GovernanceSummary{
		TotalModels:              len(list),
		ByStatus:                 map[string]int{},
		ByRisk:                   map[string]int{},
		TotalEvalRuns:            len(evals),
		UpcomingRecertifications: []RecertificationDue{},
		GeneratedAt:              now.UTC(),
	}

	today := models.NewDate(now.Year(), now.Month(), now.Day())
	horizon := today.AddDate(0, 0, windowDays)

	var passSum float64
	for _, m := range list {
		s.ByStatus[string(m.LifecycleStatus)]++
		s.ByRisk[string(m.RiskTier)]++
		passSum += m.PassRate
		s.TotalOpenFindings += m.OpenFindings
		s.TotalFindings += m.TotalFindings
		if m.LifecycleStatus.IsCertified() {
			s.CertifiedCount++
		}
		if m.ClientFacing {
			s.ClientFacingCount++
		}
		if m.HandlesPII {
			s.PIICount++
		}

		next := m.NextRecertification
		if !next.IsZero() && !next.After(horizon) {
			s.UpcomingRecertifications = append(s.UpcomingRecertifications, RecertificationDue{
				ID:                  m.Identifier,
				Name:                m.Name,
				NextRecertification: next,
				DaysRemaining:       int(next.Sub(today.Time).Hours() / 24),
			})
		}
	}
	if len(list) > 0 {
		s.AvgPassRate = passSum / float64(len(list))
	}

	for _, e := range evals {
		s.TotalTestsRun += e.TestsRun
	}

	sort.SliceStable(s.UpcomingRecertifications, func(i, j int) bool {
		return s.UpcomingRecertifications[i].DaysRemaining < s.UpcomingRecertifications[j].DaysRemaining
	})
	return s
}

// GetGovernanceSummary returns the summary, reading through the Redis cache when one is connected.
func GetGovernanceSummary(now time.Time) (*GovernanceSummary, error) {
	log := logger.Named("summary")

	if database.RedisClient != nil {
		val, err := database.RedisClient.Get(database.Ctx, SummaryCacheKey).Result()
		if err == nil {
			var cached GovernanceSummary
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				metrics.SummaryCacheHits.WithLabelValues("hit").Inc()
				return &cached, nil
			}
		}
		metrics.SummaryCacheHits.WithLabelValues("miss").Inc()
	}

	list, err := ListModels(ModelFilter{})
	if err != nil {
		return nil, err
	}
	var evals []models.EvaluationRun
	if err := database.DB.Find(&evals).Error; err != nil {
		return nil, err
	}

	summary := ComputeSummary(list, evals, now, RecertWindowDays)

	if database.RedisClient != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := database.RedisClient.Set(database.Ctx, SummaryCacheKey, data, SummaryCacheDuration).Err(); err != nil {
				log.Warn("failed to cache governance summary", zap.Error(err))
			}
		}
	}

	return &summary, nil
}
