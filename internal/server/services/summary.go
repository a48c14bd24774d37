package services

import "github.com/nanosensei/backend/internal/server/models"

// Summarize computes the statistics for a set of sessions already scoped to
// one user. Pure function over the snapshot: scores are summed as integers in
// slice order and divided once, so the result is reproducible bit for bit.
// Skill grouping is by exact string; no trimming or case folding.
func Summarize(sessions []*models.Session) *models.SessionSummary {
	summary := &models.SessionSummary{
		AverageScoreBySkill: map[string]float64{},
		SessionsBySkill:     map[string]int{},
	}

	if len(sessions) == 0 {
		return summary
	}

	total := 0
	skillTotals := map[string]int{}
	for _, s := range sessions {
		total += s.Score
		skillTotals[s.SkillType] += s.Score
		summary.SessionsBySkill[s.SkillType]++
	}

	summary.TotalSessions = len(sessions)
	summary.AverageScore = float64(total) / float64(len(sessions))

	for skill, sum := range skillTotals {
		summary.AverageScoreBySkill[skill] = float64(sum) / float64(summary.SessionsBySkill[skill])
	}

	return summary
}
