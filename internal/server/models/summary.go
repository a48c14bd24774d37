package models

// SessionSummary aggregates one user's sessions. AverageScore is the simple
// mean over all sessions (not a mean of per-skill means), and the per-skill
// maps contain keys only for skills the user has actually logged.
type SessionSummary struct {
	TotalSessions       int                `json:"total_sessions"`
	AverageScore        float64            `json:"average_score"`
	AverageScoreBySkill map[string]float64 `json:"average_score_by_skill"`
	SessionsBySkill     map[string]int     `json:"sessions_by_skill"`
}
