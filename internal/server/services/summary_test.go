package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nanosensei/backend/internal/server/models"
)

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)

	assert.Equal(t, 0, got.TotalSessions)
	assert.Equal(t, 0.0, got.AverageScore)
	assert.Empty(t, got.AverageScoreBySkill)
	assert.Empty(t, got.SessionsBySkill)
	assert.NotNil(t, got.AverageScoreBySkill)
	assert.NotNil(t, got.SessionsBySkill)
}

func TestSummarize_MixedSkills(t *testing.T) {
	sessions := []*models.Session{
		{SkillType: "Drawing", Score: 80},
		{SkillType: "Drawing", Score: 90},
		{SkillType: "Yoga", Score: 75},
	}

	got := Summarize(sessions)

	assert.Equal(t, 3, got.TotalSessions)
	assert.InDelta(t, 81.666666, got.AverageScore, 1e-6)
	assert.Equal(t, map[string]float64{"Drawing": 85.0, "Yoga": 75.0}, got.AverageScoreBySkill)
	assert.Equal(t, map[string]int{"Drawing": 2, "Yoga": 1}, got.SessionsBySkill)
}

func TestSummarize_SingleSkill(t *testing.T) {
	sessions := []*models.Session{
		{SkillType: "Guitar", Score: 0},
		{SkillType: "Guitar", Score: 100},
	}

	got := Summarize(sessions)

	assert.Equal(t, 2, got.TotalSessions)
	assert.Equal(t, 50.0, got.AverageScore)
	assert.Equal(t, map[string]float64{"Guitar": 50.0}, got.AverageScoreBySkill)
	assert.Equal(t, map[string]int{"Guitar": 2}, got.SessionsBySkill)
}

func TestSummarize_SkillsAreCaseSensitive(t *testing.T) {
	sessions := []*models.Session{
		{SkillType: "yoga", Score: 60},
		{SkillType: "Yoga", Score: 80},
	}

	got := Summarize(sessions)

	require.Len(t, got.AverageScoreBySkill, 2)
	assert.Equal(t, 60.0, got.AverageScoreBySkill["yoga"])
	assert.Equal(t, 80.0, got.AverageScoreBySkill["Yoga"])
}

func TestSummarize_PerSkillCountsSumToTotal(t *testing.T) {
	sessions := []*models.Session{
		{SkillType: "Drawing", Score: 10},
		{SkillType: "Yoga", Score: 20},
		{SkillType: "Drawing", Score: 30},
		{SkillType: "Punching", Score: 40},
		{SkillType: "Yoga", Score: 50},
	}

	got := Summarize(sessions)

	sum := 0
	for _, n := range got.SessionsBySkill {
		sum += n
	}
	assert.Equal(t, got.TotalSessions, sum)
}

func TestSummarize_ExactMean(t *testing.T) {
	// sum/count under float64 semantics, no rounding.
	sessions := []*models.Session{
		{SkillType: "Drawing", Score: 1},
		{SkillType: "Drawing", Score: 2},
	}

	got := Summarize(sessions)
	assert.Equal(t, float64(3)/float64(2), got.AverageScore)
}
