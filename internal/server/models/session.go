package models

import "time"

// Session is one recorded coaching session. Score is always within [0,100]
// and Timestamp is assigned by the server at creation; rows are immutable.
// Metadata is an opaque serialized payload the server stores but never parses.
type Session struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	SkillType string    `json:"skill_type"`
	Score     int       `json:"score"`
	Feedback  string    `json:"feedback"`
	Timestamp time.Time `json:"timestamp"`
	Metadata  *string   `json:"metadata"`
}

// SessionFilter narrows a session listing. A nil field means "no constraint";
// set fields combine with logical AND.
type SessionFilter struct {
	UserID    *int64
	SkillType *string
}

// Matches reports whether s satisfies every set predicate of the filter.
func (f SessionFilter) Matches(s *Session) bool {
	if f.UserID != nil && s.UserID != *f.UserID {
		return false
	}
	if f.SkillType != nil && s.SkillType != *f.SkillType {
		return false
	}
	return true
}
