package models

// Dashboard is rendered by the backend; the client only passes it through.
type Dashboard map[string]any

type SkillStat struct {
	Skill string  `json:"skill"`
	Count int     `json:"count"`
	Share float64 `json:"share,omitempty"`
}

type SkillAnalytics struct {
	Skills []SkillStat `json:"skills"`
}
