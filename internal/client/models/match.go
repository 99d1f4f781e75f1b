package models

type Match struct {
	ID           int64          `json:"id"`
	UserID       int64          `json:"user_id,omitempty"`
	JobID        int64          `json:"job_id"`
	ResumeID     int64          `json:"resume_id"`
	Score        float64        `json:"score"`
	MatchDetails map[string]any `json:"match_details,omitempty"`
	Status       string         `json:"status,omitempty"`
	CreatedAt    Timestamp      `json:"created_at,omitempty"`
	Job          *Job           `json:"job,omitempty"`
	Resume       *Resume        `json:"resume,omitempty"`
}

type MatchList struct {
	Matches    []Match `json:"matches"`
	Total      int     `json:"total"`
	Page       int     `json:"page"`
	PerPage    int     `json:"per_page"`
	TotalPages int     `json:"total_pages"`
}

// MatchAnalysis selects the job and the resume to compare. Exactly one
// source must be given for each side.
type MatchAnalysis struct {
	JobID      int64          `json:"job_id,omitempty" validate:"required_without=JobData,excluded_with=JobData"`
	ResumeID   int64          `json:"resume_id,omitempty" validate:"required_without=ResumeData,excluded_with=ResumeData"`
	JobData    map[string]any `json:"job_data,omitempty"`
	ResumeData map[string]any `json:"resume_data,omitempty"`
}

type Recommendation struct {
	MatchID         int64            `json:"match_id"`
	Score           float64          `json:"score"`
	Strengths       []map[string]any `json:"strengths"`
	Gaps            []map[string]any `json:"gaps"`
	Recommendations []map[string]any `json:"recommendations"`
}
