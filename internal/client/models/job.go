package models

type Job struct {
	ID              int64          `json:"id"`
	LinkedInID      string         `json:"linkedin_id,omitempty"`
	Title           string         `json:"title"`
	Company         string         `json:"company"`
	Location        string         `json:"location"`
	Description     string         `json:"description,omitempty"`
	Requirements    map[string]any `json:"requirements,omitempty"`
	SalaryRange     string         `json:"salary_range,omitempty"`
	JobType         string         `json:"job_type,omitempty"`
	ExperienceLevel string         `json:"experience_level,omitempty"`
	Skills          []string       `json:"skills,omitempty"`
	URL             string         `json:"url,omitempty"`
	PostedAt        Timestamp      `json:"posted_at,omitempty"`
	IsActive        bool           `json:"is_active"`
}

type JobList struct {
	Jobs       []Job `json:"jobs"`
	Total      int   `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

type JobSearch struct {
	Keywords        string   `json:"keywords,omitempty" validate:"max=200"`
	Location        string   `json:"location,omitempty" validate:"max=200"`
	JobType         string   `json:"job_type,omitempty"`
	ExperienceLevel string   `json:"experience_level,omitempty"`
	Skills          []string `json:"skills,omitempty" validate:"omitempty,dive,required"`
	SalaryMin       int      `json:"salary_min,omitempty" validate:"gte=0"`
	SalaryMax       int      `json:"salary_max,omitempty" validate:"omitempty,gtefield=SalaryMin"`
	// PostedAfter is a YYYY-MM-DD date.
	PostedAfter string `json:"posted_after,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Page        int    `json:"page,omitempty" validate:"gte=0"`
	PerPage     int    `json:"per_page,omitempty" validate:"omitempty,min=1,max=100"`
}
