package models

type Profile struct {
	ID              int64          `json:"id,omitempty"`
	UserID          int64          `json:"user_id,omitempty"`
	Title           string         `json:"title"`
	Location        string         `json:"location"`
	Skills          []string       `json:"skills"`
	ExperienceLevel string         `json:"experience_level"`
	JobPreferences  map[string]any `json:"job_preferences,omitempty"`
	UpdatedAt       Timestamp      `json:"updated_at,omitempty"`
}

// ProfileUpdate is a partial update: nil fields are left untouched.
type ProfileUpdate struct {
	Title           *string        `json:"title,omitempty" validate:"omitnil,max=200"`
	Location        *string        `json:"location,omitempty" validate:"omitnil,max=200"`
	Skills          []string       `json:"skills,omitempty" validate:"omitempty,dive,required,max=100"`
	ExperienceLevel *string        `json:"experience_level,omitempty" validate:"omitnil,oneof=entry junior mid senior lead executive"`
	JobPreferences  map[string]any `json:"job_preferences,omitempty"`
}
