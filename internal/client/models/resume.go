package models

type Resume struct {
	ID          int64     `json:"id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type,omitempty"`
	Skills      []string  `json:"skills,omitempty"`
	UploadedAt  Timestamp `json:"uploaded_at,omitempty"`
	IsPrimary   bool      `json:"is_primary"`
}

// ResumeUpload is the backend's answer to a multipart upload.
type ResumeUpload struct {
	ID              int64    `json:"id"`
	Filename        string   `json:"filename"`
	UploadSuccess   bool     `json:"upload_success"`
	AnalysisSuccess bool     `json:"analysis_success"`
	DetectedSkills  []string `json:"detected_skills"`
	Message         string   `json:"message,omitempty"`
}
