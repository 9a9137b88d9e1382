package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"
)

type JobResponse struct {
	Id        string            `json:"id" example:"job_cz109"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"400"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type Result struct {
	Status string        `json:"status"`
	Upload *UploadResult `json:"upload,omitempty"`
}

type UploadResult struct {
	FileName   string   `json:"file_name"`
	StorageKey string   `json:"storage_key,omitempty"`
	TextLength int      `json:"text_length"`
	Progress   []string `json:"progress,omitempty"`
}

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

// requests---------------------

type AskRequest struct {
	Question string `json:"question" validate:"required"`
	Context  string `json:"context,omitempty"`
	Language string `json:"language,omitempty"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}

type TranslateRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language,omitempty"`
}

type TranslateResponse struct {
	Translated string `json:"translated"`
}
