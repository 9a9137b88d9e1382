package uploadModel

import (
	"context"
	"time"
)

type JobStatus string
type InternalStatus string

const (
	JobStatusQueued   JobStatus = "QUEUED"
	JobStatusRunning  JobStatus = "RUNNING"
	JobStatusComplete JobStatus = "COMPLETE"
	JobStatusError    JobStatus = "Error"

	UploadInit     InternalStatus = "Init"
	GatewayCall    InternalStatus = "StorageGateway"
	ExtractCall    InternalStatus = "Extraction"
	TextStoreCall  InternalStatus = "TextStore"
	NotifyListener InternalStatus = "Notify"
	Complete       InternalStatus = "Complete"
	Error          InternalStatus = "Error"
)

type Job struct {
	Id          string         `json:"id"`
	TraceId     string         `json:"trace_id"`
	JobPayload  JobPayload     `json:"job_payload"`
	Error       JobError       `json:"error,omitempty"`
	CreatedTime time.Time      `json:"created_time"`
	EndTime     time.Time      `json:"end_time,omitempty"`
	Status      JobStatus      `json:"status"`
	CurrentStep InternalStatus `json:"current_step"`
}

type JobError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Retry   bool   `json:"retry"`
}

type JobPayload struct {
	FileName string `json:"file_name,omitempty"`
	FilePath string `json:"file_path,omitempty"`

	// Filled by the pipeline. StorageKey stays empty when the extracted
	// text was empty or could not be stored.
	ExtractedText string `json:"extracted_text,omitempty"`
	StorageKey    string `json:"storage_key,omitempty"`
}

type JobStore interface {
	GetJob(ctx context.Context, jobId string) (Job, bool)
	SaveJob(ctx context.Context, job Job) error
	DeleteJob(ctx context.Context, jobID string)
}

// ProgressStore collects the human-readable progress messages a pipeline
// run emits, in emit order, keyed by job id.
type ProgressStore interface {
	AppendProgress(ctx context.Context, jobId string, message string) error
	GetProgress(ctx context.Context, jobId string) ([]string, error)
}
