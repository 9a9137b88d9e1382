package adapter

import (
	"fmt"
	"time"

	"github.com/adikol/docvoice/internal/api"
	"github.com/adikol/docvoice/internal/domain/uploadModel"
)

func ToInitJobResponse(id string) api.InitJobResponse {
	return api.InitJobResponse{
		Id:        id,
		StatusURL: fmt.Sprintf("api/status/%s", id),
	}
}

func ToAPIResponse(job uploadModel.Job, progress []string) api.JobResponse {

	var errorPtr *api.JobOutgoingError
	if job.Error.Message != "" || job.Error.Code != 0 {
		errorPtr = &api.JobOutgoingError{
			Code:    job.Error.Code,
			Message: job.Error.Message,
			Retry:   job.Error.Retry,
		}
	}

	result := api.Result{
		Status: string(job.Status),
		Upload: ToUploadResult(job.JobPayload, progress),
	}

	return api.JobResponse{
		Id:        job.Id,
		StartTime: job.CreatedTime,
		EndTime:   job.EndTime,
		Error:     errorPtr,
		Result:    result,
	}
}

func ToUploadResult(payload uploadModel.JobPayload, progress []string) *api.UploadResult {
	if payload.FileName == "" && len(progress) == 0 {
		return nil
	}

	return &api.UploadResult{
		FileName:   payload.FileName,
		StorageKey: payload.StorageKey,
		TextLength: len(payload.ExtractedText),
		Progress:   progress,
	}
}

func BadRequest(id string, error string, code int) api.JobResponse {
	return api.JobResponse{
		Id:        id,
		StartTime: time.Time{},
		EndTime:   time.Time{},
		Result: api.Result{
			Status: string(api.JobStatusError),
		},
		Error: &api.JobOutgoingError{
			Code:    code,
			Message: error,
			Retry:   false,
		},
	}
}
