package handlers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/domain/uploadModel"
	"github.com/adikol/docvoice/internal/job"
	"github.com/adikol/docvoice/internal/metrics"
	"github.com/adikol/docvoice/pkg/logger_i"
)

var (
	handlerInstance *JobHandler //private singleton
	once            sync.Once
	logJH           *logger_i.Logger
)

type JobHandler struct {
	service *job.Service
}

func InitJobHandler(jobService *job.Service) {
	once.Do(func() {
		handlerInstance = &JobHandler{service: jobService}

		logJH = logger_i.NewLogger("JobHandler")
		logRH = logger_i.NewLogger("RequestHandler")
		logJH.Info("Starting job handler")
	})
}

func CreateNewJob(newJob newJobData) {
	logJH.With("traceId", newJob.traceId, "job id", newJob.id)
	logJH.Info("To create new upload job")
	handlerInstance.pushToJobChannel(newJob)
}

func GetJobStatus(id string, traceId string) (result uploadModel.Job, progress []string, isFound bool) {
	ctxC := context.WithValue(context.Background(), config.TRACE_ID_KEY, traceId)
	if handlerInstance == nil {
		return result, nil, false
	}
	result, isFound = handlerInstance.service.JobStore.GetJob(ctxC, id)
	if !isFound {
		return result, nil, false
	}
	if handlerInstance.service.ProgressStore != nil {
		progress, _ = handlerInstance.service.ProgressStore.GetProgress(ctxC, id)
	}
	return result, progress, true
}

// private methods
func (h *JobHandler) pushToJobChannel(newJob newJobData) {

	_job := uploadModel.Job{}
	_job.Id = newJob.id
	_job.CreatedTime = time.Now()
	_job.TraceId = newJob.traceId
	_job.Status = uploadModel.JobStatusQueued
	_job.CurrentStep = uploadModel.UploadInit
	_job.JobPayload.FileName = newJob.documentName
	_job.JobPayload.FilePath = newJob.documentSource

	//metrics
	metrics.IncrementJobsInQueue()

	h.service.JobChannel <- _job //blocking send to prevent the system from being overwhelmed
	logJH.Info("Created new upload job")

	//extraction can take a while, so every upload nudges the dispatcher;
	//idle workers retire on their own
	atomic.AddInt64(&h.service.RequestCount, 1)
	metrics.StartDispatcherSignalCount()
	h.service.DispatcherChannel <- true
}
