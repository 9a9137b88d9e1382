package worker

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/domain/uploadModel"
	"github.com/adikol/docvoice/internal/metrics"
)

func executeJob(job uploadModel.Job) {
	start := time.Now()
	defer func() {
		metrics.CapturePipelineMetrics(string(job.Status), time.Since(start))
	}()
	ctxTrace := context.WithValue(context.Background(), config.TRACE_ID_KEY, job.TraceId)
	ctx, cancel := context.WithTimeout(ctxTrace, config.PipelineTimeout)
	defer cancel()
	logger.Debug("Processing upload job:", "job Id:", job.Id)

	saveJobState(ctx, job, uploadModel.JobStatusRunning)

	job = _pipelineService.ProcessUpload(ctx, job)

	job.EndTime = time.Now()
	saveJobState(ctx, job, job.Status)
}

func removeWorker(reason string) {
	workerWaitGroup.Done()
	atomic.AddInt64(&currentWorkerCount, -1)
	logger.Info("Removed worker ", "reason", reason, "workerCount", currentWorkerCount)
	metrics.DecrementActiveWorkerCount()
}

func saveJobState(ctx context.Context, job uploadModel.Job, jobStatus uploadModel.JobStatus) {
	job.Status = jobStatus
	if err := _jobService.JobStore.SaveJob(ctx, job); err != nil {
		logger.Error("Failed to update job status", "err", err)
	}
}
