package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/domain/uploadModel"
	"github.com/adikol/docvoice/internal/metrics"
	"github.com/adikol/docvoice/pkg/logger_i"
)

// report pushes a human-readable progress message for the job. Progress is
// best effort; a failing store never stops the pipeline.
func (s *service) report(ctx context.Context, log *logger_i.Logger, jobId string, message string) {
	log.Info(message)
	if s.progressStore == nil {
		return
	}
	if err := s.progressStore.AppendProgress(ctx, jobId, message); err != nil {
		log.Error("failed to record progress", "error", err)
	}
}

func (s *service) executeGatewayStep(ctx context.Context, log *logger_i.Logger, job uploadModel.Job, filename string) uploadModel.Job {
	job.CurrentStep = uploadModel.GatewayCall

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("storage_gateway", time.Since(start)) }()

	if s.objectStore == nil || s.uploadBucket == "" {
		s.report(ctx, log, job.Id, "Object storage not configured, keeping file local")
		return job
	}

	exists, err := s.objectStore.Exists(ctx, s.uploadBucket, filename)
	if err != nil {
		// duplicate check is an optimization; its failure never blocks the upload
		log.Warn("duplicate check failed, attempting upload anyway", "error", err)
		exists = false
	}

	if exists {
		s.report(ctx, log, job.Id, fmt.Sprintf("File %q already exists in %s, skipping upload", filename, s.uploadBucket))
		return job
	}

	if err := s.objectStore.UploadFile(ctx, s.uploadBucket, filename, job.JobPayload.FilePath); err != nil {
		s.report(ctx, log, job.Id, fmt.Sprintf("Upload of %q failed: %v", filename, err))
		return job
	}
	s.report(ctx, log, job.Id, fmt.Sprintf("Uploaded %q to %s", filename, s.uploadBucket))
	return job
}

func (s *service) executeExtractStep(ctx context.Context, log *logger_i.Logger, job uploadModel.Job) (string, uploadModel.Job) {
	job.CurrentStep = uploadModel.ExtractCall

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("text_extraction", time.Since(start)) }()

	text, err := s.extractor.Extract(job.JobPayload.FilePath)
	if err != nil {
		// extraction failure degrades to empty text, never an error
		s.report(ctx, log, job.Id, fmt.Sprintf("Text extraction failed: %v", err))
		return "", job
	}
	return text, job
}

func (s *service) executeTextStoreStep(ctx context.Context, log *logger_i.Logger, job uploadModel.Job, filename string, text string) (string, uploadModel.Job) {
	job.CurrentStep = uploadModel.TextStoreCall

	if text == "" || s.extractBucket == "" || s.objectStore == nil {
		return "", job
	}

	start := time.Now()
	defer func() { metrics.CaptureExecutionMetrics("text_store", time.Since(start)) }()

	key := strings.TrimSuffix(filename, filepath.Ext(filename)) + config.ExtractedTextExt
	if err := s.objectStore.PutText(ctx, s.extractBucket, key, text); err != nil {
		s.report(ctx, log, job.Id, fmt.Sprintf("Failed to store extracted text: %v", err))
		return "", job
	}
	s.report(ctx, log, job.Id, fmt.Sprintf("Extracted text stored as %s in %s", key, s.extractBucket))
	return key, job
}

func (s *service) executeNotifyStep(ctx context.Context, log *logger_i.Logger, job uploadModel.Job, filename string, text string, key string) uploadModel.Job {
	job.CurrentStep = uploadModel.NotifyListener

	if s.registry != nil {
		s.registry.SetDocument(filename, text)
	}

	if text == "" {
		s.report(ctx, log, job.Id, "No extracted text available (file may be scanned or extraction failed)")
	} else {
		s.report(ctx, log, job.Id, fmt.Sprintf("Document loaded for Q&A (%d characters)", len(text)))
	}
	return job
}

func (s *service) cleanupTempFile(log *logger_i.Logger, path string) {
	if err := os.Remove(path); err != nil {
		log.Warn("could not remove temp file", "path", path, "error", err)
	}
}
