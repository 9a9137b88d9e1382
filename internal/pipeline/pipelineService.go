package pipeline

import (
	"context"
	"path/filepath"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/conversation"
	"github.com/adikol/docvoice/internal/domain/uploadModel"
	"github.com/adikol/docvoice/internal/pipeline/storage"
	"github.com/adikol/docvoice/pkg/logger_i"
)

// Extractor recovers text from a local document file. The concrete
// implementation lives in pipeline/extract; tests swap in fakes.
type Extractor interface {
	Extract(path string) (string, error)
}

// Service is the contract the worker calls. The worker never needs to know
// about buckets, extractors or the context registry.
type Service interface {
	ProcessUpload(ctx context.Context, job uploadModel.Job) uploadModel.Job
}

type service struct {
	objectStore   storage.ObjectStore //nil disables the storage steps
	extractor     Extractor
	progressStore uploadModel.ProgressStore
	registry      *conversation.Registry
	uploadBucket  string
	extractBucket string
	logger        *logger_i.Logger
}

func NewService(store storage.ObjectStore, extractor Extractor, progress uploadModel.ProgressStore,
	registry *conversation.Registry, uploadBucket string, extractBucket string) Service {
	return &service{
		objectStore:   store,
		extractor:     extractor,
		progressStore: progress,
		registry:      registry,
		uploadBucket:  uploadBucket,
		extractBucket: extractBucket,
		logger:        logger_i.NewLogger("Upload Pipeline"),
	}
}

// ProcessUpload runs the four-step sequence: storage gateway, extraction,
// secondary text storage, listener notification. Every failure along the
// way degrades to a progress message; the pipeline always runs to the end.
func (s *service) ProcessUpload(ctx context.Context, job uploadModel.Job) uploadModel.Job {
	log := s.logger.With("traceId", ctx.Value(config.TRACE_ID_KEY), "jobId", job.Id)

	// the temp file on disk carries a unique prefix; object keys use the
	// name the client uploaded under
	filename := job.JobPayload.FileName
	if filename == "" {
		filename = filepath.Base(job.JobPayload.FilePath)
	}
	job.JobPayload.FileName = filename

	job = s.executeGatewayStep(ctx, log, job, filename)

	text, job := s.executeExtractStep(ctx, log, job)

	key, job := s.executeTextStoreStep(ctx, log, job, filename, text)

	job.JobPayload.ExtractedText = text
	job.JobPayload.StorageKey = key

	job = s.executeNotifyStep(ctx, log, job, filename, text, key)

	s.cleanupTempFile(log, job.JobPayload.FilePath)

	job.CurrentStep = uploadModel.Complete
	job.Status = uploadModel.JobStatusComplete
	return job
}
