package job

import (
	"github.com/adikol/docvoice/internal/domain/uploadModel"
)

type Service struct {
	JobChannel        chan uploadModel.Job
	RequestCount      int64
	DispatcherChannel chan bool
	JobStore          uploadModel.JobStore
	ProgressStore     uploadModel.ProgressStore
}

type ServiceConfig struct {
	JobChannel        chan uploadModel.Job
	RequestCount      int64
	DispatcherChannel chan bool
	JobStore          uploadModel.JobStore
	ProgressStore     uploadModel.ProgressStore
}

func InitJobService(cfg ServiceConfig) *Service {
	return &Service{
		JobChannel:        cfg.JobChannel,
		RequestCount:      cfg.RequestCount,
		DispatcherChannel: cfg.DispatcherChannel,
		JobStore:          cfg.JobStore,
		ProgressStore:     cfg.ProgressStore,
	}
}
