// @title           Document Q&A API
// @version         1.0
// @description     This API handles document upload, text extraction and question answering over a locally hosted model
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:5000
// @BasePath  /api
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/adikol/docvoice/internal/capture"
	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/internal/conversation"
	"github.com/adikol/docvoice/internal/data/store"
	"github.com/adikol/docvoice/internal/domain/uploadModel"
	"github.com/adikol/docvoice/internal/handlers"
	"github.com/adikol/docvoice/internal/inference"
	"github.com/adikol/docvoice/internal/inference/ollama"
	"github.com/adikol/docvoice/internal/inference/openaicompat"
	"github.com/adikol/docvoice/internal/job"
	"github.com/adikol/docvoice/internal/pipeline"
	"github.com/adikol/docvoice/internal/pipeline/extract"
	"github.com/adikol/docvoice/internal/pipeline/storage"
	"github.com/adikol/docvoice/internal/server"
	"github.com/adikol/docvoice/internal/speech"
	"github.com/adikol/docvoice/internal/translate"
	"github.com/adikol/docvoice/internal/translate/gemini"
	"github.com/adikol/docvoice/internal/worker"
	"github.com/adikol/docvoice/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan uploadModel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and job store
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
		JobStore:          nilableJobStore(store.GetRedisJobStore(serviceContext)),
		ProgressStore:     nilableProgressStore(store.GetRedisProgressStore(serviceContext)),
	}
	logger.Info("Starting job service")

	if serviceConfig.JobStore == nil || serviceConfig.ProgressStore == nil {
		logger.Error("Redis stores are offline, falling back to in-memory stores")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
		serviceConfig.ProgressStore = store.InitInMemoryProgressStore()
	}
	service := job.InitJobService(serviceConfig)

	//conversation context shared by the pipeline, the clipboard watcher
	//and the question endpoints
	registry := conversation.NewRegistry()

	//object storage and speech stay nil without AWS credentials;
	//the pipeline and the audio endpoint degrade accordingly
	var objectStore storage.ObjectStore
	if s3 := storage.GetS3Store(serviceContext); s3 != nil {
		objectStore = s3
	} else {
		logger.Warn("Object storage unavailable, uploads stay local")
	}

	pipelineService := pipeline.NewService(objectStore, extract.NewFileExtractor(),
		serviceConfig.ProgressStore, registry, config.UploadBucket, config.ExtractBucket)

	provider := buildInferenceProvider()
	logger.Info("Inference provider ready", "provider", config.InferenceProvider, "model", config.OllamaModel)

	var synthesizer handlers.AudioSynthesizer
	if polly := speech.GetSynthesizer(serviceContext); polly != nil {
		synthesizer = polly
	} else {
		logger.Warn("Speech synthesis unavailable")
	}

	translator := gemini.GetGeminiTranslator(serviceContext, config.GeminiAPIKey, config.GeminiTranslateModel)
	if translator == nil {
		logger.Warn("Translation unavailable")
	}

	handlers.InitJobHandler(service)
	handlers.InitRequestHandlers(handlers.RequestHandlerDeps{
		Provider:    provider,
		Registry:    registry,
		Translator:  translator,
		Synthesizer: synthesizer,
	})

	//init worker pool
	worker.InitServices(service, pipelineService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	if config.ClipboardWatch {
		startClipboardWatcher(serviceContext, registry, translator, logger)
	}

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}

func buildInferenceProvider() inference.Provider {
	if config.InferenceProvider == "openai" {
		return openaicompat.NewClient(config.OllamaHost, config.OllamaPort, config.OllamaModel)
	}
	return ollama.NewClient(config.OllamaHost, config.OllamaPort, config.OllamaModel)
}

func startClipboardWatcher(ctx context.Context, registry *conversation.Registry, translator translate.Translator, logger *logger_i.Logger) {
	logger.Info("Clipboard watcher enabled", "interval", config.ClipboardInterval, "autoTranslate", translator != nil)
	handler := capture.ContextHandler(ctx, registry, translator, logger_i.NewLogger("Clipboard"))
	watcher := capture.NewWatcher(capture.SystemClipboard, config.ClipboardInterval, handler)
	go watcher.Run(ctx)
}

// a typed nil pointer inside a non-nil interface would defeat the
// fallback checks above, so conversion happens through these helpers
func nilableJobStore(s *store.RedisJobStore) uploadModel.JobStore {
	if s == nil {
		return nil
	}
	return s
}

func nilableProgressStore(s *store.RedisProgressStore) uploadModel.ProgressStore {
	if s == nil {
		return nil
	}
	return s
}
