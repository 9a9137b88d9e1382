package config

import (
	"log/slog"
	"os"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 120 * time.Second //answers stream word by word, keep this generous
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":5000"

	//upload job buffer limit
	BufferLimit = 100

	//pipeline
	MaxUploadSize     = 32 << 20 //32mb
	PageExtractLimit  = 10 * time.Second
	PipelineTimeout   = 120 * time.Second
	ExtractedTextExt  = ".txt"
	UploadTempDirName = "temporary_data"

	//inference
	InferenceTimeout = 60 * time.Second
	StreamWordDelay  = 50 * time.Millisecond
	AudioChunkSize   = 1024
	DefaultLanguage  = "english"

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//clipboard poll
	ClipboardInterval = 600 * time.Millisecond

	//translation
	GeminiTranslateModel = "gemini-2.5-flash-lite-preview-09-2025"

	//redis has 16 DB we can use
	RedisJobStore      = 0
	RedisProgressStore = 1

	//redis timeouts
	RedisJobStoreTTL      = 24 * time.Hour
	RedisProgressStoreTTL = 24 * time.Hour
)

// Everything below comes from the environment. Storage and speech degrade
// cleanly when the AWS variables are missing; inference-only use always works.
var (
	AWSAccessKeyID     = os.Getenv("AWS_ACCESS_KEY_ID")
	AWSSecretAccessKey = os.Getenv("AWS_SECRET_ACCESS_KEY")
	AWSRegion          = getEnv("AWS_REGION", "ap-south-1")
	UploadBucket       = getEnv("AWS_BUCKET_NAME", "ai-assistant-docs")
	ExtractBucket      = getEnv("AWS_EXTRACT_BUCKET", "ai-assistant-extracts")

	OllamaHost        = getEnv("OLLAMA_HOST", "127.0.0.1")
	OllamaPort        = getEnv("OLLAMA_PORT", "11434")
	OllamaModel       = getEnv("OLLAMA_MODEL", "llama3.2")
	InferenceProvider = getEnv("INFERENCE_PROVIDER", "ollama")

	GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	RedisAddr     = getEnv("REDIS_ADDR", "127.0.0.1:6379")
	RedisPassword = os.Getenv("REDIS_PASSWORD")

	//empty token disables bearer auth
	AuthToken = os.Getenv("AUTH_TOKEN")

	//set to "1" to poll the host clipboard
	ClipboardWatch = os.Getenv("CLIPBOARD_WATCH") == "1"
)

func HasAWSCredentials() bool {
	return AWSAccessKeyID != "" && AWSSecretAccessKey != ""
}

func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
