package speech

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/pkg/logger_i"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/polly"
	"github.com/aws/aws-sdk-go-v2/service/polly/types"
)

// Synthesizer turns answer text into an mp3 stream via Amazon Polly.
type Synthesizer struct {
	client *polly.Client
	logger *logger_i.Logger

	mu      sync.Mutex
	voiceId types.VoiceId
	engine  types.Engine
}

var (
	instance *Synthesizer
	once     sync.Once
)

// GetSynthesizer returns nil without credentials; the audio endpoint then
// degrades with a plain-text error.
func GetSynthesizer(ctx context.Context) *Synthesizer {
	once.Do(func() {
		logger := logger_i.NewLogger("Speech")
		if !config.HasAWSCredentials() {
			logger.Warn("AWS credentials not configured, speech synthesis disabled")
			return
		}

		cfg, err := awsconfig.LoadDefaultConfig(ctx,
			awsconfig.WithRegion(config.AWSRegion),
			awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
				config.AWSAccessKeyID, config.AWSSecretAccessKey, "")),
		)
		if err != nil {
			logger.Error("Error loading AWS config", "error", err)
			return
		}

		instance = &Synthesizer{
			client: polly.NewFromConfig(cfg),
			logger: logger,
		}
		logger.Info("Polly client created", "region", config.AWSRegion)
	})
	return instance
}

// Synthesize returns the audio stream for the given text. The caller owns
// closing the stream.
func (s *Synthesizer) Synthesize(ctx context.Context, text string) (io.ReadCloser, error) {
	voiceId, engine, err := s.bestVoice(ctx)
	if err != nil {
		return nil, err
	}

	out, err := s.client.SynthesizeSpeech(ctx, &polly.SynthesizeSpeechInput{
		Text:         aws.String(text),
		OutputFormat: types.OutputFormatMp3,
		VoiceId:      voiceId,
		Engine:       engine,
	})
	if err != nil {
		return nil, err
	}
	return out.AudioStream, nil
}

// bestVoice prefers an en-IN neural voice and caches the pick.
func (s *Synthesizer) bestVoice(ctx context.Context) (types.VoiceId, types.Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.voiceId != "" {
		return s.voiceId, s.engine, nil
	}

	out, err := s.client.DescribeVoices(ctx, &polly.DescribeVoicesInput{
		Engine: types.EngineNeural,
	})
	if err != nil {
		return "", "", err
	}
	if len(out.Voices) == 0 {
		return "", "", errors.New("no voice available")
	}

	picked := out.Voices[0]
	for _, v := range out.Voices {
		if v.LanguageCode == types.LanguageCodeEnIn {
			picked = v
			break
		}
	}

	s.voiceId = picked.Id
	s.engine = types.EngineNeural
	s.logger.Info("Selected voice", "voice", s.voiceId)
	return s.voiceId, s.engine, nil
}
