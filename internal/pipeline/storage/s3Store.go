package storage

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/adikol/docvoice/internal/config"
	"github.com/adikol/docvoice/pkg/logger_i"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type S3Store struct {
	client   *s3.Client
	uploader *manager.Uploader
	logger   *logger_i.Logger
}

var (
	s3Instance *S3Store
	once       sync.Once
)

// GetS3Store returns nil when credentials are not configured; callers treat
// a nil store as "object storage disabled" and keep working locally.
func GetS3Store(ctx context.Context) *S3Store {
	once.Do(func() {
		logger := logger_i.NewLogger("S3Store")
		if !config.HasAWSCredentials() {
			logger.Warn("AWS credentials not configured, object storage disabled")
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

		client := s3.NewFromConfig(cfg)
		s3Instance = &S3Store{
			client:   client,
			uploader: manager.NewUploader(client),
			logger:   logger,
		}
		logger.Info("S3 client created", "region", config.AWSRegion)
	})
	return s3Instance
}

// Exists lists objects under the key as a prefix and looks for an exact
// match. This is an existence check only, content is never compared.
func (s *S3Store) Exists(ctx context.Context, bucket string, key string) (bool, error) {
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(key),
	})
	if err != nil {
		return false, err
	}
	for _, obj := range out.Contents {
		if aws.ToString(obj.Key) == key {
			return true, nil
		}
	}
	return false, nil
}

func (s *S3Store) UploadFile(ctx context.Context, bucket string, key string, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   f,
	})
	if err == nil {
		s.logger.Debug("uploaded object", "bucket", bucket, "key", key)
	}
	return err
}

func (s *S3Store) PutText(ctx context.Context, bucket string, key string, text string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(text),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err == nil {
		s.logger.Debug("stored text object", "bucket", bucket, "key", key)
	}
	return err
}
