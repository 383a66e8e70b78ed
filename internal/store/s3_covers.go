package store

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	appcfg "github.com/MKhiriev/go-story-nook/internal/config"
	"github.com/MKhiriev/go-story-nook/internal/logger"
	"github.com/MKhiriev/go-story-nook/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}
)

// s3CoverStorage uploads covers to a single bucket.
type s3CoverStorage struct {
	client *s3.Client
	cfg    appcfg.Covers
	logger *logger.Logger
}

// disabledCoverStorage is used when no bucket is configured.
type disabledCoverStorage struct{}

func (disabledCoverStorage) PutCover(context.Context, string, models.Cover) (string, error) {
	return "", ErrCoverStorageDisabled
}

// NewCoverStorage builds an S3-backed [CoverStorage]. Static credentials are
// used when both keys are set, otherwise the default AWS credential chain.
// An empty bucket yields a storage that rejects every upload with
// [ErrCoverStorageDisabled].
func NewCoverStorage(ctx context.Context, cfg appcfg.Covers, log *logger.Logger) (CoverStorage, error) {
	if cfg.Bucket == "" {
		log.Warn().Str("func", "NewCoverStorage").Msg("cover bucket is not configured, uploads disabled")
		return disabledCoverStorage{}, nil
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := loadDefaultAWSConfig(ctx, opts...)
	if err != nil {
		log.Err(err).Str("func", "NewCoverStorage").Msg("error loading aws config")
		return nil, fmt.Errorf("error loading aws config: %w", err)
	}

	client := newS3ClientFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.BaseEndpoint)
			o.UsePathStyle = true
		}
	})

	return &s3CoverStorage{
		client: client,
		cfg:    cfg,
		logger: log,
	}, nil
}

func (s *s3CoverStorage) PutCover(ctx context.Context, key string, cover models.Cover) (string, error) {
	_, err := putObject(s.client, ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(cover.Data),
		ContentType:   aws.String(cover.ContentType),
		ContentLength: aws.Int64(int64(len(cover.Data))),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3CoverStorage.PutCover").Str("key", key).Msg("error uploading cover")
		return "", fmt.Errorf("error uploading cover: %w", err)
	}

	return s.publicURL(key), nil
}

func (s *s3CoverStorage) publicURL(key string) string {
	if s.cfg.BaseEndpoint != "" {
		return strings.TrimRight(s.cfg.BaseEndpoint, "/") + "/" + s.cfg.Bucket + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
