package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mahimathinakaran/wastewise/config"
)

// R2Store keeps images in a Cloudflare R2 bucket through the S3 API.
type R2Store struct {
	Client *s3.Client
	Config *config.R2Config
}

func NewR2Store(cfg *config.R2Config) *R2Store {
	client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		),
		Region: cfg.Region,
	})

	return &R2Store{
		Client: client,
		Config: cfg,
	}
}

func (s *R2Store) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	}

	if _, err := s.Client.PutObject(ctx, input); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.Config.PublicURL, key), nil
}

func (s *R2Store) Delete(ctx context.Context, key string) error {
	input := &s3.DeleteObjectInput{
		Bucket: aws.String(s.Config.BucketName),
		Key:    aws.String(key),
	}

	_, err := s.Client.DeleteObject(ctx, input)
	return err
}
