package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Store uploads objects to S3 buckets and returns their public URLs.
type S3Store struct {
	uploader *manager.Uploader
	region   string
}

// NewS3Store builds an S3Store from the ambient AWS configuration.
func NewS3Store(ctx context.Context, region string) (*S3Store, error) {
	cfg, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg)
	return &S3Store{uploader: manager.NewUploader(client), region: region}, nil
}

// Put uploads the object and returns its public URL.
func (s *S3Store) Put(ctx context.Context, bucket, key, contentType string, data []byte) (string, error) {
	_, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put s3 object %s/%s: %w", bucket, key, err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, s.region, url.PathEscape(key)), nil
}
