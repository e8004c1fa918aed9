package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"nearmarket/utils"
)

// ErrUnsupportedImageType is returned for uploads that are not one of the
// accepted image formats.
var ErrUnsupportedImageType = errors.New("unsupported image type")

// ObjectStore is the backing blob store for the avatars/listings buckets.
type ObjectStore interface {
	Put(ctx context.Context, bucket, key, contentType string, data []byte) (string, error)
}

// UploadOutcome tells callers whether the upload actually stored the bytes
// or degraded to a fallback URL, so they can assert on it instead of
// inferring it from logs.
type UploadOutcome int

const (
	OutcomeStored UploadOutcome = iota
	OutcomeFallback
)

// UploadResult is the outcome of an image upload.
type UploadResult struct {
	URL     string
	Outcome UploadOutcome
}

// Client uploads images with a configurable retry policy and an optional
// fallback URL used when every attempt fails.
type Client struct {
	store       ObjectStore
	policy      RetryPolicy
	fallbackURL string
}

// NewClient creates a storage client. fallbackURL may be empty, in which
// case exhausted uploads surface their error.
func NewClient(store ObjectStore, policy RetryPolicy, fallbackURL string) *Client {
	return &Client{store: store, policy: policy, fallbackURL: fallbackURL}
}

// DetectImageContentType sniffs the payload and returns its content type,
// accepting only jpeg, png, gif and webp.
func DetectImageContentType(data []byte) (string, error) {
	ct := http.DetectContentType(data)
	switch ct {
	case "image/jpeg", "image/png", "image/gif", "image/webp":
		return ct, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImageType, ct)
	}
}

// UploadImage validates the payload and uploads it under the retry policy.
// When attempts are exhausted and a fallback URL is configured the result
// reports OutcomeFallback instead of failing.
func (c *Client) UploadImage(ctx context.Context, bucket, key string, data []byte) (UploadResult, error) {
	contentType, err := DetectImageContentType(data)
	if err != nil {
		return UploadResult{}, err
	}

	var uploadedURL string
	err = c.policy.Do(ctx, func() error {
		u, putErr := c.store.Put(ctx, bucket, key, contentType, data)
		if putErr != nil {
			return putErr
		}
		uploadedURL = u
		return nil
	})
	if err != nil {
		if c.fallbackURL == "" {
			return UploadResult{}, fmt.Errorf("upload %s/%s: %w", bucket, key, err)
		}
		utils.Warn("storage: upload failed after retries, using fallback URL", map[string]any{
			"bucket": bucket,
			"key":    key,
			"error":  err.Error(),
		})
		return UploadResult{URL: c.fallbackURL, Outcome: OutcomeFallback}, nil
	}

	return UploadResult{URL: uploadedURL, Outcome: OutcomeStored}, nil
}
