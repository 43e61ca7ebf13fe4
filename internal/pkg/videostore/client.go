package videostore

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

// Client wraps the S3 client for practice-video storage. Videos are never
// served from a public bucket; playback and upload both go through
// short-lived presigned URLs.
type Client struct {
	s3Client *s3.Client
	presign  *s3.PresignClient
	config   *Config
}

// NewClient creates a new video storage client
func NewClient(cfg *Config) (*Client, error) {
	if !cfg.IsEnabled() {
		return nil, fmt.Errorf("video storage is disabled")
	}

	awsConfig, err := config.LoadDefaultConfig(context.TODO(),
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID,
			cfg.SecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
			// S3-compatible services need path-style URLs
			o.UsePathStyle = true
			o.UseAccelerate = false
		}
	})

	client := &Client{
		s3Client: s3Client,
		presign:  s3.NewPresignClient(s3Client),
		config:   cfg,
	}

	log.Infof("[VideoStore] Initialized S3 client for bucket: %s", cfg.BucketName)
	return client, nil
}

// PlaybackURL returns a presigned GET URL for streaming a stored video.
func (c *Client) PlaybackURL(ctx context.Context, objectKey string) (string, error) {
	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.config.BucketName),
		Key:    aws.String(objectKey),
	}, s3.WithPresignExpires(c.config.URLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign playback URL for %s: %w", objectKey, err)
	}
	return req.URL, nil
}

// UploadURL returns a presigned PUT URL so an admin can upload a video
// directly to object storage without routing the bytes through the app.
func (c *Client) UploadURL(ctx context.Context, objectKey, contentType string) (string, error) {
	req, err := c.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.config.BucketName),
		Key:         aws.String(objectKey),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(c.config.URLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign upload URL for %s: %w", objectKey, err)
	}
	return req.URL, nil
}

// DeleteObject removes a stored video object.
func (c *Client) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := c.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(c.config.BucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", objectKey, err)
	}
	return nil
}
