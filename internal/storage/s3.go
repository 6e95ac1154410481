// internal/storage/s3.go

// Package storage uploads offer images to an S3-compatible bucket (Cloudflare
// R2 in production) and hands back a public URL. The rest of the system
// treats that URL as an opaque string.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// AllowedImageExtensions maps accepted upload extensions to content types.
var AllowedImageExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

type Config struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKeyID     string
	SecretAccessKey string
	PublicBaseURL   string
}

// Configured reports whether enough settings are present to reach a bucket.
func (c Config) Configured() bool {
	return c.Endpoint != "" && c.Bucket != "" && c.AccessKeyID != "" && c.SecretAccessKey != ""
}

type Client struct {
	client   *s3.Client
	uploader *manager.Uploader
	cfg      Config
	log      *slog.Logger
}

func NewClient(ctx context.Context, cfg Config, log *slog.Logger) (*Client, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("object storage is not configured")
	}
	if log == nil {
		log = slog.Default()
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKeyID, cfg.SecretAccessKey, "",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})
	uploader := manager.NewUploader(client, func(u *manager.Uploader) {
		u.PartSize = 5 * 1024 * 1024
	})

	return &Client{
		client:   client,
		uploader: uploader,
		cfg:      cfg,
		log:      log,
	}, nil
}

// ValidateImageType reports whether the filename's extension is accepted.
func ValidateImageType(filename string) bool {
	_, ok := AllowedImageExtensions[strings.ToLower(path.Ext(filename))]
	return ok
}

// ContentTypeForFilename returns the MIME type for an accepted extension.
func ContentTypeForFilename(filename string) string {
	if ct, ok := AllowedImageExtensions[strings.ToLower(path.Ext(filename))]; ok {
		return ct
	}
	return "application/octet-stream"
}

// ObjectKey returns a fresh key for an offer image: offers/{uuid}{ext}.
func ObjectKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	return "offers/" + strings.ReplaceAll(uuid.NewString(), "-", "") + ext
}

// Upload streams body into the bucket and returns the public URL for the key.
func (c *Client) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := c.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.cfg.Bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}

	url := c.PublicURL(key)
	c.log.Info("image uploaded", "key", key, "url", url)
	return url, nil
}

// PublicURL builds <public-base>/<bucket>/<key>, falling back to the account
// endpoint when no public base is configured.
func (c *Client) PublicURL(key string) string {
	base := strings.TrimRight(c.cfg.PublicBaseURL, "/")
	if base == "" {
		base = strings.TrimRight(c.cfg.Endpoint, "/")
	}
	return base + "/" + c.cfg.Bucket + "/" + key
}
