package storage

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"feriadeofertas/internal/domain/service"
)

const (
	uploadURLExpiry   = 10 * time.Minute
	downloadURLExpiry = time.Hour
)

// S3Client signs upload and download URLs against an S3-compatible bucket
// (Cloudflare R2 in production). File bytes never pass through this process.
type S3Client struct {
	presignClient *s3.PresignClient
	bucket        string
	publicDomain  string
}

var _ service.ObjectStorage = (*S3Client)(nil)

func NewS3Client(ctx context.Context, endpoint, region, bucket, accessKey, secretKey, publicDomain string) (*S3Client, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKey, secretKey, "")),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		// Path-style avoids per-bucket DNS, which R2 does not provide.
		o.UsePathStyle = true
	})

	return &S3Client{
		presignClient: s3.NewPresignClient(client),
		bucket:        bucket,
		publicDomain:  strings.TrimSuffix(publicDomain, "/"),
	}, nil
}

// MintKey builds a fresh object key from a random UUID plus the extension of
// the client-supplied filename. The name itself is discarded, so collisions
// and path traversal are off the table.
func (c *S3Client) MintKey(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	return uuid.New().String() + ext
}

func (c *S3Client) PresignUpload(ctx context.Context, key, contentType string) (string, time.Time, error) {
	req, err := c.presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(uploadURLExpiry))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to presign upload: %w", err)
	}

	return req.URL, time.Now().Add(uploadURLExpiry), nil
}

// ResolveURL turns a stored image value into a displayable URL. Full URLs
// pass through verbatim (legacy and external sources); keys go through the
// public domain when one is configured, otherwise a signed GET valid for one
// hour.
func (c *S3Client) ResolveURL(ctx context.Context, pathOrURL string) (string, error) {
	if strings.HasPrefix(pathOrURL, "http") {
		return pathOrURL, nil
	}

	if c.publicDomain != "" {
		return c.publicDomain + "/" + pathOrURL, nil
	}

	req, err := c.presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(pathOrURL),
	}, s3.WithPresignExpires(downloadURLExpiry))
	if err != nil {
		return "", fmt.Errorf("failed to presign download: %w", err)
	}

	return req.URL, nil
}
