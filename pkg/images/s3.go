package images

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// Uploader defines the interface for storing a compressed cover image and
// returning its public URL.
type Uploader interface {
	UploadCover(ctx context.Context, data []byte) (string, error)
}

// S3Uploader stores covers in an S3 bucket under a date-based prefix.
type S3Uploader struct {
	Client *s3.Client
	Bucket string
	Region string
}

// NewS3Uploader creates a new S3Uploader.
func NewS3Uploader(client *s3.Client, bucket, region string) *S3Uploader {
	return &S3Uploader{Client: client, Bucket: bucket, Region: region}
}

// Make sure we conform to the interface
var _ Uploader = (*S3Uploader)(nil)

// UploadCover writes the image and returns the public object URL. The key
// embeds the upload timestamp so covers sort chronologically in the bucket.
func (u *S3Uploader) UploadCover(ctx context.Context, data []byte) (string, error) {
	key := fmt.Sprintf("covers/%s-%s.jpg", time.Now().UTC().Format("20060102T150405"), uuid.New().String())

	_, err := u.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload cover to S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.Bucket, u.Region, key), nil
}

// NoOpUploader skips storage and returns a placeholder URL. Used in local
// development and tests.
type NoOpUploader struct{}

// UploadCover returns a placeholder URL without storing anything.
func (u *NoOpUploader) UploadCover(ctx context.Context, data []byte) (string, error) {
	return "https://example.com/covers/" + uuid.New().String() + ".jpg", nil
}
