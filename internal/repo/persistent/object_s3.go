package persistent

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/saguier/boda-gallery/pkg/s3client"
	"github.com/saguier/boda-gallery/pkg/types/errs"
)

type ObjectRepo struct {
	*s3client.S3Client
	bucket string
}

func NewObjectRepo(s3c *s3client.S3Client, bucket string) *ObjectRepo {
	return &ObjectRepo{s3c, bucket}
}

func (r *ObjectRepo) Put(ctx context.Context, key string, data io.Reader, contentType string, size int64) error {
	_, err := r.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(r.bucket),
		Key:           aws.String(key),
		Body:          data,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return fmt.Errorf("ObjectRepo - Put - r.Client.PutObject: %w", err)
	}

	return nil
}

func (r *ObjectRepo) PresignPut(ctx context.Context, key string, contentType string, ttl time.Duration) (string, error) {
	req, err := r.Presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(r.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		return "", fmt.Errorf("ObjectRepo - PresignPut - r.Presign.PresignPutObject: %w", err)
	}

	return req.URL, nil
}

func (r *ObjectRepo) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	result, err := r.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("ObjectRepo - Get: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("ObjectRepo - Get - r.Client.GetObject: %w", err)
	}

	return result.Body, nil
}

func (r *ObjectRepo) Delete(ctx context.Context, key string) error {
	_, err := r.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(r.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("ObjectRepo - Delete - r.Client.DeleteObject: %w", err)
	}

	return nil
}
