// Package s3store keeps packing evidence photos in an S3-compatible
// bucket. The stored key doubles as the storage identifier so deletion
// needs no lookup.
package s3store

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Store implements ports.ObjectStorage on one bucket.
type Store struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// New builds a store against the given endpoint. publicURL is the base
// under which uploaded objects are reachable; empty falls back to the
// endpoint + bucket.
func New(ctx context.Context, endpoint, region, accessKey, secretKey, bucket, publicURL string) (*Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			secretKey,
			"",
		)),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, errors.Wrap(err, "configure object storage")
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
	})

	if publicURL == "" {
		publicURL = strings.TrimRight(endpoint, "/") + "/" + bucket
	}

	return &Store{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}, nil
}

// Upload stores the object under a date-partitioned unique key and returns
// its public URL together with the key.
func (s *Store) Upload(ctx context.Context, name string, contentType string, body io.Reader) (ports.StoredObject, error) {
	key := fmt.Sprintf("photos/%s/%s%s",
		time.Now().UTC().Format("2006-01-02"),
		uuid.NewString(),
		path.Ext(name),
	)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return ports.StoredObject{}, errs.NewExternalDependencyError("object storage", errors.Wrap(err, "upload object"))
	}

	return ports.StoredObject{
		URL:       s.publicURL + "/" + key,
		StorageID: key,
	}, nil
}

// Delete removes the object. A failure here must propagate: photo removal
// aborts when the underlying object survives.
func (s *Store) Delete(ctx context.Context, storageID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(storageID),
	})
	if err != nil {
		return errs.NewExternalDependencyError("object storage", errors.Wrap(err, "delete object"))
	}

	return nil
}
