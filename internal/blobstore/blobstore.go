// Package blobstore stores recipe images in an S3-compatible bucket and
// hands back stable public URLs.
package blobstore

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/oklog/ulid/v2"
)

// Store is the blob-store contract. Uploads return a URL that remains valid
// for the lifetime of the object.
type Store interface {
	UploadRecipeImage(ctx context.Context, img *Image) (url string, err error)
}

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	PublicURL string
	UseSSL    bool
}

type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ Store = (*MinioStore)(nil)

func New(conf Config) (*MinioStore, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating minio client: %w", err)
	}

	return &MinioStore{
		client:    client,
		bucket:    conf.Bucket,
		publicURL: strings.TrimRight(conf.PublicURL, "/"),
	}, nil
}

// EnsureBucket creates the image bucket if it does not exist.
func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket %q: %w", s.bucket, err)
	}
	if exists {
		return nil
	}
	if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket %q: %w", s.bucket, err)
	}
	return nil
}

func (s *MinioStore) UploadRecipeImage(ctx context.Context, img *Image) (string, error) {
	key := recipeImageKey(img.Suffix)
	_, err := s.client.PutObject(ctx, s.bucket, key,
		bytes.NewReader(img.Data), int64(len(img.Data)),
		minio.PutObjectOptions{ContentType: img.MimeType})
	if err != nil {
		return "", fmt.Errorf("uploading image: %w", err)
	}
	return s.publicURL + "/" + s.bucket + "/" + key, nil
}

func recipeImageKey(suffix string) string {
	return path.Join("recipes", ulid.Make().String()+suffix)
}
