package storage

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"

	"swea-cms.backend/pkg/utils"
)

// OSSStorage stores files as objects in an OSS bucket. Stored paths are
// object keys; public URLs follow the bucket.endpoint template.
type OSSStorage struct {
	bucket      *oss.Bucket
	bucketName  string
	endpoint    string
	maxFileSize int64
}

func NewOSSStorage(endpoint, bucketName, keyID, keySecret string, maxFileSize int64) (*OSSStorage, error) {
	client, err := oss.New(endpoint, keyID, keySecret)
	if err != nil {
		return nil, err
	}
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}
	return &OSSStorage{
		bucket:      bucket,
		bucketName:  bucketName,
		endpoint:    strings.TrimPrefix(strings.TrimPrefix(endpoint, "https://"), "http://"),
		maxFileSize: maxFileSize,
	}, nil
}

// Save validates the upload and puts it under dir/ with a unique key.
func (s *OSSStorage) Save(ctx context.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := ValidateFile(file, s.maxFileSize); err != nil {
		return "", err
	}

	key := strings.TrimPrefix(dir+"/"+utils.UniqueFilename(file.Filename), "/")

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := s.bucket.PutObject(key, src); err != nil {
		return "", err
	}
	return key, nil
}

// Delete removes an object. Returns false when the key did not exist.
func (s *OSSStorage) Delete(ctx context.Context, path string) (bool, error) {
	exists, err := s.bucket.IsObjectExist(path)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}
	if err := s.bucket.DeleteObject(path); err != nil {
		return false, err
	}
	return true, nil
}

// Exists reports whether an object is present under the key.
func (s *OSSStorage) Exists(ctx context.Context, path string) (bool, error) {
	return s.bucket.IsObjectExist(path)
}

// PublicURL builds the object URL from bucket and endpoint.
func (s *OSSStorage) PublicURL(path string) string {
	return fmt.Sprintf("https://%s.%s/%s", s.bucketName, s.endpoint, strings.TrimPrefix(path, "/"))
}
