package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"hr-access-backend/config"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Provider stores checklist-task evidence documents in S3.
type Provider interface {
	UploadTaskDocument(ctx context.Context, taskID, fileName, contentType string, fileReader io.Reader, fileSize int64) (objectKey string, err error)
	GetTaskDocument(ctx context.Context, objectKey string) ([]byte, error)
	DeleteTaskDocument(ctx context.Context, objectKey string) error
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) UploadTaskDocument(ctx context.Context, taskID, fileName, contentType string, fileReader io.Reader, fileSize int64) (string, error) {
	if i.s3client == nil {
		return "", errors.New("emmagatzematge de fitxers no disponible")
	}
	objectKey := fmt.Sprintf("checklist-tasks/%s/%s", taskID, fileName)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey, fileReader, fileSize,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "error uploading task document")
	}
	return objectKey, nil
}

func (i impl) GetTaskDocument(ctx context.Context, objectKey string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("emmagatzematge de fitxers no disponible")
	}
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "error fetching task document")
	}
	defer obj.Close()
	buf := new(bytes.Buffer)
	if _, err = io.Copy(buf, obj); err != nil {
		return nil, errors.Wrap(err, "error reading task document")
	}
	return buf.Bytes(), nil
}

func (i impl) DeleteTaskDocument(ctx context.Context, objectKey string) error {
	if i.s3client == nil {
		return errors.New("emmagatzematge de fitxers no disponible")
	}
	return i.s3client.RemoveObject(ctx, config.Conf.S3.BucketName, objectKey, minio.RemoveObjectOptions{})
}
