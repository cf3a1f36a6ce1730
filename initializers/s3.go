package initializers

import (
	"context"
	filestorage "hr-access-backend/lib/file-storage"
	s3client "hr-access-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("error initializing the S3 client")
		return
	}
	if err := s3client.EnsureBucket(ctx, minioClient); err != nil {
		log.WithError(err).Error("error ensuring the S3 bucket exists")
	}
	s3client.Client = minioClient
	filestorage.NewInstance(minioClient)
	log.Info("S3 client initialized")
}
