package storage

import (
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

type S3Storage struct {
	bucket   string
	region   string
	uploader *s3manager.Uploader
}

// NewS3Storage uses the default AWS credential chain (env, shared config,
// instance role).
func NewS3Storage(bucket, region string) *S3Storage {
	sess := session.Must(session.NewSession(&aws.Config{
		Region: aws.String(region),
	}))
	return &S3Storage{
		bucket:   bucket,
		region:   region,
		uploader: s3manager.NewUploader(sess),
	}
}

func (s *S3Storage) Save(name string, reader io.Reader) error {
	_, err := s.uploader.Upload(&s3manager.UploadInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
		Body:   reader,
	})
	return err
}

func (s *S3Storage) PublicURL(name string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, name)
}
