// Package s3 issues presigned PUT URLs so clients upload directly to object
// storage; this service never carries the bytes itself.
package s3

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	awss3 "github.com/aws/aws-sdk-go/service/s3"

	"streamly-backend/pkg/config"
)

const presignExpiry = time.Hour

type Presigner struct {
	client   *awss3.S3
	bucket   string
	endpoint string
}

// NewPresigner builds an S3 client from the configured region and
// credentials. An endpoint override (MinIO in dev) switches the client to
// path-style addressing.
func NewPresigner(cfg *config.Config) (*Presigner, error) {
	awsCfg := &aws.Config{}
	if cfg.AWSRegion != "" {
		awsCfg.Region = aws.String(cfg.AWSRegion)
	}
	if cfg.AWSAccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AWSAccessKeyID, cfg.AWSSecretAccessKey, "")
	}
	if cfg.S3EndpointURL != "" {
		awsCfg.Endpoint = aws.String(cfg.S3EndpointURL)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, err
	}

	return &Presigner{
		client:   awss3.New(sess),
		bucket:   cfg.S3Bucket,
		endpoint: strings.TrimRight(cfg.S3EndpointURL, "/"),
	}, nil
}

// PresignedPutURL returns a write-only URL for key, valid for one hour.
func (p *Presigner) PresignedPutURL(key, contentType string) (string, error) {
	req, _ := p.client.PutObjectRequest(&awss3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	})
	return req.Presign(presignExpiry)
}

// PublicURL returns where an uploaded object can be read from.
func (p *Presigner) PublicURL(key string) string {
	if p.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", p.endpoint, p.bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", p.bucket, key)
}

// ObjectKey derives the upload key from the uploader, the current second and a
// hash of the filename. The same filename in the same second yields the same
// key; true uniqueness is not a goal here.
func ObjectKey(userID uint, filename string, now time.Time) string {
	sum := md5.Sum([]byte(filename))
	return fmt.Sprintf("videos/%d/%d_%s", userID, now.Unix(), hex.EncodeToString(sum[:]))
}
