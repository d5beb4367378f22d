package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Options — параметры S3 или совместимого хранилища (minIO).
type S3Options struct {
	Region          string
	Bucket          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	// Presign включает выдачу подписанных ссылок вместо публичных.
	Presign         bool
	PresignLifetime time.Duration
}

// S3Store кладёт картинки в бакет S3.
type S3Store struct {
	svc  *s3.S3
	opts S3Options
}

func NewS3Store(opts S3Options) (*S3Store, error) {
	if opts.Bucket == "" {
		return nil, errors.New("s3 bucket is empty")
	}
	cfg := &aws.Config{
		Region:           aws.String(opts.Region),
		S3ForcePathStyle: aws.Bool(opts.Endpoint != ""),
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = aws.String(opts.Endpoint)
	}
	if opts.AccessKeyID != "" {
		cfg.Credentials = credentials.NewStaticCredentials(opts.AccessKeyID, opts.SecretAccessKey, "")
	}
	sess, err := session.NewSession(cfg)
	if err != nil {
		return nil, fmt.Errorf("aws session: %w", err)
	}
	if opts.PresignLifetime == 0 {
		// максимум для SigV4
		opts.PresignLifetime = 7 * 24 * time.Hour
	}
	return &S3Store{svc: s3.New(sess), opts: opts}, nil
}

func (s *S3Store) Put(ctx context.Context, up Upload) (Stored, error) {
	in := &s3.PutObjectInput{
		Bucket:      aws.String(s.opts.Bucket),
		Key:         aws.String(up.Key),
		ContentType: aws.String(up.ContentType),
		Body:        bytes.NewReader(up.Content),
	}
	if !s.opts.Presign {
		in.ACL = aws.String(s3.ObjectCannedACLPublicRead)
	}
	if _, err := s.svc.PutObjectWithContext(ctx, in); err != nil {
		return Stored{}, fmt.Errorf("s3 put: %w", err)
	}
	if s.opts.Presign {
		// подписанная ссылка протухает, поэтому сохраняется только ключ
		return Stored{Key: up.Key}, nil
	}
	u, err := s.objectURL(up.Key)
	if err != nil {
		return Stored{}, err
	}
	return Stored{URL: u, Key: up.Key}, nil
}

// SignURL — ссылка на объект: подписанная на PresignLifetime или публичная.
func (s *S3Store) SignURL(ctx context.Context, key string) (string, error) {
	return s.objectURL(key)
}

func (s *S3Store) objectURL(key string) (string, error) {
	if !s.opts.Presign {
		if s.opts.Endpoint != "" {
			return strings.TrimRight(s.opts.Endpoint, "/") + "/" + s.opts.Bucket + "/" + url.PathEscape(key), nil
		}
		return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", s.opts.Bucket, url.PathEscape(key)), nil
	}
	req, _ := s.svc.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	})
	signed, err := req.Presign(s.opts.PresignLifetime)
	if err != nil {
		return "", fmt.Errorf("s3 presign: %w", err)
	}
	return signed, nil
}

var _ URLSigner = (*S3Store)(nil)

func (s *S3Store) Remove(ctx context.Context, key string) error {
	_, err := s.svc.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.opts.Bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("s3 delete: %w", err)
	}
	return nil
}
