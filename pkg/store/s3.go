package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// S3Client defines the S3 operations used by S3Storage.
type S3Client interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Config contains configuration for S3 storage.
type S3Config struct {
	Bucket         string `env:"BUCKET" yaml:"bucket"`
	Region         string `env:"REGION" yaml:"region"`
	Prefix         string `env:"PREFIX" yaml:"prefix"` // Optional key prefix inside the bucket
	AccessKeyID    string `env:"ACCESS_KEY_ID" yaml:"access_key_id"`
	SecretKey      string `env:"SECRET_KEY" yaml:"-"`
	Endpoint       string `env:"ENDPOINT" yaml:"endpoint"` // For S3-compatible services
	ForcePathStyle bool   `env:"FORCE_PATH_STYLE" yaml:"force_path_style"`
}

// S3Storage implements Storage for Amazon S3 and S3-compatible services.
// It is safe for concurrent use.
type S3Storage struct {
	client        S3Client
	bucket        string
	prefix        string
	uploadTimeout time.Duration
}

// S3Option configures S3Storage.
type S3Option func(*s3Options)

type s3Options struct {
	client        S3Client
	configOptions []func(*config.LoadOptions) error
	clientOptions []func(*s3.Options)
	uploadTimeout time.Duration
}

// WithS3Client sets a pre-configured client. Useful for testing with mocks.
func WithS3Client(client S3Client) S3Option {
	return func(o *s3Options) {
		o.client = client
	}
}

// WithS3ConfigOption adds a custom AWS config option.
func WithS3ConfigOption(option func(*config.LoadOptions) error) S3Option {
	return func(o *s3Options) {
		o.configOptions = append(o.configOptions, option)
	}
}

// WithS3ClientOption adds a custom S3 client option.
func WithS3ClientOption(option func(*s3.Options)) S3Option {
	return func(o *s3Options) {
		o.clientOptions = append(o.clientOptions, option)
	}
}

// WithS3UploadTimeout bounds each Put call.
func WithS3UploadTimeout(timeout time.Duration) S3Option {
	return func(o *s3Options) {
		o.uploadTimeout = timeout
	}
}

// NewS3Storage creates a new S3 storage instance.
func NewS3Storage(ctx context.Context, cfg S3Config, opts ...S3Option) (*S3Storage, error) {
	if cfg.Bucket == "" || cfg.Region == "" {
		return nil, ErrInvalidConfig
	}

	options := &s3Options{}
	for _, opt := range opts {
		opt(options)
	}

	client := options.client
	if client == nil {
		awsOptions := []func(*config.LoadOptions) error{
			config.WithRegion(cfg.Region),
		}
		if cfg.AccessKeyID != "" && cfg.SecretKey != "" {
			awsOptions = append(awsOptions,
				config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
					cfg.AccessKeyID,
					cfg.SecretKey,
					"",
				)),
			)
		}
		awsOptions = append(awsOptions, options.configOptions...)

		awsConfig, err := config.LoadDefaultConfig(ctx, awsOptions...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFailedToLoadConfig, err)
		}

		client = s3.NewFromConfig(awsConfig, func(o *s3.Options) {
			if cfg.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Endpoint)
			}
			o.UsePathStyle = cfg.ForcePathStyle
			for _, opt := range options.clientOptions {
				opt(o)
			}
		})
	}

	prefix, err := cleanKey(cfg.Prefix)
	if err != nil {
		return nil, fmt.Errorf("%w: prefix %s", ErrInvalidConfig, cfg.Prefix)
	}

	return &S3Storage{
		client:        client,
		bucket:        cfg.Bucket,
		prefix:        prefix,
		uploadTimeout: options.uploadTimeout,
	}, nil
}

func (s *S3Storage) Put(ctx context.Context, key string, r io.Reader, contentType string) (*Object, error) {
	if s.uploadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.uploadTimeout)
		defer cancel()
	}

	objectKey, rel, err := s.objectKey(key)
	if err != nil {
		return nil, err
	}
	if rel == "" {
		return nil, fmt.Errorf("%w: empty key", ErrInvalidPath)
	}

	// Buffer the body so the SDK can compute content length and checksums.
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectKey),
		Body:          bytes.NewReader(body),
		ContentLength: aws.Int64(int64(len(body))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return nil, classifyS3Error(err, "put object")
	}

	return &Object{
		Key:         rel,
		Size:        int64(len(body)),
		ContentType: contentType,
		Location:    fmt.Sprintf("s3://%s/%s", s.bucket, objectKey),
	}, nil
}

func (s *S3Storage) Get(ctx context.Context, key string) ([]byte, error) {
	objectKey, _, err := s.objectKey(key)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		return nil, classifyS3Error(err, "get object")
	}
	defer func() { _ = out.Body.Close() }()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToRead, err)
	}
	return data, nil
}

func (s *S3Storage) Exists(ctx context.Context, key string) bool {
	objectKey, _, err := s.objectKey(key)
	if err != nil {
		return false
	}

	_, err = s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	})
	return err == nil
}

func (s *S3Storage) Delete(ctx context.Context, key string) error {
	objectKey, _, err := s.objectKey(key)
	if err != nil {
		return err
	}

	// DeleteObject succeeds for missing keys; check first to report ErrObjectNotFound.
	if _, err := s.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	}); err != nil {
		return classifyS3Error(err, "head object")
	}

	if _, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey),
	}); err != nil {
		return classifyS3Error(err, "delete object")
	}
	return nil
}

// List returns the objects directly under prefix, following continuation tokens.
func (s *S3Storage) List(ctx context.Context, prefix string) ([]Object, error) {
	listPrefix, rel, err := s.objectKey(prefix)
	if err != nil {
		return nil, err
	}
	if listPrefix != "" {
		listPrefix += "/"
	}

	var (
		objects []Object
		token   *string
	)
	for {
		resp, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(s.bucket),
			Prefix:            aws.String(listPrefix),
			Delimiter:         aws.String("/"),
			ContinuationToken: token,
		})
		if err != nil {
			return nil, classifyS3Error(err, "list objects")
		}

		for _, obj := range resp.Contents {
			name := strings.TrimPrefix(aws.ToString(obj.Key), listPrefix)
			if name == "" || strings.Contains(name, "/") {
				continue
			}
			key := name
			if rel != "" {
				key = rel + "/" + name
			}
			objects = append(objects, Object{
				Key:      key,
				Size:     aws.ToInt64(obj.Size),
				Location: fmt.Sprintf("s3://%s/%s", s.bucket, aws.ToString(obj.Key)),
			})
		}

		if !aws.ToBool(resp.IsTruncated) || resp.NextContinuationToken == nil {
			break
		}
		token = resp.NextContinuationToken
	}
	return objects, nil
}

// objectKey returns the bucket key for key and the cleaned relative key.
func (s *S3Storage) objectKey(key string) (objectKey, rel string, err error) {
	rel, err = cleanKey(key)
	if err != nil {
		return "", "", fmt.Errorf("%w: %s", err, key)
	}
	switch {
	case s.prefix == "":
		return rel, rel, nil
	case rel == "":
		return s.prefix, rel, nil
	default:
		return s.prefix + "/" + rel, rel, nil
	}
}

// classifyS3Error converts S3 errors to package errors.
func classifyS3Error(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s", ErrOperationTimeout, operation)
	}
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s", ErrOperationCanceled, operation)
	}

	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, operation)
	}
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, operation)
	}
	var nsb *types.NoSuchBucket
	if errors.As(err, &nsb) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch code := apiErr.ErrorCode(); code {
		case "AccessDenied":
			return fmt.Errorf("%w: %s", ErrAccessDenied, operation)
		case "SlowDown", "ServiceUnavailable":
			return fmt.Errorf("%w: %s", ErrServiceUnavailable, operation)
		case "NoSuchKey", "NotFound":
			return fmt.Errorf("%w: %s", ErrObjectNotFound, operation)
		case "NoSuchBucket":
			return ErrBucketNotFound
		default:
			return fmt.Errorf("%s failed (code: %s): %w", operation, code, err)
		}
	}

	return fmt.Errorf("%s failed: %w", operation, err)
}
