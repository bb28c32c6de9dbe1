package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const signedURLExpiry = 15 * time.Minute

// Options configures the S3-compatible object store (AWS S3, Cloudflare R2 or
// any endpoint speaking the S3 API).
type Options struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	PublicURL string
	Folder    string
}

type S3Store struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	publicURL string
	folder    string
}

func NewS3Store(opts Options) (*S3Store, error) {
	if opts.Bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}

	cfg := aws.Config{
		Credentials: credentials.NewStaticCredentialsProvider(opts.AccessKey, opts.SecretKey, ""),
		Region:      opts.Region,
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    opts.Bucket,
		publicURL: strings.TrimRight(opts.PublicURL, "/"),
		folder:    strings.Trim(opts.Folder, "/"),
	}, nil
}

// ObjectKey builds a collision-free storage key for an uploaded file.
func (s *S3Store) ObjectKey(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	return path.Join(s.folder, uuid.NewString()+"_"+name)
}

// Upload stores the body under key and returns the public retrieval URL.
func (s *S3Store) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object failed: %w", err)
	}
	return s.publicURL + "/" + key, nil
}

// SignedGetURL resolves a signed retrieval URL for a stored object from its
// public URL. It implements extract.URLSigner.
func (s *S3Store) SignedGetURL(ctx context.Context, rawURL string) (string, error) {
	key, err := s.keyFromURL(rawURL)
	if err != nil {
		return "", err
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(signedURLExpiry))
	if err != nil {
		return "", fmt.Errorf("presign get object failed: %w", err)
	}
	return req.URL, nil
}

func (s *S3Store) keyFromURL(rawURL string) (string, error) {
	if s.publicURL != "" && strings.HasPrefix(rawURL, s.publicURL+"/") {
		return strings.TrimPrefix(rawURL, s.publicURL+"/"), nil
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse object url failed: %w", err)
	}
	key := strings.TrimPrefix(parsed.Path, "/")
	key = strings.TrimPrefix(key, s.bucket+"/")
	if key == "" {
		return "", fmt.Errorf("object key missing in url %q", rawURL)
	}
	return key, nil
}
