package publish

import (
	"bytes"
	"context"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/vango-dev/vlite/internal/errors"
)

// ContentType is the content type of published pages.
const ContentType = "text/html; charset=utf-8"

// PutObjectAPI is the subset of *s3.Client used by S3Publisher.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Options configures NewS3Client.
type S3Options struct {
	// Region is the bucket region (default: AWS_REGION, then "us-east-1").
	Region string

	// Endpoint overrides the S3 endpoint for S3-compatible stores.
	// Path-style addressing is used when it is set.
	Endpoint string

	// Credentials defaults to the AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
	// and AWS_SESSION_TOKEN environment variables.
	Credentials aws.CredentialsProvider
}

// NewS3Client builds an S3 client from opts.
func NewS3Client(opts S3Options) *s3.Client {
	region := opts.Region
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}
	creds := opts.Credentials
	if creds == nil {
		creds = EnvCredentials()
	}

	return s3.New(s3.Options{
		Region:                     region,
		Credentials:                aws.NewCredentialsCache(creds),
		RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
	}, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
			o.UsePathStyle = true
		}
	})
}

// EnvCredentials reads static credentials from the standard AWS variables.
func EnvCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		id := os.Getenv("AWS_ACCESS_KEY_ID")
		secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
		if id == "" || secret == "" {
			return aws.Credentials{}, errors.New("E502").
				WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY are not set")
		}
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "Environment",
		}, nil
	})
}

// StaticCredentials returns a provider for fixed keys.
func StaticCredentials(id, secret string) aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{AccessKeyID: id, SecretAccessKey: secret, Source: "Static"}, nil
	})
}

// S3Publisher uploads pages to an S3 bucket.
type S3Publisher struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
}

// NewS3Publisher creates a publisher writing to bucket under prefix.
func NewS3Publisher(client PutObjectAPI, bucket, prefix string) *S3Publisher {
	return &S3Publisher{
		client:       client,
		bucket:       bucket,
		prefix:       prefix,
		cacheControl: "no-cache",
	}
}

// WithCacheControl sets the Cache-Control header stored with each page.
func (p *S3Publisher) WithCacheControl(v string) *S3Publisher {
	p.cacheControl = v
	return p
}

// Publish uploads html under prefix+key.
func (p *S3Publisher) Publish(ctx context.Context, key string, html []byte) error {
	if p.bucket == "" {
		return errors.New("E502").WithDetail("no bucket configured").
			WithSuggestion(`Set "publish.bucket" in vlite.json or pass --bucket`)
	}
	fullKey := Key(p.prefix, key)

	_, err := p.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(p.bucket),
		Key:          aws.String(fullKey),
		Body:         bytes.NewReader(html),
		ContentType:  aws.String(ContentType),
		CacheControl: aws.String(p.cacheControl),
	})
	if err != nil {
		return errors.New("E501").WithDetailf("s3://%s/%s", p.bucket, fullKey).Wrap(err)
	}
	return nil
}

// Key joins prefix and name into an object key without a leading slash.
func Key(prefix, name string) string {
	return strings.TrimPrefix(path.Join(prefix, name), "/")
}
