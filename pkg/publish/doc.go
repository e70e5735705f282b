// Package publish uploads statically rendered vlite pages.
//
// A Publisher stores one HTML document under a key. S3Publisher writes to an
// S3 bucket (or any S3-compatible store such as MinIO); DirPublisher writes to
// a local directory and is what `vlite render --out` uses.
//
//	client := publish.NewS3Client(publish.S3Options{Region: "us-east-1"})
//	p := publish.NewS3Publisher(client, "my-site", "apps/")
//	err := p.Publish(ctx, "counter.html", page)
package publish

import "context"

// Publisher stores a rendered page under key.
type Publisher interface {
	Publish(ctx context.Context, key string, html []byte) error
}
