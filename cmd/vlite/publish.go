package main

import (
	"github.com/spf13/cobra"

	"github.com/vango-dev/vlite/internal/errors"
	"github.com/vango-dev/vlite/pkg/host/memdom"
	"github.com/vango-dev/vlite/pkg/publish"
)

func publishCmd(c *cli) *cobra.Command {
	var (
		clicks   []string
		bucket   string
		prefix   string
		region   string
		endpoint string
	)

	cmd := &cobra.Command{
		Use:   "publish <demo>",
		Short: "Render a demo app and upload it to S3",
		Long: `Render a demo app to a standalone page and upload it as
<prefix>/<demo>.html. Flags override the "publish" section of vlite.json.
Credentials are read from AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY.

Examples:
  vlite publish counter --bucket my-site
  vlite publish todo --bucket site --prefix apps --endpoint http://localhost:9000`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := c.cfg.Publish
			if bucket != "" {
				target.Bucket = bucket
			}
			if prefix != "" {
				target.Prefix = prefix
			}
			if region != "" {
				target.Region = region
			}
			if endpoint != "" {
				target.Endpoint = endpoint
			}
			if target.Bucket == "" {
				return errors.New("E502").
					WithSuggestion(`Set "publish.bucket" in vlite.json or pass --bucket`)
			}

			opts := memdom.HTMLOptions{Pretty: c.cfg.Render.Pretty, Indent: c.cfg.Render.Indent}
			body, err := renderDemo(args[0], clicks, c.setup(), opts)
			if err != nil {
				return err
			}
			page, err := publish.Page(args[0], body)
			if err != nil {
				return err
			}

			client := publish.NewS3Client(publish.S3Options{
				Region:   target.Region,
				Endpoint: target.Endpoint,
			})
			p := publish.NewS3Publisher(client, target.Bucket, target.Prefix)
			key := args[0] + ".html"
			if err := p.Publish(cmd.Context(), key, page); err != nil {
				return err
			}

			c.logger.Info("published", "bucket", target.Bucket, "key", publish.Key(target.Prefix, key), "bytes", len(page))
			success(cmd, "Published s3://%s/%s", target.Bucket, publish.Key(target.Prefix, key))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&clicks, "click", nil, "Class of an element to click before rendering (repeatable)")
	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix")
	cmd.Flags().StringVar(&region, "region", "", "Bucket region")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")

	return cmd
}
