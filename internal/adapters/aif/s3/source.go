// Package s3 loads arterial signals from S3-compatible object storage.
package s3

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/bnema/dscfwd/internal/adapters/aif/ascii"
	"github.com/bnema/dscfwd/internal/ports"
)

const Scheme = "s3"

// Config holds explicit construction parameters. Unset fields fall back to
// the default AWS credential and region chain.
type Config struct {
	Region    string
	Endpoint  string // optional, e.g. MinIO
	PathStyle bool
}

// Environment variables:
//   DSCFWD_S3_REGION=<region> (default us-east-1)
//   DSCFWD_S3_ENDPOINT=<url>  (optional)
//   DSCFWD_S3_PATH_STYLE=true|false
//   AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY / AWS_SESSION_TOKEN (optional)

func ConfigFromEnv() Config {
	return Config{
		Region:    os.Getenv("DSCFWD_S3_REGION"),
		Endpoint:  os.Getenv("DSCFWD_S3_ENDPOINT"),
		PathStyle: strings.EqualFold(os.Getenv("DSCFWD_S3_PATH_STYLE"), "true"),
	}
}

type Source struct {
	client *s3.Client
}

var _ ports.AIFSource = (*Source)(nil)

func New(ctx context.Context, cfg Config) (*Source, error) {
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return NewWithClient(client), nil
}

func NewWithClient(client *s3.Client) *Source {
	return &Source{client: client}
}

// Load fetches and parses the object named by an s3://bucket/key reference.
func (s *Source) Load(ctx context.Context, ref string) ([]float64, error) {
	bucket, key, err := ParseRef(ref)
	if err != nil {
		return nil, err
	}

	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &bucket, Key: &key})
	if err != nil {
		return nil, fmt.Errorf("get arterial signal %s: %w", ref, err)
	}
	defer out.Body.Close()

	values, err := ascii.Parse(out.Body)
	if err != nil {
		return nil, fmt.Errorf("parse arterial signal %s: %w", ref, err)
	}

	return values, nil
}

// ParseRef splits s3://bucket/key into its bucket and key.
func ParseRef(ref string) (string, string, error) {
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return "", "", fmt.Errorf("parse s3 reference %q: %w", ref, err)
	}
	if u.Scheme != Scheme {
		return "", "", fmt.Errorf("s3 reference %q: unexpected scheme %q", ref, u.Scheme)
	}

	key := strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", errors.New("s3 reference must look like s3://bucket/key")
	}

	return u.Host, key, nil
}
