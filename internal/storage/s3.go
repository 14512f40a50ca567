package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/RMahshie/voltadash/pkg/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// GraphExporter publishes saved graphs as downloadable JSON documents
type GraphExporter interface {
	Export(ctx context.Context, graph *models.Graph) (string, error)
	Delete(ctx context.Context, graphID string) error
	URLExpiry() time.Duration
}

type s3Exporter struct {
	client    *s3.Client
	bucket    string
	urlExpiry time.Duration
	endpoint  string // For MinIO compatibility
}

// S3Config holds configuration for the S3 exporter
type S3Config struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Exporter creates a new S3 backed graph exporter
func NewS3Exporter(ctx context.Context, cfg S3Config) (GraphExporter, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("S3_BUCKET is required")
	}

	region := cfg.Region
	if cfg.Endpoint != "" || region == "" {
		region = "us-east-1" // MinIO doesn't care about region
	}

	opts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		endpoint := cfg.Endpoint
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "http://" + endpoint
		}
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = &endpoint
			o.UsePathStyle = true // MinIO requires path-style URLs
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &s3Exporter{
		client:    client,
		bucket:    cfg.Bucket,
		urlExpiry: 24 * time.Hour,
		endpoint:  cfg.Endpoint,
	}, nil
}

// ExportKey is the object key a graph is exported under
func ExportKey(graphID string) string {
	return fmt.Sprintf("graphs/%s.json", graphID)
}

// Export uploads the graph and returns a pre-signed download URL
func (s *s3Exporter) Export(ctx context.Context, graph *models.Graph) (string, error) {
	body, err := json.Marshal(graph)
	if err != nil {
		return "", fmt.Errorf("failed to marshal graph: %w", err)
	}

	key := ExportKey(graph.ID)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload graph: %w", err)
	}

	presignClient := s3.NewPresignClient(s.client)
	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = s.urlExpiry
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate download URL: %w", err)
	}

	return request.URL, nil
}

// Delete removes a graph's export. Deleting a missing object succeeds.
func (s *s3Exporter) Delete(ctx context.Context, graphID string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(ExportKey(graphID)),
	})
	if err != nil {
		return fmt.Errorf("failed to delete export: %w", err)
	}

	return nil
}

func (s *s3Exporter) URLExpiry() time.Duration {
	return s.urlExpiry
}
