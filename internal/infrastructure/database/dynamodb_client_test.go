package database

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func TestNewDynamoDBConfig_LocalEndpoint(t *testing.T) {
	cfg, err := NewDynamoDBConfig(context.Background(), "us-east-1", "http://localhost:8000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "us-east-1" {
		t.Fatalf("expected us-east-1, got %q", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "local" {
		t.Fatalf("unexpected credentials %+v", creds)
	}
}

func TestLocalEndpoint(t *testing.T) {
	resolve := localEndpoint("http://dynamodb:8000")

	ep, err := resolve(dynamodb.ServiceID, "sa-east-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ep.URL != "http://dynamodb:8000" || ep.SigningRegion != "sa-east-1" || !ep.HostnameImmutable {
		t.Fatalf("unexpected endpoint %+v", ep)
	}

	_, err = resolve("S3", "sa-east-1")
	var notFound *aws.EndpointNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected EndpointNotFoundError, got %v", err)
	}
}
