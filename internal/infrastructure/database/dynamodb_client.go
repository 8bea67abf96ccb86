package database

import (
	"context"

	appconfig "gestao_servicos/internal/infrastructure/config"
	"gestao_servicos/internal/infrastructure/logging"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ConnectDynamoDB creates a DynamoDB client for cfg.AWSRegion, pointed at
// cfg.DynamoDBEndpoint when one is configured.
func ConnectDynamoDB(cfg appconfig.Config) *dynamodb.Client {
	awsCfg, err := NewDynamoDBConfig(context.Background(), cfg.AWSRegion, cfg.DynamoDBEndpoint)
	if err != nil {
		logging.For("database", "infrastructure").WithError(err).Fatal("failed to create dynamodb config")
	}
	return dynamodb.NewFromConfig(awsCfg)
}

// NewDynamoDBConfig resolves credentials through the SDK default chain. A
// custom endpoint means DynamoDB Local, which ignores credentials but still
// needs some to sign with.
func NewDynamoDBConfig(ctx context.Context, region, endpoint string) (aws.Config, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}

	if endpoint != "" {
		loadOpts = append(loadOpts,
			config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("local", "local", "")),
			config.WithEndpointResolverWithOptions(localEndpoint(endpoint)),
		)
	}

	return config.LoadDefaultConfig(ctx, loadOpts...)
}

func localEndpoint(url string) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, _ ...interface{}) (aws.Endpoint, error) {
		if service == dynamodb.ServiceID {
			return aws.Endpoint{URL: url, SigningRegion: region, HostnameImmutable: true}, nil
		}
		return aws.Endpoint{}, &aws.EndpointNotFoundError{}
	}
}
