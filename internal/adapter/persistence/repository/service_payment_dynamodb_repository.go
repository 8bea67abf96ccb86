package repository

import (
	"context"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "service_payments"
	paymentsServiceIDIndex   = "service_id-index"
)

type servicePaymentItem struct {
	ID                 string                 `dynamodbav:"id"`
	ServiceID          string                 `dynamodbav:"service_id"`
	Amount             string                 `dynamodbav:"amount"`
	Date               string                 `dynamodbav:"date"`
	ProviderStatus     string                 `dynamodbav:"provider_status"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// ServicePaymentDynamoRepository persists ServicePayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: service_id-index (PK: service_id)
type ServicePaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServicePaymentRepository = (*ServicePaymentDynamoRepository)(nil)

func NewServicePaymentDynamoRepository(ddb *dynamodb.Client, tableName string) *ServicePaymentDynamoRepository {
	return &ServicePaymentDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultPaymentsTableName),
	}
}

func (r *ServicePaymentDynamoRepository) Create(ctx context.Context, p entities.ServicePayment) (entities.ServicePayment, error) {
	av, err := attributevalue.MarshalMap(toServicePaymentItem(p))
	if err != nil {
		return entities.ServicePayment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServicePayment{}, err
	}
	return p, nil
}

func (r *ServicePaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.ServicePayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": stringValue(id),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServicePayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServicePayment{}, nil
	}

	var it servicePaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServicePayment{}, err
	}
	return fromServicePaymentItem(it), nil
}

func (r *ServicePaymentDynamoRepository) ListByServiceID(ctx context.Context, serviceID string) ([]entities.ServicePayment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsServiceIDIndex),
		KeyConditionExpression: aws.String("service_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": stringValue(serviceID),
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.ServicePayment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it servicePaymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromServicePaymentItem(it))
	}
	return items, nil
}

func toServicePaymentItem(p entities.ServicePayment) servicePaymentItem {
	return servicePaymentItem{
		ID:                 p.ID,
		ServiceID:          p.ServiceID,
		Amount:             formatAmount(p.Amount),
		Date:               p.Date.UTC().Format(time.RFC3339Nano),
		ProviderStatus:     p.ProviderStatus,
		ProviderPayload:    p.ProviderPayload,
		ProviderPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func fromServicePaymentItem(it servicePaymentItem) entities.ServicePayment {
	return entities.ServicePayment{
		ID:                 it.ID,
		ServiceID:          it.ServiceID,
		Amount:             parseAmount(it.Amount),
		Date:               parseTime(it.Date),
		ProviderStatus:     it.ProviderStatus,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
