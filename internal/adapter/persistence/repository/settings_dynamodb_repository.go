package repository

import (
	"context"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSettingsTableName = "settings"

type settingItem struct {
	Key       string `dynamodbav:"key"`
	Value     string `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// SettingsDynamoRepository is a key-value store over a DynamoDB table.
//
// Table requirements:
//   - PK: key (string)
type SettingsDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISettingsRepository = (*SettingsDynamoRepository)(nil)

func NewSettingsDynamoRepository(ddb *dynamodb.Client, tableName string) *SettingsDynamoRepository {
	return &SettingsDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSettingsTableName),
	}
}

func (r *SettingsDynamoRepository) Get(ctx context.Context, key string) (entities.Setting, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": stringValue(key),
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Setting{}, err
	}
	if len(out.Item) == 0 {
		return entities.Setting{}, nil
	}

	var it settingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Setting{}, err
	}
	return entities.Setting{Key: it.Key, Value: it.Value, UpdatedAt: parseTime(it.UpdatedAt)}, nil
}

// Put upserts the setting.
func (r *SettingsDynamoRepository) Put(ctx context.Context, s entities.Setting) (entities.Setting, error) {
	av, err := attributevalue.MarshalMap(settingItem{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: formatTime(s.UpdatedAt),
	})
	if err != nil {
		return entities.Setting{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Setting{}, err
	}
	return s, nil
}
