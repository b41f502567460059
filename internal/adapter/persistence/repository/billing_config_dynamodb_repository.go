package repository

import (
	"context"
	"strconv"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBillingConfigTableName = "billing_configs"

type billingConfigItem struct {
	CondoID       string `dynamodbav:"condo_id"`
	DefaultAmount string `dynamodbav:"valor_padrao"`
	DueDay        int    `dynamodbav:"dia_vencimento"`
	PixKey        string `dynamodbav:"pix_key,omitempty"`
	PixType       string `dynamodbav:"pix_type,omitempty"`
	WebhookURL    string `dynamodbav:"webhook_url,omitempty"`
	Timezone      string `dynamodbav:"timezone,omitempty"`
}

// BillingConfigDynamoRepository persists per-condo billing settings.
//
// Table requirements:
//   - PK: condo_id (string), one item per condo.
//
// A missing item is not an error: reads fall back to the documented default
// configuration, mirroring how the settings screen behaves before the first
// save.

type BillingConfigDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingConfigRepository = (*BillingConfigDynamoRepository)(nil)

func NewBillingConfigDynamoRepository(ddb *dynamodb.Client) *BillingConfigDynamoRepository {
	return &BillingConfigDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLING_CONFIG_TABLE", defaultBillingConfigTableName),
	}
}

func (r *BillingConfigDynamoRepository) Get(ctx context.Context, condoID string) (entities.BillingConfig, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"condo_id": &types.AttributeValueMemberS{Value: condoID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingConfig{}, err
	}
	if len(out.Item) == 0 {
		return entities.DefaultBillingConfig(condoID), nil
	}

	var it billingConfigItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingConfig{}, err
	}
	return fromBillingConfigItem(it), nil
}

func (r *BillingConfigDynamoRepository) Save(ctx context.Context, cfg entities.BillingConfig) (entities.BillingConfig, error) {
	av, err := attributevalue.MarshalMap(toBillingConfigItem(cfg))
	if err != nil {
		return entities.BillingConfig{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.BillingConfig{}, err
	}
	return cfg, nil
}

func toBillingConfigItem(cfg entities.BillingConfig) billingConfigItem {
	return billingConfigItem{
		CondoID:       cfg.CondoID,
		DefaultAmount: floatToString(cfg.DefaultAmount),
		DueDay:        cfg.DueDay,
		PixKey:        cfg.PixKey,
		PixType:       string(cfg.PixType),
		WebhookURL:    cfg.WebhookURL,
		Timezone:      cfg.Timezone,
	}
}

func fromBillingConfigItem(it billingConfigItem) entities.BillingConfig {
	amount, _ := strconv.ParseFloat(it.DefaultAmount, 64)
	return entities.BillingConfig{
		CondoID:       it.CondoID,
		DefaultAmount: amount,
		DueDay:        it.DueDay,
		PixKey:        it.PixKey,
		PixType:       entities.PixType(it.PixType),
		WebhookURL:    it.WebhookURL,
		Timezone:      it.Timezone,
	}
}
