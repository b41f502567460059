package repository

import (
	"context"
	"sort"
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMaintenanceTableName = "maintenance"

type maintenanceItem struct {
	CondoID     string `dynamodbav:"condo_id"`
	ID          string `dynamodbav:"id"`
	Title       string `dynamodbav:"title"`
	Description string `dynamodbav:"description,omitempty"`
	AssignedTo  string `dynamodbav:"assigned_to,omitempty"`
	ScheduledAt string `dynamodbav:"scheduled_at"`
	Status      string `dynamodbav:"status"`
	CreatedAt   string `dynamodbav:"created_at"`
}

// MaintenanceDynamoRepository persists maintenance tasks.
//
// Table requirements:
//   - PK: condo_id (string)
//   - SK: id (string)

type MaintenanceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMaintenanceRepository = (*MaintenanceDynamoRepository)(nil)

func NewMaintenanceDynamoRepository(ddb *dynamodb.Client) *MaintenanceDynamoRepository {
	return &MaintenanceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MAINTENANCE_TABLE", defaultMaintenanceTableName),
	}
}

func (r *MaintenanceDynamoRepository) Create(ctx context.Context, m entities.Maintenance) (entities.Maintenance, error) {
	av, err := attributevalue.MarshalMap(toMaintenanceItem(m))
	if err != nil {
		return entities.Maintenance{}, err
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
		return entities.Maintenance{}, err
	}
	return m, nil
}

func (r *MaintenanceDynamoRepository) GetByID(ctx context.Context, condoID, id string) (entities.Maintenance, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"condo_id": &types.AttributeValueMemberS{Value: condoID},
			"id":       &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Maintenance{}, err
	}
	if len(out.Item) == 0 {
		return entities.Maintenance{}, nil
	}

	var it maintenanceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Maintenance{}, err
	}
	return fromMaintenanceItem(it), nil
}

func (r *MaintenanceDynamoRepository) ListByCondo(ctx context.Context, condoID string) ([]entities.Maintenance, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("condo_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: condoID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Maintenance, 0, len(out.Items))
	for _, raw := range out.Items {
		var it maintenanceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromMaintenanceItem(it))
	}
	// Earliest scheduled first, like the agenda screen.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].ScheduledAt.Before(items[j].ScheduledAt)
	})
	return items, nil
}

func (r *MaintenanceDynamoRepository) UpdateStatus(ctx context.Context, condoID, id string, status entities.MaintenanceStatus) (entities.Maintenance, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"condo_id": &types.AttributeValueMemberS{Value: condoID},
			"id":       &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Maintenance{}, nil
		}
		return entities.Maintenance{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Maintenance{}, nil
	}

	var it maintenanceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Maintenance{}, err
	}
	return fromMaintenanceItem(it), nil
}

func toMaintenanceItem(m entities.Maintenance) maintenanceItem {
	return maintenanceItem{
		CondoID:     m.CondoID,
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		AssignedTo:  m.AssignedTo,
		ScheduledAt: m.ScheduledAt.UTC().Format(time.RFC3339Nano),
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromMaintenanceItem(it maintenanceItem) entities.Maintenance {
	scheduledAt, _ := time.Parse(time.RFC3339Nano, it.ScheduledAt)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Maintenance{
		CondoID:     it.CondoID,
		ID:          it.ID,
		Title:       it.Title,
		Description: it.Description,
		AssignedTo:  it.AssignedTo,
		ScheduledAt: scheduledAt,
		Status:      entities.MaintenanceStatus(it.Status),
		CreatedAt:   createdAt,
	}
}
