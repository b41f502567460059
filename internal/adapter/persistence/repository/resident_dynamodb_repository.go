package repository

import (
	"context"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultResidentsTableName = "residents"

type residentItem struct {
	CondoID string `dynamodbav:"condo_id"`
	ID      string `dynamodbav:"id"`
	Name    string `dynamodbav:"name"`
	Unit    string `dynamodbav:"unit"`
	Email   string `dynamodbav:"email,omitempty"`
	Phone   string `dynamodbav:"phone,omitempty"`
}

// ResidentDynamoRepository reads the resident registry.
//
// Table requirements:
//   - PK: condo_id (string)
//   - SK: id (string)

type ResidentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IResidentDirectory = (*ResidentDynamoRepository)(nil)

func NewResidentDynamoRepository(ddb *dynamodb.Client) *ResidentDynamoRepository {
	return &ResidentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RESIDENTS_TABLE", defaultResidentsTableName),
	}
}

func (r *ResidentDynamoRepository) ListByCondo(ctx context.Context, condoID string) ([]entities.Resident, error) {
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

	items := make([]entities.Resident, 0, len(out.Items))
	for _, raw := range out.Items {
		var it residentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromResidentItem(it))
	}
	return items, nil
}

func (r *ResidentDynamoRepository) GetByID(ctx context.Context, condoID, id string) (entities.Resident, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"condo_id": &types.AttributeValueMemberS{Value: condoID},
			"id":       &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Resident{}, err
	}
	if len(out.Item) == 0 {
		return entities.Resident{}, nil
	}

	var it residentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Resident{}, err
	}
	return fromResidentItem(it), nil
}

func fromResidentItem(it residentItem) entities.Resident {
	return entities.Resident{
		CondoID: it.CondoID,
		ID:      it.ID,
		Name:    it.Name,
		Unit:    it.Unit,
		Email:   it.Email,
		Phone:   it.Phone,
	}
}
