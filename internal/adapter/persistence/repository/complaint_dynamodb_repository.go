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

const defaultComplaintsTableName = "complaints"

type complaintItem struct {
	CondoID     string `dynamodbav:"condo_id"`
	ID          string `dynamodbav:"id"`
	Unit        string `dynamodbav:"unit"`
	Category    string `dynamodbav:"category"`
	Description string `dynamodbav:"description"`
	Status      string `dynamodbav:"status"`
	Response    string `dynamodbav:"response,omitempty"`
	CreatedAt   string `dynamodbav:"created_at"`
	RespondedAt string `dynamodbav:"responded_at,omitempty"`
}

// ComplaintDynamoRepository persists complaints.
//
// Table requirements:
//   - PK: condo_id (string)
//   - SK: id (string)

type ComplaintDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IComplaintRepository = (*ComplaintDynamoRepository)(nil)

func NewComplaintDynamoRepository(ddb *dynamodb.Client) *ComplaintDynamoRepository {
	return &ComplaintDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COMPLAINTS_TABLE", defaultComplaintsTableName),
	}
}

func (r *ComplaintDynamoRepository) Create(ctx context.Context, c entities.Complaint) (entities.Complaint, error) {
	av, err := attributevalue.MarshalMap(toComplaintItem(c))
	if err != nil {
		return entities.Complaint{}, err
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
		return entities.Complaint{}, err
	}
	return c, nil
}

func (r *ComplaintDynamoRepository) GetByID(ctx context.Context, condoID, id string) (entities.Complaint, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"condo_id": &types.AttributeValueMemberS{Value: condoID},
			"id":       &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Complaint{}, err
	}
	if len(out.Item) == 0 {
		return entities.Complaint{}, nil
	}

	var it complaintItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Complaint{}, err
	}
	return fromComplaintItem(it), nil
}

func (r *ComplaintDynamoRepository) ListByCondo(ctx context.Context, condoID string, filter interfaces.ComplaintFilter) ([]entities.Complaint, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("condo_id = :cid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: condoID},
		},
	}

	filterExpr := ""
	names := map[string]string{}
	if filter.Status != "" {
		filterExpr = "#status = :status"
		names["#status"] = "status"
		input.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(filter.Status)}
	}
	if filter.Unit != "" {
		if filterExpr != "" {
			filterExpr += " AND "
		}
		filterExpr += "#unit = :unit"
		names["#unit"] = "unit"
		input.ExpressionAttributeValues[":unit"] = &types.AttributeValueMemberS{Value: filter.Unit}
	}
	if filterExpr != "" {
		input.FilterExpression = aws.String(filterExpr)
		input.ExpressionAttributeNames = names
	}

	out, err := r.ddb.Query(ctx, input)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Complaint, 0, len(out.Items))
	for _, raw := range out.Items {
		var it complaintItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromComplaintItem(it))
	}
	// Newest first, like the triage screen.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items, nil
}

func (r *ComplaintDynamoRepository) UpdateStatus(ctx context.Context, condoID, id string, status entities.ComplaintStatus, response string, respondedAt *time.Time) (entities.Complaint, error) {
	expr := "SET #status = :status"
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{"#status": "status"}
	if response != "" {
		expr += ", #response = :response"
		vals[":response"] = &types.AttributeValueMemberS{Value: response}
		names["#response"] = "response"
	}
	if respondedAt != nil {
		expr += ", #responded_at = :responded_at"
		vals[":responded_at"] = &types.AttributeValueMemberS{Value: respondedAt.UTC().Format(time.RFC3339Nano)}
		names["#responded_at"] = "responded_at"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"condo_id": &types.AttributeValueMemberS{Value: condoID},
			"id":       &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Complaint{}, nil
		}
		return entities.Complaint{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Complaint{}, nil
	}

	var it complaintItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Complaint{}, err
	}
	return fromComplaintItem(it), nil
}

func toComplaintItem(c entities.Complaint) complaintItem {
	it := complaintItem{
		CondoID:     c.CondoID,
		ID:          c.ID,
		Unit:        c.Unit,
		Category:    c.Category,
		Description: c.Description,
		Status:      string(c.Status),
		Response:    c.Response,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
	if c.RespondedAt != nil {
		it.RespondedAt = c.RespondedAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromComplaintItem(it complaintItem) entities.Complaint {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	c := entities.Complaint{
		CondoID:     it.CondoID,
		ID:          it.ID,
		Unit:        it.Unit,
		Category:    it.Category,
		Description: it.Description,
		Status:      entities.ComplaintStatus(it.Status),
		Response:    it.Response,
		CreatedAt:   createdAt,
	}
	if it.RespondedAt != "" {
		if respondedAt, err := time.Parse(time.RFC3339Nano, it.RespondedAt); err == nil {
			c.RespondedAt = &respondedAt
		}
	}
	return c
}
