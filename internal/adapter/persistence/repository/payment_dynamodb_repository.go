package repository

import (
	"context"
	"strconv"
	"time"

	"condo_gestao/internal/domain/entities"
	"condo_gestao/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPaymentsTableName = "payments"

type paymentItem struct {
	CondoID    string `dynamodbav:"condo_id"`
	ID         string `dynamodbav:"id"`
	ResidentID string `dynamodbav:"resident_id"`
	Amount     string `dynamodbav:"amount"`
	Month      int    `dynamodbav:"month"`
	Year       int    `dynamodbav:"year"`
	Status     string `dynamodbav:"status"`
	Method     string `dynamodbav:"method,omitempty"`
	DueDate    string `dynamodbav:"due_date"`
	PaidAt     string `dynamodbav:"paid_at,omitempty"`
	ReceiptURL string `dynamodbav:"receipt_url,omitempty"`
	Note       string `dynamodbav:"note,omitempty"`
}

// PaymentDynamoRepository persists Payment records in DynamoDB.
//
// Table requirements:
//   - PK: condo_id (string)
//   - SK: id (string)
//
// Generated charges use deterministic ids, so the conditional put on Create
// is the store-layer guard for the one-charge-per-period invariant. DueDate
// is stored as a fixed-width RFC 3339 UTC string so the overdue query can
// compare it lexicographically.

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
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
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, condoID, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"condo_id": &types.AttributeValueMemberS{Value: condoID},
			"id":       &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) FindByResidentAndPeriod(ctx context.Context, condoID, residentID string, month, year int) (entities.Payment, error) {
	items, err := r.query(ctx, condoID,
		"#resident_id = :rid AND #month = :m AND #year = :y",
		map[string]string{"#resident_id": "resident_id", "#month": "month", "#year": "year"},
		map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: residentID},
			":m":   &types.AttributeValueMemberN{Value: strconv.Itoa(month)},
			":y":   &types.AttributeValueMemberN{Value: strconv.Itoa(year)},
		})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(items) == 0 {
		return entities.Payment{}, nil
	}
	return items[0], nil
}

func (r *PaymentDynamoRepository) ListByResident(ctx context.Context, condoID, residentID string) ([]entities.Payment, error) {
	return r.query(ctx, condoID,
		"#resident_id = :rid",
		map[string]string{"#resident_id": "resident_id"},
		map[string]types.AttributeValue{
			":rid": &types.AttributeValueMemberS{Value: residentID},
		})
}

func (r *PaymentDynamoRepository) ListByYear(ctx context.Context, condoID string, year int) ([]entities.Payment, error) {
	return r.query(ctx, condoID,
		"#year = :y",
		map[string]string{"#year": "year"},
		map[string]types.AttributeValue{
			":y": &types.AttributeValueMemberN{Value: strconv.Itoa(year)},
		})
}

func (r *PaymentDynamoRepository) ListPendingBefore(ctx context.Context, condoID string, before time.Time) ([]entities.Payment, error) {
	return r.query(ctx, condoID,
		"#status = :pending AND #due_date < :before",
		map[string]string{"#status": "status", "#due_date": "due_date"},
		map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPendente)},
			":before":  &types.AttributeValueMemberS{Value: formatDueDate(before)},
		})
}

// FindLatestByResident returns the record feeding the standing classifier:
// the most recently paid record. Unpaid charges never shadow a paid one; a
// pending charge is only returned when the resident has no paid record at
// all.
func (r *PaymentDynamoRepository) FindLatestByResident(ctx context.Context, condoID, residentID string) (entities.Payment, error) {
	items, err := r.ListByResident(ctx, condoID, residentID)
	if err != nil {
		return entities.Payment{}, err
	}
	return latestPaymentRecord(items), nil
}

func latestPaymentRecord(items []entities.Payment) entities.Payment {
	var latest entities.Payment
	for _, p := range items {
		if p.PaidAt == nil {
			continue
		}
		if latest.PaidAt == nil || p.PaidAt.After(*latest.PaidAt) {
			latest = p
		}
	}
	if latest.PaidAt != nil {
		return latest
	}

	for _, p := range items {
		if latest.ID == "" || p.DueDate.After(latest.DueDate) {
			latest = p
		}
	}
	return latest
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, condoID, id string, status entities.PaymentStatus, method entities.PaymentMethod, paidAt *time.Time) (entities.Payment, error) {
	cond, expr, vals, names := buildStatusUpdate(status, method, paidAt)
	return r.update(ctx, condoID, id, cond, expr, vals, names)
}

// buildStatusUpdate assembles the UpdateItem expressions for a status
// transition. Only pendente records may go atrasado: a record confirmed
// between the sweep's pending query and its update keeps confirmado and the
// conditional failure surfaces as not-found.
func buildStatusUpdate(status entities.PaymentStatus, method entities.PaymentMethod, paidAt *time.Time) (string, string, map[string]types.AttributeValue, map[string]string) {
	cond := "attribute_exists(#id)"
	expr := "SET #status = :status"
	vals := map[string]types.AttributeValue{
		":status": &types.AttributeValueMemberS{Value: string(status)},
	}
	names := map[string]string{"#status": "status"}
	if method != "" {
		expr += ", #method = :method"
		vals[":method"] = &types.AttributeValueMemberS{Value: string(method)}
		names["#method"] = "method"
	}
	if paidAt != nil {
		expr += ", #paid_at = :paid_at"
		vals[":paid_at"] = &types.AttributeValueMemberS{Value: paidAt.UTC().Format(time.RFC3339Nano)}
		names["#paid_at"] = "paid_at"
	}
	if status == entities.PaymentStatusAtrasado {
		cond += " AND #status = :only_pending"
		vals[":only_pending"] = &types.AttributeValueMemberS{Value: string(entities.PaymentStatusPendente)}
	}
	return cond, expr, vals, names
}

func (r *PaymentDynamoRepository) UpdateReceipt(ctx context.Context, condoID, id, receiptURL, note string) (entities.Payment, error) {
	expr := "SET #receipt_url = :receipt_url"
	vals := map[string]types.AttributeValue{
		":receipt_url": &types.AttributeValueMemberS{Value: receiptURL},
	}
	names := map[string]string{"#receipt_url": "receipt_url"}
	if note != "" {
		expr += ", #note = :note"
		vals[":note"] = &types.AttributeValueMemberS{Value: note}
		names["#note"] = "note"
	}
	return r.update(ctx, condoID, id, "attribute_exists(#id)", expr, vals, names)
}

func (r *PaymentDynamoRepository) update(ctx context.Context, condoID, id, cond, expr string, vals map[string]types.AttributeValue, names map[string]string) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"condo_id": &types.AttributeValueMemberS{Value: condoID},
			"id":       &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(cond),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: vals,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) query(ctx context.Context, condoID, filterExpr string, names map[string]string, vals map[string]types.AttributeValue) ([]entities.Payment, error) {
	vals[":cid"] = &types.AttributeValueMemberS{Value: condoID}
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		KeyConditionExpression:    aws.String("condo_id = :cid"),
		FilterExpression:          aws.String(filterExpr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Payment, 0, len(out.Items))
	for _, raw := range out.Items {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

// formatDueDate keeps due dates fixed-width (whole seconds, UTC) so that
// string comparison in filter expressions matches time order.
func formatDueDate(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format(time.RFC3339)
}

func toPaymentItem(p entities.Payment) paymentItem {
	it := paymentItem{
		CondoID:    p.CondoID,
		ID:         p.ID,
		ResidentID: p.ResidentID,
		Amount:     floatToString(p.Amount),
		Month:      p.Month,
		Year:       p.Year,
		Status:     string(p.Status),
		Method:     string(p.Method),
		DueDate:    formatDueDate(p.DueDate),
		ReceiptURL: p.ReceiptURL,
		Note:       p.Note,
	}
	if p.PaidAt != nil {
		it.PaidAt = p.PaidAt.UTC().Format(time.RFC3339Nano)
	}
	return it
}

func fromPaymentItem(it paymentItem) entities.Payment {
	dueDate, _ := time.Parse(time.RFC3339, it.DueDate)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	p := entities.Payment{
		CondoID:    it.CondoID,
		ID:         it.ID,
		ResidentID: it.ResidentID,
		Amount:     amount,
		Month:      it.Month,
		Year:       it.Year,
		Status:     entities.PaymentStatus(it.Status),
		Method:     entities.PaymentMethod(it.Method),
		DueDate:    dueDate,
		ReceiptURL: it.ReceiptURL,
		Note:       it.Note,
	}
	if it.PaidAt != "" {
		if paidAt, err := time.Parse(time.RFC3339Nano, it.PaidAt); err == nil {
			p.PaidAt = &paidAt
		}
	}
	return p
}
