package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"bistro_core/internal/domain/entities"
	"bistro_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultOrdersTableName = "orders"
	ordersStatusIndex      = "status-index"
)

type orderLineItem struct {
	MenuItemID string `dynamodbav:"menu_item_id"`
	Name       string `dynamodbav:"name"`
	Category   string `dynamodbav:"category"`
	UnitPrice  string `dynamodbav:"unit_price"`
	Quantity   int    `dynamodbav:"quantity"`
}

type orderItem struct {
	ID          string          `dynamodbav:"id"`
	Items       []orderLineItem `dynamodbav:"items"`
	TotalAmount string          `dynamodbav:"total_amount"`

	OrderType     string `dynamodbav:"order_type"`
	ScheduledDate string `dynamodbav:"scheduled_date,omitempty"`
	ScheduledTime string `dynamodbav:"scheduled_time,omitempty"`
	Priority      string `dynamodbav:"priority"`
	SlotKey       string `dynamodbav:"slot_key,omitempty"`

	ComplexityScore      int `dynamodbav:"complexity_score"`
	EstimatedPrepMinutes int `dynamodbav:"estimated_prep_minutes"`

	Status           string `dynamodbav:"status"`
	ConfirmedAt      string `dynamodbav:"confirmed_at,omitempty"`
	StartedCookingAt string `dynamodbav:"started_cooking_at,omitempty"`
	ReadyAt          string `dynamodbav:"ready_at,omitempty"`
	CompletedAt      string `dynamodbav:"completed_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// OrderDynamoRepository persists Order entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: status-index (PK: status)
//
// Status transitions are conditional on the prior status, so concurrent
// writers serialize at the table and each lifecycle timestamp is written by
// exactly one transition.

type OrderDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrderRepository = (*OrderDynamoRepository)(nil)

func NewOrderDynamoRepository(ddb *dynamodb.Client) *OrderDynamoRepository {
	return &OrderDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORDERS_TABLE", defaultOrdersTableName),
	}
}

func (r *OrderDynamoRepository) Create(ctx context.Context, o entities.Order) (entities.Order, error) {
	it := toOrderItem(o)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Order{}, err
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
		return entities.Order{}, err
	}
	return o, nil
}

func (r *OrderDynamoRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Order{}, err
	}
	if len(out.Item) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

// UpdateStatus commits a transition iff the stored status still equals from.
// The transition that introduces a lifecycle timestamp sets it in the same
// write. A failed condition returns the zero value.
func (r *OrderDynamoRepository) UpdateStatus(ctx context.Context, id string, from, to entities.OrderStatus, at time.Time) (entities.Order, error) {
	now := at.UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :to, #updated_at = :now"
	names := map[string]string{
		"#status":     "status",
		"#updated_at": "updated_at",
	}
	values := map[string]types.AttributeValue{
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":now":  &types.AttributeValueMemberS{Value: now},
	}
	if attr := timestampAttrFor(to); attr != "" {
		expr += ", #ts = :now"
		names["#ts"] = attr
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id) AND #status = :from"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Order{}, nil
		}
		return entities.Order{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Order{}, nil
	}

	var it orderItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Order{}, err
	}
	return fromOrderItem(it), nil
}

func (r *OrderDynamoRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(ordersStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(out.Items))
	for _, raw := range out.Items {
		var it orderItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orders = append(orders, fromOrderItem(it))
	}
	return orders, nil
}

// timestampAttrFor maps the target status to its set-once timestamp column.
func timestampAttrFor(to entities.OrderStatus) string {
	switch to {
	case entities.OrderStatusConfirmed:
		return "confirmed_at"
	case entities.OrderStatusPreparing:
		return "started_cooking_at"
	case entities.OrderStatusReady:
		return "ready_at"
	case entities.OrderStatusCompleted:
		return "completed_at"
	default:
		return ""
	}
}

func toOrderItem(o entities.Order) orderItem {
	lines := make([]orderLineItem, 0, len(o.Items))
	for _, li := range o.Items {
		lines = append(lines, orderLineItem{
			MenuItemID: li.MenuItemID,
			Name:       li.Name,
			Category:   li.Category,
			UnitPrice:  floatToString(li.UnitPrice),
			Quantity:   li.Quantity,
		})
	}

	return orderItem{
		ID:                   o.ID,
		Items:                lines,
		TotalAmount:          floatToString(o.TotalAmount),
		OrderType:            string(o.Type),
		ScheduledDate:        o.ScheduledDate,
		ScheduledTime:        o.ScheduledTime,
		Priority:             string(o.Priority),
		SlotKey:              o.SlotKey,
		ComplexityScore:      o.ComplexityScore,
		EstimatedPrepMinutes: o.EstimatedPrepMinutes,
		Status:               string(o.Status),
		ConfirmedAt:          formatOptTime(o.ConfirmedAt),
		StartedCookingAt:     formatOptTime(o.StartedCookingAt),
		ReadyAt:              formatOptTime(o.ReadyAt),
		CompletedAt:          formatOptTime(o.CompletedAt),
		CreatedAt:            o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:            o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrderItem(it orderItem) entities.Order {
	lines := make([]entities.OrderItem, 0, len(it.Items))
	for _, li := range it.Items {
		price, _ := strconv.ParseFloat(li.UnitPrice, 64)
		lines = append(lines, entities.OrderItem{
			MenuItemID: li.MenuItemID,
			Name:       li.Name,
			Category:   li.Category,
			UnitPrice:  price,
			Quantity:   li.Quantity,
		})
	}

	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	return entities.Order{
		ID:                   it.ID,
		Items:                lines,
		TotalAmount:          total,
		Type:                 entities.OrderType(it.OrderType),
		ScheduledDate:        it.ScheduledDate,
		ScheduledTime:        it.ScheduledTime,
		Priority:             entities.Priority(it.Priority),
		SlotKey:              it.SlotKey,
		ComplexityScore:      it.ComplexityScore,
		EstimatedPrepMinutes: it.EstimatedPrepMinutes,
		Status:               entities.OrderStatus(it.Status),
		ConfirmedAt:          parseOptTime(it.ConfirmedAt),
		StartedCookingAt:     parseOptTime(it.StartedCookingAt),
		ReadyAt:              parseOptTime(it.ReadyAt),
		CompletedAt:          parseOptTime(it.CompletedAt),
		CreatedAt:            createdAt,
		UpdatedAt:            updatedAt,
	}
}

func formatOptTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseOptTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil
	}
	return &t
}
