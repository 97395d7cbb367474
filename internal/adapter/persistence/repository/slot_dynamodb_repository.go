package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"

	"bistro_core/internal/domain/entities"
	"bistro_core/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultTimeSlotsTableName = "time_slots"
	timeSlotsDateIndex        = "date-index"
)

type timeSlotItem struct {
	SlotKey       string `dynamodbav:"slot_key"`
	Date          string `dynamodbav:"date"`
	TimeBucket    string `dynamodbav:"time_bucket"`
	SlotType      string `dynamodbav:"slot_type"`
	MaxOrders     int    `dynamodbav:"max_orders"`
	CurrentOrders int    `dynamodbav:"current_orders"`
	IsAvailable   bool   `dynamodbav:"is_available"`
}

// SlotDynamoRepository persists TimeSlot entities in DynamoDB.
//
// Table requirements:
//   - PK: slot_key (string, "date#bucket")
//   - GSI: date-index (PK: date)
//
// current_orders moves only through the conditional updates below: the
// capacity check and the increment are one indivisible write, so of N
// concurrent reservations against remaining capacity k exactly k succeed.

type SlotDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISlotRepository = (*SlotDynamoRepository)(nil)

func NewSlotDynamoRepository(ddb *dynamodb.Client) *SlotDynamoRepository {
	return &SlotDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIME_SLOTS_TABLE", defaultTimeSlotsTableName),
	}
}

func (r *SlotDynamoRepository) Get(ctx context.Context, key string) (entities.TimeSlot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slot_key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.TimeSlot{}, err
	}
	if len(out.Item) == 0 {
		return entities.TimeSlot{}, nil
	}

	var it timeSlotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.TimeSlot{}, err
	}
	return fromTimeSlotItem(it), nil
}

func (r *SlotDynamoRepository) ListByDate(ctx context.Context, date string) ([]entities.TimeSlot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(timeSlotsDateIndex),
		KeyConditionExpression: aws.String("#date = :date"),
		ExpressionAttributeNames: map[string]string{
			"#date": "date",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":date": &types.AttributeValueMemberS{Value: date},
		},
	})
	if err != nil {
		return nil, err
	}

	slots := make([]entities.TimeSlot, 0, len(out.Items))
	for _, raw := range out.Items {
		var it timeSlotItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		slots = append(slots, fromTimeSlotItem(it))
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].TimeBucket < slots[j].TimeBucket })
	return slots, nil
}

func (r *SlotDynamoRepository) Provision(ctx context.Context, slot entities.TimeSlot) (bool, error) {
	it := toTimeSlotItem(slot)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#slot_key)"),
		ExpressionAttributeNames: map[string]string{
			"#slot_key": "slot_key",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// TryReserve is the compare-and-increment: it succeeds only while the slot
// is available and below its ceiling.
func (r *SlotDynamoRepository) TryReserve(ctx context.Context, key string) (entities.TimeSlot, error) {
	return r.update(ctx, key,
		"SET #current_orders = #current_orders + :one",
		"attribute_exists(#slot_key) AND #current_orders < #max_orders AND #is_available = :true",
		map[string]types.AttributeValue{
			":one":  &types.AttributeValueMemberN{Value: "1"},
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
		map[string]string{
			"#current_orders": "current_orders",
			"#max_orders":     "max_orders",
			"#is_available":   "is_available",
		},
	)
}

// Release is the floored decrement; a second release of the same reservation
// fails the condition and leaves the counter alone.
func (r *SlotDynamoRepository) Release(ctx context.Context, key string) (entities.TimeSlot, error) {
	return r.update(ctx, key,
		"SET #current_orders = #current_orders - :one",
		"attribute_exists(#slot_key) AND #current_orders > :zero",
		map[string]types.AttributeValue{
			":one":  &types.AttributeValueMemberN{Value: "1"},
			":zero": &types.AttributeValueMemberN{Value: "0"},
		},
		map[string]string{
			"#current_orders": "current_orders",
		},
	)
}

func (r *SlotDynamoRepository) SetCurrentOrders(ctx context.Context, key string, n int) error {
	_, err := r.update(ctx, key,
		"SET #current_orders = :n",
		"attribute_exists(#slot_key)",
		map[string]types.AttributeValue{
			":n": &types.AttributeValueMemberN{Value: strconv.Itoa(n)},
		},
		map[string]string{
			"#current_orders": "current_orders",
		},
	)
	return err
}

func (r *SlotDynamoRepository) update(
	ctx context.Context,
	key, updateExpr, conditionExpr string,
	values map[string]types.AttributeValue,
	names map[string]string,
) (entities.TimeSlot, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"slot_key": &types.AttributeValueMemberS{Value: key},
		},
		ConditionExpression:       aws.String(conditionExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#slot_key": "slot_key"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.TimeSlot{}, nil
		}
		return entities.TimeSlot{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.TimeSlot{}, nil
	}

	var it timeSlotItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.TimeSlot{}, err
	}
	return fromTimeSlotItem(it), nil
}

func toTimeSlotItem(s entities.TimeSlot) timeSlotItem {
	return timeSlotItem{
		SlotKey:       s.Key(),
		Date:          s.Date,
		TimeBucket:    s.TimeBucket,
		SlotType:      string(s.SlotType),
		MaxOrders:     s.MaxOrders,
		CurrentOrders: s.CurrentOrders,
		IsAvailable:   s.IsAvailable,
	}
}

func fromTimeSlotItem(it timeSlotItem) entities.TimeSlot {
	return entities.TimeSlot{
		Date:          it.Date,
		TimeBucket:    it.TimeBucket,
		SlotType:      entities.SlotType(it.SlotType),
		MaxOrders:     it.MaxOrders,
		CurrentOrders: it.CurrentOrders,
		IsAvailable:   it.IsAvailable,
	}
}
