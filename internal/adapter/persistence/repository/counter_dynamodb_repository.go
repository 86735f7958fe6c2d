package repository

import (
	"context"
	"fmt"
	"time"

	"techflow_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type counterItem struct {
	Name      string `dynamodbav:"name"`
	Value     int64  `dynamodbav:"value"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CounterDynamoRepository keeps named counters in DynamoDB. Increment is a single
// atomic ADD, so concurrent instances never hand out the same value.
//
// Table requirements:
//   - PK: name (string)
type CounterDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICounterStore = (*CounterDynamoRepository)(nil)

func NewCounterDynamoRepository(ddb dynamoAPI, tableName string) *CounterDynamoRepository {
	return &CounterDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CounterDynamoRepository) Peek(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return 0, err
	}
	if len(out.Item) == 0 {
		return 0, nil
	}
	var it counterItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return 0, err
	}
	return it.Value, nil
}

func (r *CounterDynamoRepository) Increment(ctx context.Context, name string) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: name},
		},
		UpdateExpression: aws.String("ADD #value :one SET #updated_at = :now"),
		ExpressionAttributeNames: map[string]string{
			"#value":      "value",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
			":now": &types.AttributeValueMemberS{Value: formatTime(time.Now())},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	var it counterItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return 0, err
	}
	if it.Value <= 0 {
		return 0, fmt.Errorf("counter %s: unexpected value %d", name, it.Value)
	}
	return it.Value, nil
}
