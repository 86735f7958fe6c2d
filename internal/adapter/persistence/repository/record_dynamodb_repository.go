package repository

import (
	"context"

	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type recordItem struct {
	Key       string `dynamodbav:"key"`
	Payload   string `dynamodbav:"payload"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// RecordDynamoRepository keeps named JSON records in DynamoDB.
//
// Table requirements:
//   - PK: key (string)
type RecordDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IRecordStore = (*RecordDynamoRepository)(nil)

func NewRecordDynamoRepository(ddb dynamoAPI, tableName string) *RecordDynamoRepository {
	return &RecordDynamoRepository{ddb: ddb, tableName: tableName}
}

// Save overwrites the record; archives are rewritten whole.
func (r *RecordDynamoRepository) Save(ctx context.Context, key string, rec entities.Record) error {
	av, err := attributevalue.MarshalMap(recordItem{
		Key:       key,
		Payload:   string(rec.Payload),
		UpdatedAt: formatTime(rec.UpdatedAt),
	})
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *RecordDynamoRepository) Load(ctx context.Context, key string) (entities.Record, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"key": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Record{}, false, err
	}
	if len(out.Item) == 0 {
		return entities.Record{}, false, nil
	}

	var it recordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Record{}, false, err
	}
	return entities.Record{
		Key:       it.Key,
		Payload:   []byte(it.Payload),
		UpdatedAt: parseTime(it.UpdatedAt),
	}, true, nil
}
