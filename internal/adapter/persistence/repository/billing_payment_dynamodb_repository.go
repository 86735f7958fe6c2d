package repository

import (
	"context"
	"errors"

	"techflow_billing/internal/domain/entities"
	"techflow_billing/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const paymentsInvoiceNumberIndex = "invoice_number-index"

var ErrPaymentAlreadyExists = errors.New("payment already exists")

type billingPaymentItem struct {
	ID            string                 `dynamodbav:"id"`
	InvoiceNumber string                 `dynamodbav:"invoice_number"`
	Amount        string                 `dynamodbav:"amount"`
	Date          string                 `dynamodbav:"date"`
	Status        string                 `dynamodbav:"status"`
	MPPayload     map[string]interface{} `dynamodbav:"mp_payload,omitempty"`
	MPPayloadRaw  string                 `dynamodbav:"mp_payload_raw,omitempty"`
}

// BillingPaymentDynamoRepository persists BillingPayment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: invoice_number-index (PK: invoice_number)
type BillingPaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentDynamoRepository)(nil)

func NewBillingPaymentDynamoRepository(ddb dynamoAPI, tableName string) *BillingPaymentDynamoRepository {
	return &BillingPaymentDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *BillingPaymentDynamoRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	av, err := attributevalue.MarshalMap(toBillingPaymentItem(p))
	if err != nil {
		return entities.BillingPayment{}, err
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
		if isConditionalCheckFailed(err) {
			return entities.BillingPayment{}, ErrPaymentAlreadyExists
		}
		return entities.BillingPayment{}, err
	}
	return p, nil
}

// GetByID returns a zero payment, and no error, when id is unknown.
func (r *BillingPaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingPayment{}, nil
	}

	var it billingPaymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingPayment{}, err
	}
	return fromBillingPaymentItem(it), nil
}

func (r *BillingPaymentDynamoRepository) ListByInvoiceNumber(ctx context.Context, invoiceNumber string) ([]entities.BillingPayment, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsInvoiceNumberIndex),
		KeyConditionExpression: aws.String("invoice_number = :inv"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":inv": &types.AttributeValueMemberS{Value: invoiceNumber},
		},
	})

	items := make([]entities.BillingPayment, 0)
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range page.Items {
			var it billingPaymentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromBillingPaymentItem(it))
		}
	}
	return items, nil
}

func toBillingPaymentItem(p entities.BillingPayment) billingPaymentItem {
	return billingPaymentItem{
		ID:            p.ID,
		InvoiceNumber: p.InvoiceNumber,
		Amount:        p.Amount,
		Date:          formatTime(p.Date),
		Status:        string(p.Status),
		MPPayload:     p.MPPayload,
		MPPayloadRaw:  string(p.MPPayloadRaw),
	}
}

func fromBillingPaymentItem(it billingPaymentItem) entities.BillingPayment {
	return entities.BillingPayment{
		ID:            it.ID,
		InvoiceNumber: it.InvoiceNumber,
		Amount:        it.Amount,
		Date:          parseTime(it.Date),
		Status:        entities.PaymentStatus(it.Status),
		MPPayload:     it.MPPayload,
		MPPayloadRaw:  []byte(it.MPPayloadRaw),
	}
}
