package repository

import (
	"context"
	"log"
	"sort"
	"time"

	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultQuotesTableName = "quotes"

type quoteLineItem struct {
	ItemID     string `dynamodbav:"item_id"`
	Name       string `dynamodbav:"name"`
	PriceCents int64  `dynamodbav:"price_cents"`
	Category   string `dynamodbav:"category"`
	Quantity   int    `dynamodbav:"quantity"`
}

type quoteItem struct {
	ID               string          `dynamodbav:"id"`
	BrideName        string          `dynamodbav:"bride_name"`
	CPF              string          `dynamodbav:"cpf"`
	Phone            string          `dynamodbav:"phone"`
	EventDate        string          `dynamodbav:"event_date"`
	Notes            string          `dynamodbav:"notes,omitempty"`
	Lines            []quoteLineItem `dynamodbav:"lines"`
	PaymentMethod    string          `dynamodbav:"payment_method"`
	Installments     int             `dynamodbav:"installments"`
	DiscountPercent  float64         `dynamodbav:"discount_percent"`
	SubtotalCents    int64           `dynamodbav:"subtotal_cents"`
	DiscountCents    int64           `dynamodbav:"discount_cents"`
	TotalCents       int64           `dynamodbav:"total_cents"`
	InstallmentCents int64           `dynamodbav:"installment_cents"`
	CreatedAt        string          `dynamodbav:"created_at"`
	UpdatedAt        string          `dynamodbav:"updated_at"`
}

// QuoteDynamoRepository persists Quote entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// List scans the table and skips items it cannot unmarshal: a corrupted
// stored quote degrades the listing, it never breaks it.

type QuoteDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuoteRepository = (*QuoteDynamoRepository)(nil)

func NewQuoteDynamoRepository(ddb *dynamodb.Client) *QuoteDynamoRepository {
	return &QuoteDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTES_TABLE", defaultQuotesTableName),
	}
}

func (r *QuoteDynamoRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	av, err := attributevalue.MarshalMap(toQuoteItem(q))
	if err != nil {
		return entities.Quote{}, err
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
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuoteDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quote{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quote{}, nil
	}

	var it quoteItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quote{}, err
	}
	return fromQuoteItem(it), nil
}

func (r *QuoteDynamoRepository) List(ctx context.Context) ([]entities.Quote, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	quotes := make([]entities.Quote, 0, len(out.Items))
	for _, raw := range out.Items {
		var it quoteItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			log.Printf("[quote][repository] skipping unreadable stored quote err=%v", err)
			continue
		}
		quotes = append(quotes, fromQuoteItem(it))
	}
	sort.Slice(quotes, func(i, j int) bool {
		if quotes[i].CreatedAt.Equal(quotes[j].CreatedAt) {
			return quotes[i].ID < quotes[j].ID
		}
		return quotes[i].CreatedAt.Before(quotes[j].CreatedAt)
	})
	return quotes, nil
}

func (r *QuoteDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func toQuoteItem(q entities.Quote) quoteItem {
	lines := make([]quoteLineItem, 0, len(q.Lines))
	for _, l := range q.Lines {
		lines = append(lines, quoteLineItem{
			ItemID:     l.ItemID,
			Name:       l.Name,
			PriceCents: l.PriceCents,
			Category:   string(l.Category),
			Quantity:   l.Quantity,
		})
	}
	return quoteItem{
		ID:               q.ID,
		BrideName:        q.BrideName,
		CPF:              q.CPF,
		Phone:            q.Phone,
		EventDate:        q.EventDate.UTC().Format(time.RFC3339Nano),
		Notes:            q.Notes,
		Lines:            lines,
		PaymentMethod:    string(q.Payment.Method),
		Installments:     q.Payment.Installments,
		DiscountPercent:  q.Payment.DiscountPercent,
		SubtotalCents:    q.SubtotalCents,
		DiscountCents:    q.DiscountCents,
		TotalCents:       q.TotalCents,
		InstallmentCents: q.InstallmentCents,
		CreatedAt:        q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:        q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuoteItem(it quoteItem) entities.Quote {
	eventDate, _ := time.Parse(time.RFC3339Nano, it.EventDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	lines := make([]entities.QuoteLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, entities.QuoteLine{
			ItemID:     l.ItemID,
			Name:       l.Name,
			PriceCents: l.PriceCents,
			Category:   entities.ItemCategory(l.Category),
			Quantity:   l.Quantity,
		})
	}
	return entities.Quote{
		ID:        it.ID,
		BrideName: it.BrideName,
		CPF:       it.CPF,
		Phone:     it.Phone,
		EventDate: eventDate,
		Notes:     it.Notes,
		Lines:     lines,
		Payment: entities.PaymentTerms{
			Method:          entities.PaymentMethod(it.PaymentMethod),
			Installments:    it.Installments,
			DiscountPercent: it.DiscountPercent,
		},
		SubtotalCents:    it.SubtotalCents,
		DiscountCents:    it.DiscountCents,
		TotalCents:       it.TotalCents,
		InstallmentCents: it.InstallmentCents,
		CreatedAt:        createdAt,
		UpdatedAt:        updatedAt,
	}
}
