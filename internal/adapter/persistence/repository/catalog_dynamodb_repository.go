package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"atelier_noiva/internal/domain/entities"
	"atelier_noiva/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCatalogTableName = "catalog_items"

type catalogItemItem struct {
	ID         string `dynamodbav:"id"`
	Name       string `dynamodbav:"name"`
	PriceCents int64  `dynamodbav:"price_cents"`
	Category   string `dynamodbav:"category"`
	StockCount int    `dynamodbav:"stock_count"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// CatalogDynamoRepository persists CatalogItem entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// DecrementStock is a conditional update: the write only lands while the
// remaining stock covers the decrement, which is what keeps a stale draft from
// overselling a product. Negative quantities restore stock.

type CatalogDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICatalogRepository = (*CatalogDynamoRepository)(nil)

func NewCatalogDynamoRepository(ddb *dynamodb.Client) *CatalogDynamoRepository {
	return &CatalogDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CATALOG_TABLE", defaultCatalogTableName),
	}
}

func (r *CatalogDynamoRepository) Create(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogItemItem(item))
	if err != nil {
		return entities.CatalogItem{}, err
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
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogDynamoRepository) GetByID(ctx context.Context, id string) (entities.CatalogItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.CatalogItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.CatalogItem{}, nil
	}

	var it catalogItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItemItem(it), nil
}

func (r *CatalogDynamoRepository) List(ctx context.Context) ([]entities.CatalogItem, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.CatalogItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it catalogItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCatalogItemItem(it))
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

func (r *CatalogDynamoRepository) Update(ctx context.Context, item entities.CatalogItem) (entities.CatalogItem, error) {
	av, err := attributevalue.MarshalMap(toCatalogItemItem(item))
	if err != nil {
		return entities.CatalogItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CatalogItem{}, nil
		}
		return entities.CatalogItem{}, err
	}
	return item, nil
}

func (r *CatalogDynamoRepository) Delete(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *CatalogDynamoRepository) DecrementStock(ctx context.Context, id string, quantity int) (entities.CatalogItem, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #stock >= :qty"),
		UpdateExpression:    aws.String("SET #stock = #stock - :qty, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#stock":      "stock_count",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qty":        &types.AttributeValueMemberN{Value: strconv.Itoa(quantity)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.CatalogItem{}, nil
		}
		return entities.CatalogItem{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.CatalogItem{}, nil
	}

	var it catalogItemItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.CatalogItem{}, err
	}
	return fromCatalogItemItem(it), nil
}

func toCatalogItemItem(item entities.CatalogItem) catalogItemItem {
	return catalogItemItem{
		ID:         item.ID,
		Name:       item.Name,
		PriceCents: item.PriceCents,
		Category:   string(item.Category),
		StockCount: item.StockCount,
		CreatedAt:  item.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  item.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromCatalogItemItem(it catalogItemItem) entities.CatalogItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.CatalogItem{
		ID:         it.ID,
		Name:       it.Name,
		PriceCents: it.PriceCents,
		Category:   entities.ItemCategory(it.Category),
		StockCount: it.StockCount,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}
}
