package repository

import (
	"context"
	"encoding/json"
	"time"

	"atelier_prints/internal/domain/entities"
	"atelier_prints/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultCartsTableName = "carts"

type cartItem struct {
	ID        string `dynamodbav:"id"`
	Items     string `dynamodbav:"items"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// CartDynamoRepository persists carts in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Each cart is one document; the line items are serialized to a single JSON
// string attribute and written whole on every save. That keeps the storage
// contract string-valued key-value: no partial writes are observable, and a
// cart survives until it is explicitly deleted or overwritten.

type CartDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICartRepository = (*CartDynamoRepository)(nil)

func NewCartDynamoRepository(ddb *dynamodb.Client) *CartDynamoRepository {
	return &CartDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CARTS_TABLE", defaultCartsTableName),
	}
}

func (r *CartDynamoRepository) Get(ctx context.Context, cartID string) (entities.Cart, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cartID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Cart{}, err
	}
	if len(out.Item) == 0 {
		return entities.Cart{}, nil
	}

	var it cartItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Cart{}, err
	}
	return fromCartItem(it)
}

func (r *CartDynamoRepository) Save(ctx context.Context, cart entities.Cart) (entities.Cart, error) {
	it, err := toCartItem(cart)
	if err != nil {
		return entities.Cart{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Cart{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

func (r *CartDynamoRepository) Delete(ctx context.Context, cartID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: cartID},
		},
	})
	return err
}

func toCartItem(c entities.Cart) (cartItem, error) {
	items := c.Items
	if items == nil {
		items = []entities.LineItem{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return cartItem{}, err
	}
	return cartItem{
		ID:        c.ID,
		Items:     string(b),
		CreatedAt: c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromCartItem(it cartItem) (entities.Cart, error) {
	var items []entities.LineItem
	if it.Items != "" {
		if err := json.Unmarshal([]byte(it.Items), &items); err != nil {
			return entities.Cart{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Cart{
		ID:        it.ID,
		Items:     items,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
