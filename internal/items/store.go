package items

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Client is the slice of the DynamoDB API the store consumes: scan
// all, get by key, put. Nothing else is authorized for this table.
type Client interface {
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
}

var _ Client = (*dynamodb.Client)(nil)

// Store reads and writes Items in one DynamoDB table keyed by "id".
type Store struct {
	client Client
	table  string
}

func NewStore(client Client, table string) *Store {
	return &Store{client: client, table: table}
}

// List returns every item in the collection. Scan pages are followed
// to the end, so the result is complete even past the 1 MB page limit.
func (s *Store) List(ctx context.Context) ([]Item, error) {
	all := []Item{}

	var startKey map[string]types.AttributeValue
	for {
		out, err := s.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(s.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan items: %w", err)
		}

		var page []Item
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal items: %w", err)
		}
		all = append(all, page...)

		if len(out.LastEvaluatedKey) == 0 {
			return all, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

// Get fetches one item by id. found is false when no item has that id.
func (s *Store) Get(ctx context.Context, id string) (Item, bool, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return nil, false, fmt.Errorf("get item: %w", err)
	}
	if len(out.Item) == 0 {
		return nil, false, nil
	}

	var item Item
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, false, fmt.Errorf("unmarshal item: %w", err)
	}
	return item, true, nil
}

// Put upserts the item under its id attribute. An existing item with
// the same id is replaced whole; concurrent writers are
// last-write-wins. Items without a valid id are rejected by the
// table's key schema and the store error surfaces to the caller.
func (s *Store) Put(ctx context.Context, item Item) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("marshal item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.table),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("put item: %w", err)
	}
	return nil
}
