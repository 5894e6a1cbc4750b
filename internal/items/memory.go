package items

import (
	"context"
	"errors"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MemoryClient is an in-process Client backed by a map, for tests and
// local runs with no DynamoDB endpoint. It mirrors the parts of the
// table contract the store relies on: whole-item replace keyed by
// "id", and scans paginated via LastEvaluatedKey.
type MemoryClient struct {
	// PageSize caps items per scan page. Zero returns everything in
	// one page.
	PageSize int

	// Err, when set, fails every call. Lets tests exercise the
	// store-unavailable path.
	Err error

	mu    sync.Mutex
	byID  map[string]map[string]types.AttributeValue
	order []string
}

var _ Client = (*MemoryClient)(nil)

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{byID: map[string]map[string]types.AttributeValue{}}
}

func (m *MemoryClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	id, ok := params.Item["id"].(*types.AttributeValueMemberS)
	if !ok || id.Value == "" {
		// What the real table returns for a put missing its hash key.
		return nil, errors.New("ValidationException: One or more parameter values were invalid: Missing the key id in the item")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byID[id.Value]; !exists {
		m.order = append(m.order, id.Value)
	}
	m.byID[id.Value] = copyAttrs(params.Item)
	return &dynamodb.PutItemOutput{}, nil
}

func (m *MemoryClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	key, ok := params.Key["id"].(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.New("ValidationException: The provided key element does not match the schema")
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	item, found := m.byID[key.Value]
	if !found {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: copyAttrs(item)}, nil
}

func (m *MemoryClient) Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error) {
	if m.Err != nil {
		return nil, m.Err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	start := 0
	if key, ok := params.ExclusiveStartKey["id"].(*types.AttributeValueMemberS); ok {
		for i, id := range m.order {
			if id == key.Value {
				start = i + 1
				break
			}
		}
	}

	end := len(m.order)
	if m.PageSize > 0 && start+m.PageSize < end {
		end = start + m.PageSize
	}

	out := &dynamodb.ScanOutput{}
	for _, id := range m.order[start:end] {
		out.Items = append(out.Items, copyAttrs(m.byID[id]))
	}
	out.Count = int32(len(out.Items))

	if end < len(m.order) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: m.order[end-1]},
		}
	}
	return out, nil
}

func copyAttrs(attrs map[string]types.AttributeValue) map[string]types.AttributeValue {
	cp := make(map[string]types.AttributeValue, len(attrs))
	for k, v := range attrs {
		cp[k] = v
	}
	return cp
}
