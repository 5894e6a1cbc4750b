// Package db wires the Lambda to its backing DynamoDB table: client
// construction from the default credential chain and table naming from
// the environment.
package db

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

func NewDynamoClient(ctx context.Context) (*dynamodb.Client, error) {
	// Uses Lambda’s execution role creds automatically
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg), nil
}
