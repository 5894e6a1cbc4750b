package main

import (
	"context"
	"log"

	"github.com/MuhFawad1/pulumi-cloud-infrastructure/internal/db"
	"github.com/MuhFawad1/pulumi-cloud-infrastructure/internal/handlers"
	"github.com/MuhFawad1/pulumi-cloud-infrastructure/internal/items"
	"github.com/MuhFawad1/pulumi-cloud-infrastructure/internal/notify"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

func main() {
	ctx := context.Background()

	table := db.ItemsTableName()
	if table == "" {
		log.Fatalf("TABLE_NAME is not set")
	}

	client, err := db.NewDynamoClient(ctx)
	if err != nil {
		log.Fatalf("init dynamodb: %v", err)
	}

	var publisher *notify.Publisher
	if arn := notify.TopicARN(); arn != "" {
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			log.Fatalf("load aws config: %v", err)
		}
		publisher = notify.NewPublisher(sns.NewFromConfig(cfg), arn)
	}

	h := handlers.NewItemsHandler(items.NewStore(client, table), publisher)

	lambda.Start(h.Handle)
}
