// Package notify publishes best-effort item change events to SNS.
package notify

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// TopicARN returns the optional item-events topic. Empty means
// publishing is disabled; that is not an error.
func TopicARN() string {
	return strings.TrimSpace(os.Getenv("ITEM_EVENTS_TOPIC_ARN"))
}

// SNSClient is the slice of the SNS API the publisher consumes.
type SNSClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

var _ SNSClient = (*sns.Client)(nil)

type ItemEvent struct {
	ID     string `json:"id"`
	Action string `json:"action"`
}

// Publisher sends item change notifications. Publishing is strictly
// best-effort: failures are logged and never reach the request path.
type Publisher struct {
	client SNSClient
	topic  string
}

func NewPublisher(client SNSClient, topicARN string) *Publisher {
	return &Publisher{client: client, topic: topicARN}
}

// ItemWritten announces that the item with the given id was created or
// replaced. Safe to call on a nil or disabled publisher.
func (p *Publisher) ItemWritten(ctx context.Context, id string) {
	if p == nil || p.topic == "" {
		return
	}

	b, _ := json.Marshal(ItemEvent{ID: id, Action: "upsert"})
	_, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topic),
		Message:  aws.String(string(b)),
	})
	if err != nil {
		log.Printf("publish item event for %q: %v", id, err)
	}
}
