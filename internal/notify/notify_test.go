package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSNS struct {
	published []sns.PublishInput
	err       error
}

func (f *fakeSNS) Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.published = append(f.published, *params)
	return &sns.PublishOutput{}, nil
}

func TestItemWrittenPublishes(t *testing.T) {
	client := &fakeSNS{}
	p := NewPublisher(client, "arn:aws:sns:us-east-1:000000000000:item-events")

	p.ItemWritten(context.Background(), "42")

	require.Len(t, client.published, 1)
	assert.Equal(t, "arn:aws:sns:us-east-1:000000000000:item-events", aws.ToString(client.published[0].TopicArn))
	assert.JSONEq(t, `{"id":"42","action":"upsert"}`, aws.ToString(client.published[0].Message))
}

func TestItemWrittenDisabled(t *testing.T) {
	client := &fakeSNS{}

	NewPublisher(client, "").ItemWritten(context.Background(), "42")
	assert.Empty(t, client.published)

	var p *Publisher
	p.ItemWritten(context.Background(), "42") // must not panic
}

func TestItemWrittenSwallowsErrors(t *testing.T) {
	client := &fakeSNS{err: errors.New("sns down")}
	p := NewPublisher(client, "arn:aws:sns:us-east-1:000000000000:item-events")

	p.ItemWritten(context.Background(), "42") // logged, not returned
}
