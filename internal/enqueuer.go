package internal

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/sqs"
	"github.com/aws/aws-sdk-go/service/sqs/sqsiface"
)

type Enqueuer struct {
	client sqsiface.SQSAPI

	mu        sync.Mutex
	queueURLs map[string]string
}

// SendMsg publishes msg as a JSON body on the named queue.
func (e *Enqueuer) SendMsg(ctx context.Context, msg interface{}, queue string) error {
	msgBytes, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	queueURL, err := e.queueURL(ctx, queue)
	if err != nil {
		return err
	}

	_, err = e.client.SendMessageWithContext(ctx, &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBytes)),
		QueueUrl:    aws.String(queueURL),
	})
	return err
}

// queueURL resolves the queue once per warm container.
func (e *Enqueuer) queueURL(ctx context.Context, queue string) (string, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if url, ok := e.queueURLs[queue]; ok {
		return url, nil
	}

	out, err := e.client.GetQueueUrlWithContext(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(queue),
	})
	if err != nil {
		return "", err
	}

	e.queueURLs[queue] = aws.StringValue(out.QueueUrl)
	return e.queueURLs[queue], nil
}

func NewEnqueuer(client sqsiface.SQSAPI) *Enqueuer {
	return &Enqueuer{
		client:    client,
		queueURLs: map[string]string{},
	}
}
