package listener

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/sirupsen/logrus"

	"github.com/fleetops/shiplog/internal/service"
	"github.com/fleetops/shiplog/pkg/stacktrace"
	"github.com/fleetops/shiplog/pkg/utils"
)

const (
	receiveFailureBackoff = 250 * time.Millisecond

	skipStackTraceFrame = 4
)

type sqsAPI interface {
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type Config struct {
	QueueURL        string
	WaitTimeSeconds int32
	MaxMessages     int32
	VisibilityTO    int32
	Workers         int
}

type IListener interface {
	Run(ctx context.Context)
}

type listener struct {
	config        Config
	logger        *logrus.Logger
	client        sqsAPI
	ingestService service.IIngestService
}

func NewListener(config Config, l *logrus.Logger, client sqsAPI, is service.IIngestService) IListener {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.MaxMessages < 1 || config.MaxMessages > 10 {
		config.MaxMessages = 10
	}

	return &listener{
		config:        config,
		logger:        l,
		client:        client,
		ingestService: is,
	}
}

// Run polls the queue until ctx is canceled. Each worker long-polls
// independently; the concurrency of handler invocations is therefore up to
// Config.Workers, never coordinated with the handler itself.
func (l *listener) Run(ctx context.Context) {
	var wg sync.WaitGroup

	wg.Add(l.config.Workers)
	for w := 0; w < l.config.Workers; w++ {
		go func() {
			defer wg.Done()
			l.pollLoop(ctx)
		}()
	}

	wg.Wait()
}

func (l *listener) pollLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		out, err := l.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:              aws.String(l.config.QueueURL),
			MaxNumberOfMessages:   l.config.MaxMessages,
			WaitTimeSeconds:       l.config.WaitTimeSeconds,
			VisibilityTimeout:     l.config.VisibilityTO,
			MessageAttributeNames: []string{"All"},
		})
		if err != nil {
			if ctx.Err() != nil {
				return
			}

			l.logger.WithFields(logrus.Fields{
				"error": err,
			}).Error("failed to receive messages")

			select {
			case <-time.After(receiveFailureBackoff):
				continue
			case <-ctx.Done():
				return
			}
		}

		for i := range out.Messages {
			l.dispatch(ctx, &out.Messages[i])
		}
	}
}

// dispatch invokes the ingestion handler for one message and acknowledges it
// afterwards. The handler never raises on application failures, so the message
// is deleted regardless of the logical outcome; only transport failures leave
// it on the queue for redelivery.
func (l *listener) dispatch(ctx context.Context, m *sqstypes.Message) {
	invocationID := utils.GenerateUUIDv4()

	defer func() {
		if r := recover(); r != nil {
			err, ok := r.(error)
			if !ok {
				err = fmt.Errorf("%v", r)
			}

			l.logger.WithFields(logrus.Fields{
				"invocationId": invocationID,
				"messageId":    aws.ToString(m.MessageId),
				"error": logrus.Fields{
					"message": err.Error(),
					"stack":   stacktrace.NewStackTrace(skipStackTraceFrame),
				},
			}).Errorf("recover: %v", err)
		}
	}()

	l.ingestService.ProcessQueueMessage(ctx, messageProperties(m))

	if _, err := l.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(l.config.QueueURL),
		ReceiptHandle: m.ReceiptHandle,
	}); err != nil {
		l.logger.WithFields(logrus.Fields{
			"invocationId": invocationID,
			"messageId":    aws.ToString(m.MessageId),
			"error":        err,
		}).Error("failed to delete message")
	}
}

// messageProperties flattens the message into the string property map the
// handler consumes. Message attributes win; a JSON object body is the
// fallback for producers that do not set attributes.
func messageProperties(m *sqstypes.Message) map[string]string {
	properties := make(map[string]string, len(m.MessageAttributes))
	for k, v := range m.MessageAttributes {
		properties[strings.ToLower(k)] = aws.ToString(v.StringValue)
	}

	if len(properties) == 0 {
		_ = json.Unmarshal([]byte(aws.ToString(m.Body)), &properties)
	}

	return properties
}
