package listener

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSQSClient struct {
	mu      sync.Mutex
	batches [][]sqstypes.Message
	deletes []string
}

func (f *fakeSQSClient) ReceiveMessage(ctx context.Context, _ *sqs.ReceiveMessageInput, _ ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error) {
	f.mu.Lock()
	if len(f.batches) > 0 {
		batch := f.batches[0]
		f.batches = f.batches[1:]
		f.mu.Unlock()
		return &sqs.ReceiveMessageOutput{Messages: batch}, nil
	}
	f.mu.Unlock()

	<-ctx.Done()
	return nil, ctx.Err()
}

func (f *fakeSQSClient) DeleteMessage(_ context.Context, params *sqs.DeleteMessageInput, _ ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.deletes = append(f.deletes, aws.ToString(params.ReceiptHandle))
	return &sqs.DeleteMessageOutput{}, nil
}

type fakeIngestService struct {
	mu       sync.Mutex
	invoked  chan struct{}
	received []map[string]string
}

func newFakeIngestService(expected int) *fakeIngestService {
	return &fakeIngestService{invoked: make(chan struct{}, expected)}
}

func (f *fakeIngestService) ProcessQueueMessage(_ context.Context, properties map[string]string) {
	f.mu.Lock()
	f.received = append(f.received, properties)
	f.mu.Unlock()

	f.invoked <- struct{}{}
}

func stringAttribute(v string) sqstypes.MessageAttributeValue {
	return sqstypes.MessageAttributeValue{
		DataType:    aws.String("String"),
		StringValue: aws.String(v),
	}
}

func waitInvocations(t *testing.T, is *fakeIngestService, n int) {
	t.Helper()

	for i := 0; i < n; i++ {
		select {
		case <-is.invoked:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for invocation %d", i+1)
		}
	}
}

func TestListener_DispatchesAndAcknowledges(t *testing.T) {
	client := &fakeSQSClient{
		batches: [][]sqstypes.Message{
			{
				{
					MessageId:     aws.String("m-1"),
					ReceiptHandle: aws.String("rh-1"),
					MessageAttributes: map[string]sqstypes.MessageAttributeValue{
						"Time":             stringAttribute("2016-05-01T10:00:00Z"),
						"Ship":             stringAttribute("Endeavour"),
						"ExceptionMessage": stringAttribute("Sensor timeout"),
					},
				},
				{
					MessageId:     aws.String("m-2"),
					ReceiptHandle: aws.String("rh-2"),
					Body:          aws.String(`{"time":"2016-05-02T11:30:00Z","ship":"Discovery","exceptionmessage":"Engine warning"}`),
				},
			},
		},
	}

	ingest := newFakeIngestService(2)
	logger, _ := test.NewNullLogger()

	l := NewListener(Config{
		QueueURL:        "https://queue.local/errors-and-warnings",
		WaitTimeSeconds: 1,
		MaxMessages:     10,
		Workers:         1,
	}, logger, client, ingest)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(ctx)
	}()

	waitInvocations(t, ingest, 2)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("listener did not stop after cancel")
	}

	require.Len(t, ingest.received, 2)
	assert.Equal(t, map[string]string{
		"time":             "2016-05-01T10:00:00Z",
		"ship":             "Endeavour",
		"exceptionmessage": "Sensor timeout",
	}, ingest.received[0])
	assert.Equal(t, map[string]string{
		"time":             "2016-05-02T11:30:00Z",
		"ship":             "Discovery",
		"exceptionmessage": "Engine warning",
	}, ingest.received[1])

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.ElementsMatch(t, []string{"rh-1", "rh-2"}, client.deletes)
}

func TestListener_AcknowledgesMalformedMessages(t *testing.T) {
	// the handler swallows logical failures, so even an unusable message must
	// be deleted rather than redelivered
	client := &fakeSQSClient{
		batches: [][]sqstypes.Message{
			{
				{
					MessageId:     aws.String("m-bad"),
					ReceiptHandle: aws.String("rh-bad"),
					Body:          aws.String("not json at all"),
				},
			},
		},
	}

	ingest := newFakeIngestService(1)
	logger, _ := test.NewNullLogger()

	l := NewListener(Config{QueueURL: "q", Workers: 1, MaxMessages: 1}, logger, client, ingest)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.Run(ctx)
	}()

	waitInvocations(t, ingest, 1)
	cancel()
	<-done

	require.Len(t, ingest.received, 1)
	assert.Empty(t, ingest.received[0])

	client.mu.Lock()
	defer client.mu.Unlock()
	assert.Equal(t, []string{"rh-bad"}, client.deletes)
}

func TestMessageProperties(t *testing.T) {
	tests := []struct {
		name    string
		message sqstypes.Message
		want    map[string]string
	}{
		{
			name: "attributes keys lowercased",
			message: sqstypes.Message{
				MessageAttributes: map[string]sqstypes.MessageAttributeValue{
					"Time": stringAttribute("2016-05-01T10:00:00Z"),
					"SHIP": stringAttribute("Endeavour"),
				},
			},
			want: map[string]string{
				"time": "2016-05-01T10:00:00Z",
				"ship": "Endeavour",
			},
		},
		{
			name: "json body fallback",
			message: sqstypes.Message{
				Body: aws.String(`{"time":"t","ship":"s","exceptionmessage":"m"}`),
			},
			want: map[string]string{
				"time":             "t",
				"ship":             "s",
				"exceptionmessage": "m",
			},
		},
		{
			name: "attributes win over body",
			message: sqstypes.Message{
				Body: aws.String(`{"ship":"body-ship"}`),
				MessageAttributes: map[string]sqstypes.MessageAttributeValue{
					"Ship": stringAttribute("attribute-ship"),
				},
			},
			want: map[string]string{
				"ship": "attribute-ship",
			},
		},
		{
			name:    "empty message",
			message: sqstypes.Message{},
			want:    map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, messageProperties(&tt.message))
		})
	}
}
