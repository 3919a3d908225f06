package sqsqueue

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type Config struct {
	QueueURL string
	Region   string
	Endpoint string
}

type ISQSInstance interface {
	Client() *sqs.Client
	QueueURL() string
}

type sqsInstance struct {
	client   *sqs.Client
	queueURL string
}

func InitSQSQueue(ctx context.Context, config Config) (ISQSInstance, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(config.Region))
	if err != nil {
		return nil, err
	}

	client := sqs.NewFromConfig(awsCfg, func(o *sqs.Options) {
		if config.Endpoint != "" {
			o.BaseEndpoint = aws.String(config.Endpoint)
		}
	})

	return &sqsInstance{
		client:   client,
		queueURL: config.QueueURL,
	}, nil
}

func (s *sqsInstance) Client() *sqs.Client {
	return s.client
}

func (s *sqsInstance) QueueURL() string {
	return s.queueURL
}
