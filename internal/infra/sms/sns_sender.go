// Package sms delivers transactional text messages through AWS SNS.
package sms

import (
	"context"
	"log/slog"

	"farmlink/config"
	"farmlink/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/pkg/errors"
)

// snsSender publishes messages directly to phone numbers via SNS.
type snsSender struct {
	client   *sns.Client
	senderID string
	logger   *slog.Logger
}

// NewSNSSender builds the SMS sender from the application configuration.
// When SMS is disabled in config, a no-op sender is returned so the request
// flow behaves identically in development environments without AWS access.
func NewSNSSender(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.SMSSender, error) {
	if cfg.SMS == nil || !cfg.SMS.Enabled {
		return &noopSender{logger: logger}, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.SMS.Region))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	return &snsSender{
		client:   sns.NewFromConfig(awsCfg),
		senderID: cfg.SMS.SenderID,
		logger:   logger,
	}, nil
}

// Send delivers a single message to the given E.164 phone number.
func (s *snsSender) Send(ctx context.Context, phone, message string) error {
	// Transactional routing gets delivery priority over promotional.
	messageAttributes := map[string]types.MessageAttributeValue{
		"AWS.SNS.SMS.SMSType": {
			DataType:    aws.String("String"),
			StringValue: aws.String("Transactional"),
		},
	}
	if s.senderID != "" {
		messageAttributes["AWS.SNS.SMS.SenderID"] = types.MessageAttributeValue{
			DataType:    aws.String("String"),
			StringValue: aws.String(s.senderID),
		}
	}

	input := &sns.PublishInput{
		Message:           aws.String(message),
		PhoneNumber:       aws.String(phone),
		MessageAttributes: messageAttributes,
	}

	result, err := s.client.Publish(ctx, input)
	if err != nil {
		return errors.Wrap(err, "failed to publish sms")
	}

	s.logger.Debug("Sent SMS", slog.String("messageID", aws.ToString(result.MessageId)))

	return nil
}

// noopSender logs instead of sending. Used when SMS is disabled.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) Send(_ context.Context, phone, message string) error {
	s.logger.Info("SMS sending disabled, skipping", slog.String("phone", phone), slog.String("message", message))

	return nil
}
