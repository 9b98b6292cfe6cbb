package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/vestalumina/vls-api/internal/config"
	"github.com/vestalumina/vls-api/internal/domain"
)

type MessageType string

const (
	MessageTypeIndexAction         MessageType = "INDEX_ACTION"
	MessageTypeRecomputeBrandStats MessageType = "RECOMPUTE_BRAND_STATS"
)

// Message is a post-commit event. Entry is set for INDEX_ACTION, BrandID for
// RECOMPUTE_BRAND_STATS.
type Message struct {
	Type      MessageType            `json:"type"`
	BrandID   string                 `json:"brand_id,omitempty"`
	Entry     *domain.ActionLogEntry `json:"entry,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

type ReceivedMessage struct {
	Message       Message
	ReceiptHandle *string
}

type SQSService struct {
	client        *sqs.Client
	indexQueueURL string
	statsQueueURL string
}

func NewSQSService(client *sqs.Client, config *config.SQSConfig) *SQSService {
	return &SQSService{
		client:        client,
		indexQueueURL: config.IndexQueueURL,
		statsQueueURL: config.StatsQueueURL,
	}
}

func (s *SQSService) IndexQueueURL() string {
	return s.indexQueueURL
}

func (s *SQSService) StatsQueueURL() string {
	return s.statsQueueURL
}

func (s *SQSService) SendIndexMessage(ctx context.Context, entry *domain.ActionLogEntry) error {
	msg := Message{
		Type:      MessageTypeIndexAction,
		BrandID:   entry.BrandID,
		Entry:     entry,
		Timestamp: entry.Timestamp,
	}

	return s.sendMessage(ctx, msg, s.indexQueueURL)
}

func (s *SQSService) SendBrandStatsMessage(ctx context.Context, brandID string) error {
	msg := Message{
		Type:      MessageTypeRecomputeBrandStats,
		BrandID:   brandID,
		Timestamp: time.Now().UTC(),
	}

	return s.sendMessage(ctx, msg, s.statsQueueURL)
}

func (s *SQSService) sendMessage(ctx context.Context, msg Message, queueURL string) error {
	msgBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	input := &sqs.SendMessageInput{
		MessageBody: aws.String(string(msgBody)),
		QueueUrl:    aws.String(queueURL),
	}

	_, err = s.client.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (s *SQSService) ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]ReceivedMessage, error) {
	input := &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(queueURL),
		MaxNumberOfMessages: maxMessages,
		WaitTimeSeconds:     waitTimeSeconds,
	}

	output, err := s.client.ReceiveMessage(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to receive messages: %w", err)
	}

	var messages []ReceivedMessage
	for _, msg := range output.Messages {
		message, err := DecodeMessage(aws.ToString(msg.Body))
		if err != nil {
			return nil, err
		}
		messages = append(messages, ReceivedMessage{
			Message:       message,
			ReceiptHandle: msg.ReceiptHandle,
		})
	}

	return messages, nil
}

func DecodeMessage(body string) (Message, error) {
	var message Message
	if err := json.Unmarshal([]byte(body), &message); err != nil {
		return Message{}, fmt.Errorf("failed to unmarshal message: %w", err)
	}
	return message, nil
}

func (s *SQSService) DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error {
	input := &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(queueURL),
		ReceiptHandle: receiptHandle,
	}

	_, err := s.client.DeleteMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}

	return nil
}
