package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vestalumina/vls-api/internal/repository"
	"github.com/vestalumina/vls-api/internal/service/queue"
	"github.com/vestalumina/vls-api/pkg/logger"
)

//go:generate mockery --name MessageQueue --output ../mocks
type MessageQueue interface {
	ReceiveMessages(ctx context.Context, queueURL string, maxMessages int32, waitTimeSeconds int32) ([]queue.ReceivedMessage, error)
	DeleteMessage(ctx context.Context, queueURL string, receiptHandle *string) error
}

// SQSWorker drains the post-commit event queues: action log entries are
// indexed into OpenSearch and brand stats are recomputed on request.
type SQSWorker struct {
	queue        MessageQueue
	queueURLs    []string
	osRepository repository.OpenSearchRepository
	stats        BrandStatsRecomputer
	logger       *logger.Logger
	workerCount  int
	pollInterval time.Duration
	maxMessages  int32
	waitTime     int32
	shutdownChan chan struct{}
	waitGroup    sync.WaitGroup
}

func NewSQSWorker(
	messageQueue MessageQueue,
	queueURLs []string,
	osRepository repository.OpenSearchRepository,
	stats BrandStatsRecomputer,
	logger *logger.Logger,
	workerCount int,
	pollInterval time.Duration,
) *SQSWorker {
	return &SQSWorker{
		queue:        messageQueue,
		queueURLs:    queueURLs,
		osRepository: osRepository,
		stats:        stats,
		logger:       logger,
		workerCount:  workerCount,
		pollInterval: pollInterval,
		maxMessages:  10, // Process up to 10 messages at a time
		waitTime:     20, // Long polling: wait up to 20 seconds for messages
		shutdownChan: make(chan struct{}),
	}
}

func (w *SQSWorker) Start() {
	w.logger.Info("Starting SQS workers...")

	// Start multiple worker goroutines
	for i := 0; i < w.workerCount; i++ {
		w.waitGroup.Add(1)
		go w.runWorker(i)
	}
}

func (w *SQSWorker) Stop() {
	w.logger.Info("Stopping SQS workers...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("All SQS workers stopped")
}

func (w *SQSWorker) runWorker(workerID int) {
	defer w.waitGroup.Done()

	w.logger.Infof("Worker %d started", workerID)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			w.logger.Infof("Worker %d shutting down", workerID)
			return
		case <-ticker.C:
			for _, queueURL := range w.queueURLs {
				if err := w.processMessages(context.Background(), queueURL); err != nil {
					w.logger.Errorf("Worker %d failed to process messages from %s: %v", workerID, queueURL, err)
				}
			}
		}
	}
}

func (w *SQSWorker) processMessages(ctx context.Context, queueURL string) error {
	messages, err := w.queue.ReceiveMessages(ctx, queueURL, w.maxMessages, w.waitTime)
	if err != nil {
		return fmt.Errorf("failed to receive messages: %w", err)
	}

	for _, msg := range messages {
		if err := w.processMessage(ctx, msg.Message); err != nil {
			w.logger.Errorf("Failed to process message: %v", err)
			continue
		}

		// Only delete the message if processing was successful
		if err := w.queue.DeleteMessage(ctx, queueURL, msg.ReceiptHandle); err != nil {
			w.logger.Errorf("Failed to delete message: %v", err)
		}
	}

	return nil
}

func (w *SQSWorker) processMessage(ctx context.Context, msg queue.Message) error {
	w.logger.Infof("Processing message of type %s for brand %s", msg.Type, msg.BrandID)

	switch msg.Type {
	case queue.MessageTypeIndexAction:
		if msg.Entry == nil {
			return fmt.Errorf("missing entry for %s message", msg.Type)
		}
		return w.osRepository.Index(ctx, msg.Entry)

	case queue.MessageTypeRecomputeBrandStats:
		if msg.BrandID == "" {
			return fmt.Errorf("missing brand id for %s message", msg.Type)
		}
		return w.stats.Recompute(ctx, msg.BrandID)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
