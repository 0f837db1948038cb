package worker

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"sellerhub/internal/config"
	"sellerhub/internal/connectors/ebay"
	"sellerhub/internal/database"
	"sellerhub/internal/logger"
	"sellerhub/internal/worker/processors"

	"github.com/segmentio/kafka-go"
)

type Worker struct {
	config    *config.Config
	logger    *logger.Logger
	reader    *kafka.Reader
	processor *processors.EventProcessor
}

func New(cfg *config.Config, logger *logger.Logger, db *database.Database) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        strings.Split(cfg.KafkaBrokers, ","),
		GroupID:        "sellerhub-worker",
		Topic:          "listing-events",
		MinBytes:       10e3, // 10KB
		MaxBytes:       10e6, // 10MB
		CommitInterval: time.Second,
	})

	processor := processors.NewEventProcessor(cfg, logger, db.DB)

	return &Worker{
		config:    cfg,
		logger:    logger,
		reader:    reader,
		processor: processor,
	}
}

func (w *Worker) Start() {
	w.logger.Info("Worker started, listening for listing events...")

	for {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		message, err := w.reader.ReadMessage(ctx)
		cancel()

		if err != nil {
			w.logger.Error("Failed to read message: %v", err)
			continue
		}

		w.logger.Debug("Received message: %s", string(message.Value))

		// Parse event
		var event ebay.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			w.logger.Error("Failed to parse event: %v", err)
			continue
		}

		// Process event; each call to eBay gets its own deadline.
		processCtx, processCancel := context.WithTimeout(context.Background(), time.Minute)
		if err := w.processor.Process(processCtx, event); err != nil {
			w.logger.Error("Failed to process %s event: %v", event.Type, err)
		}
		processCancel()
	}
}

func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")
	w.reader.Close()
}
