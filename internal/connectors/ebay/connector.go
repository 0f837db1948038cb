package ebay

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"sellerhub/internal/config"
	"sellerhub/internal/logger"

	"github.com/segmentio/kafka-go"
)

// Event types consumed by the worker.
const (
	EventListingPublish = "listing.publish"
	EventListingEnd     = "listing.end"
	EventAccountSync    = "account.sync"
)

// Event is the message exchanged over the listing-events topic.
type Event struct {
	Type      string    `json:"type"`
	ListingID string    `json:"listing_id,omitempty"`
	AccountID string    `json:"account_id,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Created   time.Time `json:"created_at"`
}

// Connector queues listing work for the background worker over Kafka.
type Connector struct {
	config *config.Config
	logger *logger.Logger
	writer *kafka.Writer
}

func New(cfg *config.Config, logger *logger.Logger) *Connector {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(cfg.KafkaBrokers, ",")...),
		Topic:    "listing-events",
		Balancer: &kafka.LeastBytes{},
	}

	return &Connector{
		config: cfg,
		logger: logger,
		writer: writer,
	}
}

// RequestSync queues a refresh of an account's published listings.
func (c *Connector) RequestSync(ctx context.Context, accountID string) error {
	return c.publish(ctx, Event{Type: EventAccountSync, AccountID: accountID})
}

// RequestPublish queues an AddFixedPriceItem for a draft listing.
func (c *Connector) RequestPublish(ctx context.Context, listingID string) error {
	return c.publish(ctx, Event{Type: EventListingPublish, ListingID: listingID})
}

// RequestEnd queues ending a live listing.
func (c *Connector) RequestEnd(ctx context.Context, listingID, reason string) error {
	return c.publish(ctx, Event{Type: EventListingEnd, ListingID: listingID, Reason: reason})
}

func (c *Connector) publish(ctx context.Context, event Event) error {
	event.Created = time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	key := event.ListingID
	if key == "" {
		key = event.AccountID
	}

	if err := c.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: payload}); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}

	c.logger.Debug("Queued %s event for %s", event.Type, key)
	return nil
}

func (c *Connector) Close() error {
	return c.writer.Close()
}
