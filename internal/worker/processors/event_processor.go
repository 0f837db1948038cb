package processors

import (
	"context"
	"fmt"

	"sellerhub/internal/config"
	"sellerhub/internal/connectors/ebay"
	"sellerhub/internal/logger"
	"sellerhub/internal/worker/processors/publish"
	"sellerhub/internal/worker/processors/sync"

	"gorm.io/gorm"
)

type EventProcessor struct {
	config    *config.Config
	logger    *logger.Logger
	publisher *publish.Publisher
	syncer    *sync.Syncer
}

func NewEventProcessor(cfg *config.Config, logger *logger.Logger, db *gorm.DB) *EventProcessor {
	return &EventProcessor{
		config:    cfg,
		logger:    logger,
		publisher: publish.New(cfg, logger, db),
		syncer:    sync.New(cfg, logger, db),
	}
}

func (ep *EventProcessor) Process(ctx context.Context, event ebay.Event) error {
	ep.logger.Debug("Processing %s event: %+v", event.Type, event)

	switch event.Type {
	case ebay.EventListingPublish:
		return ep.publisher.Publish(ctx, event.ListingID)
	case ebay.EventListingEnd:
		return ep.publisher.End(ctx, event.ListingID, event.Reason)
	case ebay.EventAccountSync:
		return ep.syncer.SyncAccount(ctx, event.AccountID)
	default:
		return fmt.Errorf("unknown event type %q", event.Type)
	}
}
