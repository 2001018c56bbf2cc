package events

import (
	"context"
	"encoding/json"
	"log"

	"github.com/segmentio/kafka-go"

	"github.com/sanjayxseth/mskitchen/internal/domain"
	"github.com/sanjayxseth/mskitchen/internal/service"
)

// Consumer reads order events from Kafka and keeps the daily item
// popularity ranking in Redis up to date.
type Consumer struct {
	Reader *kafka.Reader
	Cache  service.AnalyticsCache
}

func NewConsumer(reader *kafka.Reader, cache service.AnalyticsCache) *Consumer {
	return &Consumer{
		Reader: reader,
		Cache:  cache,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	log.Println("[events] starting order consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("[events] consumer stopped")
				return
			}
			log.Printf("[events] error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("[events] error unmarshaling message: %v", err)
			continue
		}

		if event.Type == domain.EventOrderPlaced {
			c.ProcessOrder(ctx, event)
		}
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, event domain.OrderEvent) {
	log.Printf("[events] processing order %d with %d items", event.OrderID, len(event.Items))

	date := event.MenuDate
	for _, item := range event.Items {
		if err := c.Cache.IncrementItemScore(ctx, date, item.MenuItemID, item.Quantity); err != nil {
			log.Printf("[events] error updating analytics for item %d: %v", item.MenuItemID, err)
		}
	}
}
