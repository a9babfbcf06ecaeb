package storage

import (
	"context"
	"encoding/json"

	"platefeed/internal/domain"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishFeedEvent emits a feed_served event keyed by user id, so one
// user's events land in order on a single partition.
func (p *KafkaPublisher) PublishFeedEvent(ctx context.Context, event domain.FeedEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.UserID),
		Value: payload,
	})
}
