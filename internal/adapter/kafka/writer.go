package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/quake-data-service/internal/config"
	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// Writer produces flattened event rows to the sink topic.
// It implements poller.RowPublisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishRows serializes and publishes a table's rows to the sink topic in a
// single WriteMessages call for efficiency.
func (w *Writer) PublishRows(ctx context.Context, table domain.ResultTable) error {
	if table.Len() == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, table.Len())
	for i := range table.Rows {
		msg, err := serializeToMessage(table.Rows[i], table.RetrievedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// serializeToMessage marshals an event row into a Kafka message. Messages are
// keyed by the catalog event identity (network + code) so compacted topics
// and idempotent consumers deduplicate re-polled events; rows missing either
// property get a random key.
func serializeToMessage(row domain.EventRow, retrievedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize event row: %w", err)
	}

	key := uuid.NewString()
	if row.Network != nil && row.Code != nil {
		key = *row.Network + *row.Code
	}

	msg := kafkago.Message{
		Key:   []byte(key),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "retrieved_at", Value: []byte(retrievedAt.Format(time.RFC3339))},
		},
	}
	if row.EventType != nil {
		msg.Headers = append(msg.Headers, kafkago.Header{Key: "event_type", Value: []byte(*row.EventType)})
	}
	return msg, nil
}
