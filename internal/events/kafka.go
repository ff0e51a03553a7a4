package events

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, topic string, msgs ...kafka.Message) error
	Close() error
}

// Option configures a KafkaPublisher.
type Option func(*KafkaPublisher)

// WithLogger overrides the publisher logger.
func WithLogger(l *log.Logger) Option {
	return func(p *KafkaPublisher) {
		if l != nil {
			p.logger = l
		}
	}
}

func withWriter(w messageWriter) Option {
	return func(p *KafkaPublisher) {
		p.writer = w
	}
}

// KafkaPublisher writes events as JSON Kafka messages.
type KafkaPublisher struct {
	writer messageWriter
	logger *log.Logger
}

// NewKafkaPublisher builds a publisher over the given brokers.
func NewKafkaPublisher(brokers []string, opts ...Option) *KafkaPublisher {
	p := &KafkaPublisher{
		writer: newTopicWriters(brokers),
		logger: log.New(log.Writer(), "[events] ", log.LstdFlags),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// New returns a Kafka publisher, or a NoopPublisher and a nil closer when no
// brokers are configured.
func New(brokers []string) (Publisher, io.Closer) {
	if len(brokers) == 0 {
		return NoopPublisher{}, nil
	}
	p := NewKafkaPublisher(brokers)
	return p, p
}

func (p *KafkaPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", topic, err)
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
		Time:  time.Now().UTC(),
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(topic)},
			{Key: "content_type", Value: []byte("application/json")},
		},
	}

	if err := p.writer.WriteMessages(ctx, topic, msg); err != nil {
		failedCounter.WithLabelValues(topic).Inc()
		p.logger.Printf("publish %s key=%s failed: %v", topic, key, err)
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	publishedCounter.WithLabelValues(topic).Inc()
	return nil
}

// Close releases all writers.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// topicWriters lazily manages one writer per topic.
type topicWriters struct {
	brokers []string
	mu      sync.Mutex
	writers map[string]*kafka.Writer
}

func newTopicWriters(brokers []string) *topicWriters {
	return &topicWriters{
		brokers: brokers,
		writers: make(map[string]*kafka.Writer),
	}
}

func (t *topicWriters) WriteMessages(ctx context.Context, topic string, msgs ...kafka.Message) error {
	return t.writerForTopic(topic).WriteMessages(ctx, msgs...)
}

func (t *topicWriters) writerForTopic(topic string) *kafka.Writer {
	t.mu.Lock()
	defer t.mu.Unlock()

	if w, ok := t.writers[topic]; ok {
		return w
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(t.brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		Compression:            kafka.Snappy,
		AllowAutoTopicCreation: true,
	}
	t.writers[topic] = w
	return w
}

func (t *topicWriters) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	var firstErr error
	for topic, w := range t.writers {
		if err := w.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		delete(t.writers, topic)
	}
	return firstErr
}
