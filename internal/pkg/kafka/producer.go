package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/IBM/sarama"

	"backoffice/internal/entities"
	"backoffice/internal/pkg/config"
	"backoffice/pkg/logger"
)

// Producer публикует доменные события сервиса: смены статусов заказов
// и сообщения чата. Синхронный, ack от всех реплик.
type Producer struct {
	log         logger.Logger
	producer    sarama.SyncProducer
	ordersTopic string
	chatTopic   string
}

func NewProducer(log logger.Logger, cfg *config.Kafka, brokers []string) (*Producer, error) {
	saramaConfig := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", cfg.Sarama.Version, err)
	}
	saramaConfig.Version = version
	saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	saramaConfig.Producer.Retry.Max = 3
	saramaConfig.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync producer: %w", err)
	}

	return &Producer{
		log: log.With(
			logger.NewField("brokers", brokers),
		),
		producer:    producer,
		ordersTopic: cfg.OrdersTopic,
		chatTopic:   cfg.ChatTopic,
	}, nil
}

func (p *Producer) ProduceOrderStatusChanged(ctx context.Context, event entities.OrderStatusChangedEvent) error {
	// ключ - id заказа, события одного заказа попадают в одну партицию
	return p.produce(ctx, p.ordersTopic, strconv.FormatInt(event.OrderID, 10), event)
}

func (p *Producer) ProduceChatMessage(ctx context.Context, event entities.ChatMessageEvent) error {
	// ключ - id разговора, сообщения одного разговора попадают в одну партицию
	return p.produce(ctx, p.chatTopic, strconv.FormatInt(event.Message.ConversationID, 10), event)
}

func (p *Producer) produce(ctx context.Context, topic, key string, payload interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal kafka message: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	})
	if err != nil {
		return fmt.Errorf("send kafka message: %w", err)
	}

	p.log.With(
		logger.NewField("topic", topic),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Debug("kafka message produced")

	return nil
}

func (p *Producer) Close() error {
	return p.producer.Close()
}
