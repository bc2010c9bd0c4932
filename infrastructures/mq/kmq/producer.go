package kmq

import (
	"fmt"

	"github.com/confluentinc/confluent-kafka-go/v2/kafka"

	"github.com/yevv0ne/placepick/infrastructures/config"
	"github.com/yevv0ne/placepick/infrastructures/log"
)

// Producer wraps the confluent Kafka producer with the configured
// defaults and delivery-report logging.
type Producer struct {
	p *kafka.Producer
}

// NewProducer creates a producer from the configured librdkafka
// options. Delivery failures are logged, not retried here; retries
// belong to librdkafka via message.send.max.retries.
func NewProducer(brokers, clientID string) (*Producer, error) {
	cm, err := buildProducerConfig(brokers, clientID)
	if err != nil {
		return nil, err
	}

	p, err := kafka.NewProducer(cm)
	if err != nil {
		return nil, fmt.Errorf("create producer failed: %w", err)
	}

	kp := &Producer{p: p}

	go func(events chan kafka.Event) {
		for ev := range events {
			msg, ok := ev.(*kafka.Message)
			if !ok {
				continue
			}
			if msg.TopicPartition.Error != nil {
				log.Warnf("kafka delivery failed: %v", msg.TopicPartition)
			}
		}
	}(p.Events())

	return kp, nil
}

func buildProducerConfig(brokers, clientID string) (*kafka.ConfigMap, error) {
	cfg := config.GetInstance().Kafka

	effectiveBrokers := brokers
	if effectiveBrokers == "" {
		effectiveBrokers = cfg.Brokers
	}
	if effectiveBrokers == "" {
		return nil, fmt.Errorf("kafka producer: bootstrap servers not configured")
	}

	producerCfg := cfg.Producer

	effectiveClientID := clientID
	if effectiveClientID == "" {
		effectiveClientID = producerCfg.ClientID
	}
	if effectiveClientID == "" {
		return nil, fmt.Errorf("kafka producer: client id not configured")
	}

	configMap := kafka.ConfigMap{
		"bootstrap.servers": effectiveBrokers,
		"client.id":         effectiveClientID,
	}

	if producerCfg.Acks != "" {
		configMap["acks"] = producerCfg.Acks
	}
	if producerCfg.EnableIdempotence != nil {
		configMap["enable.idempotence"] = *producerCfg.EnableIdempotence
	}
	if producerCfg.MessageSendMaxRetries > 0 {
		configMap["message.send.max.retries"] = producerCfg.MessageSendMaxRetries
	}
	if producerCfg.MessageTimeoutMs > 0 {
		configMap["message.timeout.ms"] = producerCfg.MessageTimeoutMs
	}
	if producerCfg.LingerMs > 0 {
		configMap["linger.ms"] = producerCfg.LingerMs
	}
	if producerCfg.CompressionType != "" {
		configMap["compression.type"] = producerCfg.CompressionType
	}
	if producerCfg.Partitioner != "" {
		configMap["partitioner"] = producerCfg.Partitioner
	}

	return &configMap, nil
}

// Produce enqueues one keyed message. Delivery is asynchronous; call
// Flush before shutdown to drain the local queue.
func (kp *Producer) Produce(topic string, key, value []byte, headers []kafka.Header) error {
	topicCopy := topic
	return kp.p.Produce(&kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topicCopy, Partition: int32(kafka.PartitionAny)},
		Key:            key,
		Value:          value,
		Headers:        headers,
	}, nil)
}

// Flush blocks until pending deliveries settle or the timeout expires.
// The return value is the number of still-unsettled messages.
func (kp *Producer) Flush(timeoutMs int) int {
	return kp.p.Flush(timeoutMs)
}

func (kp *Producer) Close() {
	kp.p.Close()
}
