package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/yevv0ne/placepick/infrastructures/config"
	"github.com/yevv0ne/placepick/infrastructures/log"
	"github.com/yevv0ne/placepick/infrastructures/mq/kmq"
	"github.com/yevv0ne/placepick/infrastructures/utils"
	"github.com/yevv0ne/placepick/models/place"
)

// DecisionEvent is the stream record emitted for every resolution. It
// is keyed by request id so replays of one request land on the same
// partition.
type DecisionEvent struct {
	RequestID  string  `json:"requestId"`
	Source     string  `json:"source"`
	Outcome    string  `json:"outcome"`
	PickedName string  `json:"pickedName,omitempty"`
	PickedAddr string  `json:"pickedAddr,omitempty"`
	Score      float64 `json:"score,omitempty"`
	Queries    int     `json:"queries"`
	Records    int     `json:"records"`
	Failed     int     `json:"failed"`
	ElapsedMs  int64   `json:"elapsedMs"`
	OccurredAt string  `json:"occurredAt"`
}

// Publisher streams decision events to Kafka. A nil Publisher is a
// valid no-op so callers never branch on the enabled flag.
type Publisher struct {
	producer *kmq.Producer
	topic    string
}

// NewPublisherFromConfig returns nil when the decision stream is
// disabled in config.
func NewPublisherFromConfig() (*Publisher, error) {
	cfg := config.GetInstance().Kafka
	if !cfg.Enabled {
		return nil, nil
	}
	if cfg.DecisionTopic == "" {
		return nil, fmt.Errorf("decision publisher: topic is required")
	}

	producer, err := kmq.NewProducer(cfg.Brokers, cfg.Producer.ClientID)
	if err != nil {
		return nil, fmt.Errorf("decision publisher: create producer failed: %w", err)
	}

	return &Publisher{producer: producer, topic: cfg.DecisionTopic}, nil
}

// Publish enqueues one decision event. Failures are logged and
// swallowed; the decision stream never blocks a caller's response.
func (p *Publisher) Publish(decision *place.Decision, source string) {
	if p == nil || decision == nil || decision.Trace == nil {
		return
	}

	event := DecisionEvent{
		RequestID:  decision.Trace.RequestID,
		Source:     source,
		Outcome:    string(decision.Outcome),
		Queries:    len(decision.Trace.Queries),
		Records:    decision.Trace.Records,
		Failed:     decision.Trace.FailedCalls,
		ElapsedMs:  decision.Trace.ElapsedMs,
		OccurredAt: utils.Now().Format(time.RFC3339Nano),
	}
	if decision.Picked != nil {
		event.PickedName = decision.Picked.Record.Name
		event.PickedAddr = decision.Picked.Record.Address
		event.Score = decision.Picked.Score
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Errorf("decision event marshal failed: %v", err)
		return
	}

	if err := p.producer.Produce(p.topic, []byte(event.RequestID), payload, nil); err != nil {
		log.Warnf("decision event produce failed: %v", err)
	}
}

// Close drains the local queue before closing the producer.
func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if pending := p.producer.Flush(5000); pending > 0 {
		log.Warnf("decision publisher closed with %d undelivered events", pending)
	}
	p.producer.Close()
}
