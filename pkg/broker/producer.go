package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Producer struct {
	l                  *slog.Logger
	w                  messageWriter
	paymentSignedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.Hash{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return newProducer(l, w, topic)
}

func newProducer(l *slog.Logger, w messageWriter, topic string) *Producer {
	return &Producer{
		l:                  l,
		w:                  w,
		paymentSignedTopic: topic,
	}
}

type PaymentSignedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	MerchantID  string    `json:"merchant_id"`
	OrderNo     string    `json:"order_no"`
	PayID       string    `json:"pay_id,omitempty"`
	TotalAmount int64     `json:"total_amount"`
	Currency    string    `json:"currency"`
	DateTime    string    `json:"dttm"`
	Signature   string    `json:"signature"`
}

// SendPaymentSigned publishes the event keyed by merchant and order so that
// events of one order stay in one partition.
func (p *Producer) SendPaymentSigned(ctx context.Context, event PaymentSignedEvent) {
	if event.EventID.IsNil() {
		id, err := uuid.NewV4()
		if err != nil {
			p.l.Error(fmt.Sprintf("generate event id: %s", err))
			return
		}

		event.EventID = id
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(fmt.Sprintf("%s:%s", event.MerchantID, event.OrderNo)),
		Value: b,
		Topic: p.paymentSignedTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

// NopProducer drops events. It is used when Kafka is disabled.
type NopProducer struct{}

func (NopProducer) SendPaymentSigned(context.Context, PaymentSignedEvent) {}

func (NopProducer) Close() {}
