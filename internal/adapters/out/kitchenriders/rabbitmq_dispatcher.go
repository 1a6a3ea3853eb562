package kitchenriders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"kitchenpos/internal/core/domain/model/kernel"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
)

const defaultPublishTimeout = 5 * time.Second

var (
	ErrPublishNacked    = errors.New("broker rejected delivery request")
	ErrConfirmsDetached = errors.New("publisher confirmations stopped")
)

// Publisher is the part of *amqp091.Channel the dispatcher uses.
type Publisher interface {
	PublishWithContext(
		ctx context.Context,
		exchange, key string,
		mandatory, immediate bool,
		msg amqp091.Publishing,
	) error
}

// RabbitMQDispatcher expects a channel in confirm mode. Confirmations arrive in
// publish order with delivery tags counting up from one.
type RabbitMQDispatcher struct {
	publisher  Publisher
	confirms   <-chan amqp091.Confirmation
	exchange   string
	routingKey string
	timeout    time.Duration
	now        func() time.Time
	logger     *slog.Logger

	mu      sync.Mutex
	lastTag uint64
}

func NewRabbitMQDispatcher(
	publisher Publisher,
	confirms <-chan amqp091.Confirmation,
	exchange, routingKey string,
	logger *slog.Logger,
) *RabbitMQDispatcher {
	return &RabbitMQDispatcher{
		publisher:  publisher,
		confirms:   confirms,
		exchange:   exchange,
		routingKey: routingKey,
		timeout:    defaultPublishTimeout,
		now:        time.Now,
		logger:     logger.With("component", "rabbitmq_dispatcher"),
	}
}

// RequestDelivery publishes the request and waits for the broker to ack it.
// A publish error, a nack or no confirmation before the timeout fails the call.
func (d *RabbitMQDispatcher) RequestDelivery(
	ctx context.Context,
	orderID kernel.UUID,
	total decimal.Decimal,
	address string,
) error {
	body, err := json.Marshal(DeliveryRequestedMessage{
		OrderID:     orderID.String(),
		Amount:      total,
		Address:     address,
		RequestedAt: d.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("marshal delivery request: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	d.mu.Lock()
	defer d.mu.Unlock()

	err = d.publisher.PublishWithContext(ctx, d.exchange, d.routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		MessageId:    orderID.String(),
		Timestamp:    d.now(),
		Body:         body,
	})
	if err == nil {
		d.lastTag++
		err = d.awaitConfirm(ctx, d.lastTag)
	}
	if err != nil {
		d.logger.ErrorContext(ctx, "Delivery request publish failed",
			"order_id", orderID.String(),
			"exchange", d.exchange,
			"routing_key", d.routingKey,
			"error", err,
		)
		return fmt.Errorf("publish delivery request: %w", err)
	}

	d.logger.DebugContext(ctx, "Delivery request published",
		"order_id", orderID.String(),
		"amount", total.String(),
		"message_size", len(body),
	)
	return nil
}

// awaitConfirm skips confirmations left over from earlier publishes that timed out.
func (d *RabbitMQDispatcher) awaitConfirm(ctx context.Context, tag uint64) error {
	for {
		select {
		case conf, ok := <-d.confirms:
			if !ok {
				return ErrConfirmsDetached
			}
			if conf.DeliveryTag < tag {
				continue
			}
			if !conf.Ack {
				return ErrPublishNacked
			}
			return nil
		case <-ctx.Done():
			return fmt.Errorf("wait for broker confirmation: %w", ctx.Err())
		}
	}
}

// Broker holds a connection and a confirm-mode channel for publishing delivery requests.
type Broker struct {
	conn     *amqp091.Connection
	ch       *amqp091.Channel
	confirms <-chan amqp091.Confirmation
}

func (b *Broker) Channel() *amqp091.Channel {
	return b.ch
}

func (b *Broker) Confirms() <-chan amqp091.Confirmation {
	return b.confirms
}

func (b *Broker) Close() error {
	return errors.Join(b.ch.Close(), b.conn.Close())
}

// Connect dials the broker, opens a channel in confirm mode and declares the durable
// direct exchange delivery requests are published to.
func Connect(url, exchange string) (*Broker, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		exchange,
		amqp091.ExchangeDirect,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}
	confirms := ch.NotifyPublish(make(chan amqp091.Confirmation, 1))

	return &Broker{conn: conn, ch: ch, confirms: confirms}, nil
}
