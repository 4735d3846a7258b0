package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"yelocar/config"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"

	amqp "github.com/rabbitmq/amqp091-go"
)

const defaultQueueName = "yelocar.leads"

// QueueName returns the configured lead queue or the default.
func QueueName(cfg *config.RabbitMQConfig) string {
	if cfg == nil || cfg.Queue == "" {
		return defaultQueueName
	}

	return cfg.Queue
}

// DeclareQueue declares the durable lead queue. Publisher and consumer both
// call it so either may start first.
func DeclareQueue(ch *amqp.Channel, queue string) error {
	_, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)

	return errors.Wrapf(err, "declare queue %s", queue)
}

// rabbitMQPublisher implements EventPublisher on a single long-lived channel.
type rabbitMQPublisher struct {
	mu     sync.Mutex
	conn   *amqp.Connection
	ch     *amqp.Channel
	queue  string
	logger *slog.Logger
}

// NewRabbitMQPublisher dials the broker and declares the lead queue
func NewRabbitMQPublisher(url, queue string, logger *slog.Logger) (service.EventPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errors.Wrap(err, "rabbitmq dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()

		return nil, errors.Wrap(err, "rabbitmq channel")
	}

	if err := DeclareQueue(ch, queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()

		return nil, err
	}

	return &rabbitMQPublisher{
		conn:   conn,
		ch:     ch,
		queue:  queue,
		logger: logger,
	}, nil
}

// PublishLeadEvent publishes a persistent JSON message to the lead queue
func (p *rabbitMQPublisher) PublishLeadEvent(ctx context.Context, event *service.LeadEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	headers := amqp.Table{}
	for k, v := range leadAttributes(event) {
		headers[k] = v
	}

	pub := amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Persistent,
		Timestamp:     time.Now().UTC(),
		MessageId:     event.ContactID,
		CorrelationId: event.RequestID,
		Headers:       headers,
		Body:          body,
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	err = p.ch.PublishWithContext(ctx, "", p.queue, false, false, pub)
	p.mu.Unlock()
	if err != nil {
		return errors.Wrap(err, "rabbitmq publish")
	}

	p.logger.Info("[RabbitMQ] Lead event published",
		slog.String("queue", p.queue),
		slog.String("contact_id", event.ContactID),
	)

	return nil
}

func (p *rabbitMQPublisher) Close() error {
	chErr := p.ch.Close()
	connErr := p.conn.Close()

	return errors.WithStack(errors.Join(chErr, connErr))
}
