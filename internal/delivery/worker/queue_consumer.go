package worker

import (
	"context"
	"log/slog"
	"time"

	"yelocar/config"
	"yelocar/internal/delivery"
	"yelocar/internal/delivery/worker/handler"
	"yelocar/internal/domain/constants"
	"yelocar/internal/errors"
	"yelocar/internal/infra/pubsub"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/fx"
)

const (
	defaultPrefetch = 10
	minBackoff      = time.Second
	maxBackoff      = 30 * time.Second

	// retryDelay spaces out requeues of a failing message.
	retryDelay = 2 * time.Second
)

// ErrDeliveriesClosed is returned by consume when the broker closes the channel.
var ErrDeliveriesClosed = errors.New("deliveries channel closed")

// queueConsumer reads lead events from RabbitMQ with manual acknowledgement.
type queueConsumer struct {
	url        string
	queue      string
	prefetch   int
	dispatcher *handler.LeadDispatcher
	logger     *slog.Logger
	retryDelay time.Duration
}

// QueueConsumerParams holds dependencies for the queue consumer
type QueueConsumerParams struct {
	fx.In

	Cfg        *config.Config
	Logger     *slog.Logger
	Dispatcher *handler.LeadDispatcher
}

// NewQueueConsumer returns the RabbitMQ consumer when lead events travel over
// RabbitMQ, and nothing otherwise.
func NewQueueConsumer(params QueueConsumerParams) []delivery.Delivery {
	if params.Cfg.PubSub == nil || params.Cfg.PubSub.Provider != constants.PubSubProviderRabbitMQ {
		return nil
	}
	rmq := params.Cfg.RabbitMQ
	if rmq == nil || rmq.URL == "" {
		params.Logger.Warn("RabbitMQ provider selected without a url, queue consumer disabled")

		return nil
	}

	prefetch := rmq.Prefetch
	if prefetch <= 0 {
		prefetch = defaultPrefetch
	}

	return []delivery.Delivery{&queueConsumer{
		url:        rmq.URL,
		queue:      pubsub.QueueName(rmq),
		prefetch:   prefetch,
		dispatcher: params.Dispatcher,
		logger:     params.Logger.With(slog.String("queue", pubsub.QueueName(rmq))),
		retryDelay: retryDelay,
	}}
}

// Serve reconnects with exponential backoff until ctx is cancelled.
func (q *queueConsumer) Serve(ctx context.Context) error {
	backoff := minBackoff
	for {
		err := q.connectAndConsume(ctx)
		if ctx.Err() != nil {
			q.logger.Info("Queue consumer stopped")

			return nil
		}

		q.logger.Warn("Queue consumer disconnected, reconnecting",
			slog.Any("error", err),
			slog.Duration("backoff", backoff),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}
		backoff = min(backoff*2, maxBackoff)
		if errors.Is(err, ErrDeliveriesClosed) {
			// The connection worked; start over from the short delay.
			backoff = minBackoff
		}
	}
}

func (q *queueConsumer) connectAndConsume(ctx context.Context) error {
	conn, err := amqp.Dial(q.url)
	if err != nil {
		return errors.Wrap(err, "rabbitmq dial")
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return errors.Wrap(err, "rabbitmq channel")
	}
	defer ch.Close()

	if err := ch.Qos(q.prefetch, 0, false); err != nil {
		return errors.Wrap(err, "rabbitmq qos")
	}
	if err := pubsub.DeclareQueue(ch, q.queue); err != nil {
		return err
	}

	msgs, err := ch.ConsumeWithContext(ctx, q.queue, "", false, false, false, false, nil)
	if err != nil {
		return errors.Wrap(err, "rabbitmq consume")
	}

	q.logger.Info("Queue consumer started", slog.Int("prefetch", q.prefetch))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return ErrDeliveriesClosed
			}
			q.handle(ctx, d)
		}
	}
}

// handle acknowledges done and dropped messages and requeues retryable ones.
func (q *queueConsumer) handle(ctx context.Context, d amqp.Delivery) {
	outcome := q.dispatcher.Dispatch(ctx, d.Body, headerAttributes(d))

	var err error
	switch outcome {
	case handler.OutcomeRetry:
		select {
		case <-ctx.Done():
		case <-time.After(q.retryDelay):
		}
		err = d.Nack(false, true)
	default:
		err = d.Ack(false)
	}
	if err != nil {
		q.logger.Error("Failed to settle message",
			slog.String("outcome", outcome.String()),
			slog.Any("error", err),
		)
	}
}

// headerAttributes flattens string headers and the AMQP ids into the
// attribute map Pub/Sub pushes carry.
func headerAttributes(d amqp.Delivery) map[string]string {
	attributes := make(map[string]string, len(d.Headers)+1)
	for k, v := range d.Headers {
		if s, ok := v.(string); ok {
			attributes[k] = s
		}
	}
	if attributes["request_id"] == "" && d.CorrelationId != "" {
		attributes["request_id"] = d.CorrelationId
	}

	return attributes
}
