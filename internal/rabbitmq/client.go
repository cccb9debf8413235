package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/artgallery/internal/config"
	"github.com/GoArmGo/artgallery/internal/core/ports"
	"github.com/GoArmGo/artgallery/internal/messaging/payloads"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Client держит одно соединение и канал RabbitMQ и служит
// одновременно издателем и потребителем событий над работами
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
	logger  *slog.Logger
}

var (
	_ ports.ArtworkEventPublisher = (*Client)(nil)
	_ ports.ArtworkEventConsumer  = (*Client)(nil)
)

// NewClient подключается к брокеру и объявляет durable-очередь событий
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	conn, err := amqp.Dial(cfg.RabbitMQ.RabbitMQURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	q, err := ch.QueueDeclare(
		cfg.RabbitMQ.RabbitMQQueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %q: %w", cfg.RabbitMQ.RabbitMQQueueName, err)
	}

	logger.Info("connected to RabbitMQ", "queue", q.Name, "messages", q.Messages)

	return &Client{conn: conn, channel: ch, queue: q, logger: logger}, nil
}

// Close закрывает канал и соединение
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close connection: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		c.logger.Error("error closing RabbitMQ client", "error", err)
		return err
	}
	c.logger.Info("RabbitMQ connection closed")
	return nil
}

// PublishArtworkEvent публикует событие в очередь как persistent JSON-сообщение
func (c *Client) PublishArtworkEvent(ctx context.Context, payload payloads.ArtworkEventPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload to JSON: %w", err)
	}

	publishCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		publishCtx,
		"",           // exchange
		c.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    payload.OccurredAt,
			Type:         string(payload.Type),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish a message: %w", err)
	}

	c.logger.Debug("artwork event published",
		"queue", c.queue.Name,
		"type", payload.Type,
		"artwork_id", payload.ArtworkID,
	)
	return nil
}

// StartConsumingArtworkEvents регистрирует потребителя и обрабатывает сообщения
// в отдельной горутине до отмены ctx или закрытия канала
func (c *Client) StartConsumingArtworkEvents(ctx context.Context, handler func(context.Context, payloads.ArtworkEventPayload) error) error {
	msgs, err := c.channel.Consume(
		c.queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register a consumer: %w", err)
	}

	c.logger.Info("consumer registered, waiting for messages", "queue", c.queue.Name)

	go func() {
		for {
			select {
			case msg, ok := <-msgs:
				if !ok {
					c.logger.Info("RabbitMQ delivery channel closed, stopping consumer")
					return
				}
				handleDelivery(ctx, c.logger, msg, handler)
			case <-ctx.Done():
				c.logger.Info("context cancelled, stopping RabbitMQ consumer")
				return
			}
		}
	}()

	return nil
}

// handleDelivery подтверждает сообщение после успешной обработки.
// Нечитаемые и невалидные сообщения отбрасываются, ошибки обработчика
// возвращают сообщение в очередь.
func handleDelivery(ctx context.Context, logger *slog.Logger, msg amqp.Delivery, handler func(context.Context, payloads.ArtworkEventPayload) error) {
	var payload payloads.ArtworkEventPayload
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		logger.Error("error unmarshalling message", "error", err, "body", string(msg.Body))
		nack(logger, msg, false)
		return
	}

	if err := payload.Validate(); err != nil {
		logger.Warn("dropping invalid artwork event", "error", err)
		nack(logger, msg, false)
		return
	}

	if err := handler(ctx, payload); err != nil {
		logger.Error("error processing message",
			"type", payload.Type,
			"artwork_id", payload.ArtworkID,
			"error", err,
		)
		nack(logger, msg, true)
		return
	}

	if err := msg.Ack(false); err != nil {
		logger.Error("error ACKing message", "error", err)
		return
	}
	logger.Debug("message processed and ACKed", "type", payload.Type, "artwork_id", payload.ArtworkID)
}

func nack(logger *slog.Logger, msg amqp.Delivery, requeue bool) {
	if err := msg.Nack(false, requeue); err != nil {
		logger.Error("error NACKing message", "requeue", requeue, "error", err)
	}
}
