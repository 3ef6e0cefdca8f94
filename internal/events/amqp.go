package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// amqpChannel is the subset of *amqp091.Channel the client uses.
type amqpChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
	Close() error
}

const publishTimeout = 5 * time.Second

// AMQPClient carries TransactionMutated events over a durable RabbitMQ queue
// bound to a direct exchange.
type AMQPClient struct {
	conn         *amqp091.Connection
	channel      amqpChannel
	exchangeName string
	queueName    string
	logger       *logrus.Logger
}

var _ Publisher = (*AMQPClient)(nil)

func NewAMQPClient(url, exchangeName, queueName string, logger *logrus.Logger) (*AMQPClient, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := newAMQPClient(channel, exchangeName, queueName, logger)
	client.conn = conn
	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func newAMQPClient(channel amqpChannel, exchangeName, queueName string, logger *logrus.Logger) *AMQPClient {
	return &AMQPClient{
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
		logger:       logger,
	}
}

func (c *AMQPClient) setup() error {
	err := c.channel.ExchangeDeclare(c.exchangeName, "direct", true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(c.queueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	// routing key is the queue name
	err = c.channel.QueueBind(c.queueName, c.queueName, c.exchangeName, false, nil)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// Publish sends event as a persistent JSON message.
func (c *AMQPClient) Publish(ctx context.Context, event TransactionMutated) error {
	if err := event.Validate(); err != nil {
		return err
	}
	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(ctx, c.exchangeName, c.queueName, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Timestamp:    event.Timestamp,
		MessageId:    event.TransactionID.String(),
		Body:         body,
	})
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"ownerID":       event.OwnerID,
		"transactionID": event.TransactionID,
		"operation":     event.Operation,
		"queue":         c.queueName,
	}).Debug("AMQPClient.Publish.sent")

	return nil
}

// Consume delivers queued events to handler until ctx is cancelled or the
// channel closes. Messages are acked after handler succeeds.
func (c *AMQPClient) Consume(ctx context.Context, handler Handler) error {
	deliveries, err := c.channel.Consume(c.queueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("start consuming: %w", err)
	}

	c.logger.WithField("queue", c.queueName).Info("AMQPClient.Consume.started")

	for {
		select {
		case <-ctx.Done():
			c.logger.WithField("reason", ctx.Err()).Info("AMQPClient.Consume.stopping")
			return ctx.Err()
		case delivery, ok := <-deliveries:
			if !ok {
				return errors.New("message channel closed")
			}
			c.handleDelivery(ctx, delivery, handler)
		}
	}
}

// handleDelivery settles one message. Malformed messages are dropped. A
// failing handler gets one redelivery; a message failing again is dropped.
func (c *AMQPClient) handleDelivery(ctx context.Context, delivery amqp091.Delivery, handler Handler) {
	event, err := TransactionMutatedFromJSON(delivery.Body)
	if err != nil {
		c.logger.WithError(err).Error("AMQPClient.handleDelivery.malformed")
		c.settle(delivery.Nack(false, false))
		return
	}

	entry := c.logger.WithFields(logrus.Fields{
		"ownerID":       event.OwnerID,
		"transactionID": event.TransactionID,
		"operation":     event.Operation,
		"redelivered":   delivery.Redelivered,
	})

	if err := handler.HandleTransactionMutated(ctx, event); err != nil {
		entry.WithError(err).Error("AMQPClient.handleDelivery.handlerFailed")
		c.settle(delivery.Nack(false, !delivery.Redelivered))
		return
	}

	c.settle(delivery.Ack(false))
	entry.Debug("AMQPClient.handleDelivery.acked")
}

func (c *AMQPClient) settle(err error) {
	if err != nil {
		c.logger.WithError(err).Error("AMQPClient.settle")
	}
}

func (c *AMQPClient) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}
