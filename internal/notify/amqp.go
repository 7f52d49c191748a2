package notify

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Notification is the message published for each dispatched reminder.
// A downstream mailer consumes the queue and does the actual delivery.
type Notification struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

var _ Sender = (*AMQPSender)(nil)

// AMQPSender publishes notifications to a durable queue.
type AMQPSender struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   amqp.Queue
}

// NewAMQPSender connects, opens a channel, and declares the queue.
func NewAMQPSender(url, queueName string) (*AMQPSender, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	queue, err := channel.QueueDeclare(
		queueName,
		true,  // durable, survives broker restarts
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	return &AMQPSender{
		conn:    conn,
		channel: channel,
		queue:   queue,
	}, nil
}

// Send publishes one notification as a persistent JSON message.
func (s *AMQPSender) Send(ctx context.Context, recipient, subject, body string) error {
	payload, err := json.Marshal(Notification{
		Recipient: recipient,
		Subject:   subject,
		Body:      body,
	})
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(ctx,
		"",           // default exchange
		s.queue.Name, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         payload,
		},
	)
}

// Close releases the channel and the connection.
func (s *AMQPSender) Close() error {
	if err := s.channel.Close(); err != nil {
		s.conn.Close()
		return err
	}
	return s.conn.Close()
}
