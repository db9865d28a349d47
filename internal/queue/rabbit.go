package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"example.com/checkin-reset/internal/model"
)

// DefaultQueue receives one message per reset collection.
const DefaultQueue = "checkin-resets"

type Publisher interface {
	Publish(ctx context.Context, s model.ResetSummary) error
	Close() error
}

type rabbitPublisher struct {
	conn *amqp.Connection
	q    amqp.Queue
}

// NewRabbitPublisher connects to RabbitMQ and declares a durable queue with the given name.
func NewRabbitPublisher(url string, queueName string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	defer ch.Close()
	q, err := ch.QueueDeclare(
		queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return &rabbitPublisher{conn: conn, q: q}, nil
}

func (r *rabbitPublisher) Publish(ctx context.Context, s model.ResetSummary) error {
	body, err := encodeSummary(s)
	if err != nil {
		return err
	}
	ch, err := r.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return ch.PublishWithContext(ctx,
		"", r.q.Name, false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    s.RunID + "/" + s.Collection,
			Body:         body,
		},
	)
}

func (r *rabbitPublisher) Close() error {
	if r.conn == nil {
		return nil
	}
	return r.conn.Close()
}

func encodeSummary(s model.ResetSummary) ([]byte, error) {
	b, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode reset summary: %w", err)
	}
	return b, nil
}
